package screenshots

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ScreenshotPattern, h.handleScreenshot)
	mux.HandleFunc(http.MethodGet+" "+routepath.ScreenshotsPrefix+"{rest...}", h.WriteNotFound)
}
