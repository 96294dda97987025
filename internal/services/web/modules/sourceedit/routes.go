package sourceedit

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	post := func(pattern string, handler http.HandlerFunc) {
		mux.HandleFunc(http.MethodPost+" "+pattern, handler)
		mux.Handle(pattern, httpx.MethodNotAllowed(http.MethodPost))
	}
	post(routepath.AppSourcePriorityPattern, h.handlePriority)
	post(routepath.AppSourceFlagsPattern, h.handleCheckFlags)
	post(routepath.AppSourceShotPattern, h.handleScreenshot)
	mux.HandleFunc(routepath.AppSourcesRestPattern, h.WriteNotFound)
}
