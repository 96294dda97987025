package matrix

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppMatrixPattern, h.handleMatrix)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppMatrixLoadPattern, h.handleLoad)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppMatrixRestPattern, h.WriteNotFound)
}
