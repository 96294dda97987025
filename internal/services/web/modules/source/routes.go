package source

import (
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.SourceShowPattern, h.handleShow)
	mux.HandleFunc(http.MethodGet+" "+routepath.SourceReviewPattern, h.handleReview)
	mux.HandleFunc(http.MethodGet+" "+routepath.SourceRestPattern, h.WriteNotFound)
}
