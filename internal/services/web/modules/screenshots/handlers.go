package screenshots

import (
	"net/http"
	"time"

	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
)

// cacheControl applies to every served object; names are content hashes so
// a stored object never changes.
const cacheControl = "public, max-age=31536000, immutable"

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	file, contentType, err := h.service.open(r.Context(), name)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", cacheControl)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, name, time.Time{}, file)
}
