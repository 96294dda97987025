package sourceedit

import (
	"errors"
	"io"
	"net/http"

	flashnotice "github.com/louisbranch/translating.space/internal/services/web/platform/flash"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// multipartOverhead is the room left for form boundaries and the next field
// on top of the screenshot limit.
const multipartOverhead = 64 << 10

type handlers struct {
	modulehandler.Base
	service            service
	maxScreenshotBytes int64
}

func newHandlers(s service, base modulehandler.Base, maxScreenshotBytes int64) handlers {
	return handlers{Base: base, service: s, maxScreenshotBytes: maxScreenshotBytes}
}

func (h handlers) handlePriority(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.loadTarget(r.Context(), h.RequestUser(r), r.PathValue("sourceID"), canEditPriority)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.finish(w, r, t, FieldError{Field: "priority", Key: "web.source.notice_priority_failed", Err: err})
		return
	}
	h.finish(w, r, t, h.service.editPriority(r.Context(), t, r.PostForm.Get("priority")))
}

func (h handlers) handleCheckFlags(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.loadTarget(r.Context(), h.RequestUser(r), r.PathValue("sourceID"), canEditFlags)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.finish(w, r, t, FieldError{Field: "flags", Key: "web.source.notice_flags_failed", Err: err})
		return
	}
	h.finish(w, r, t, h.service.editCheckFlags(r.Context(), t, r.PostForm.Get("flags")))
}

func (h handlers) handleScreenshot(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.loadTarget(r.Context(), h.RequestUser(r), r.PathValue("sourceID"), canUploadScreenshot)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	data, err := h.readScreenshot(w, r)
	if err != nil {
		h.finish(w, r, t, err)
		return
	}
	h.finish(w, r, t, h.service.uploadScreenshot(r.Context(), t, data, h.maxScreenshotBytes))
}

// readScreenshot reads the uploaded file, capped one byte past the limit so
// oversized uploads are still reported as too large.
func (h handlers) readScreenshot(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxScreenshotBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxScreenshotBytes + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, FieldError{Field: "screenshot", Key: "web.source.screenshot.error_too_large", Err: err}
		}
		return nil, FieldError{Field: "screenshot", Key: "web.source.screenshot.error_required", Err: err}
	}
	file, _, err := r.FormFile("screenshot")
	if err != nil {
		return nil, FieldError{Field: "screenshot", Key: "web.source.screenshot.error_required", Err: err}
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, h.maxScreenshotBytes+1))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// finish queues a flash notice for form failures, then redirects to the
// posted next path or the source detail listing. Other errors render as
// error pages.
func (h handlers) finish(w http.ResponseWriter, r *http.Request, t target, err error) {
	var fieldErr FieldError
	switch {
	case err == nil:
	case errors.As(err, &fieldErr):
		h.WriteFlash(w, r, flashnotice.NoticeError(fieldErr.Key))
	default:
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, httpx.LocalRedirectTarget(postedNext(r), t.DetailURL()))
}

// postedNext reads the next path from the request body only. Query values
// are ignored.
func postedNext(r *http.Request) string {
	if next := r.PostForm.Get(routepath.NextParam); next != "" {
		return next
	}
	if r.MultipartForm != nil {
		if values := r.MultipartForm.Value[routepath.NextParam]; len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
