package publicauth

import (
	"errors"
	"net/http"

	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/translating.space/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
	cookie  sessioncookie.Cookie
}

func newHandlers(s service, base modulehandler.Base, cookie sessioncookie.Cookie) handlers {
	cookie.Policy = base.RequestSchemePolicy()
	cookie.TTL = s.ttl
	return handlers{Base: base, service: s, cookie: cookie}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	httpx.WriteRedirect(w, r, routepath.Login)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, loginForm{Next: r.URL.Query().Get(routepath.NextParam)})
}

func (h handlers) handleLoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, loginForm{Failed: true})
		return
	}
	form := loginForm{
		Username: r.PostForm.Get("username"),
		Next:     r.PostForm.Get(routepath.NextParam),
	}
	session, err := h.service.login(r.Context(), form.Username, r.PostForm.Get("password"))
	if errors.Is(err, ErrInvalidCredentials) {
		form.Failed = true
		h.renderLogin(w, r, http.StatusOK, form)
		return
	}
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.cookie.Write(w, r, session.ID)
	httpx.WriteRedirect(w, r, httpx.LocalRedirectTarget(form.Next, routepath.Root))
}

// handleLogout clears the session cookie even when the store rejects the
// delete, so the browser never stays signed in to a half-removed session.
func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessioncookie.Read(r)
	if ok && !requestmeta.HasSameOriginProofWithPolicy(r, h.RequestSchemePolicy()) {
		_ = httpx.WriteText(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
		return
	}
	err := h.service.logout(r.Context(), sessionID)
	h.cookie.Clear(w, r)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	httpx.WriteRedirect(w, r, routepath.Root)
}

type loginForm struct {
	Username string
	Next     string
	Failed   bool
}

func (h handlers) renderLogin(w http.ResponseWriter, r *http.Request, status int, form loginForm) {
	loc, _ := h.PageLocalizer(w, r)
	viewer := h.ResolveRequestViewer(r)
	view := webtemplates.LoginView{
		Loc:         loc,
		Action:      routepath.Login,
		Username:    form.Username,
		SignedIn:    viewer.SignedIn,
		DisplayName: viewer.DisplayName,
		LogoutURL:   routepath.Logout,
	}
	if next, ok := requestmeta.LocalPath(form.Next); ok {
		view.Next = next
	}
	if form.Failed {
		view.Error = webtemplates.T(loc, "web.login.error_invalid")
	}
	h.WritePage(w, r, webtemplates.T(loc, "web.login.title"), status, webtemplates.Login(view))
}
