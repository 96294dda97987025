package templates

import (
	"bytes"
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	module "github.com/louisbranch/translating.space/internal/services/web/module"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
)

// Toast is one flash notice rendered in the page chrome.
type Toast struct {
	Kind    string
	Message string
}

// LayoutView carries page chrome state.
type LayoutView struct {
	Title  string
	Lang   string
	Viewer module.Viewer
	Toasts []Toast
	Loc    Localizer
	// CurrentPath is the request path used as the sign-in return target.
	CurrentPath string
}

type layoutData struct {
	LayoutView
	LoginURL  string
	LogoutURL string
	Body      template.HTML
}

// Layout renders the full page shell around the context children.
func Layout(v LayoutView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var body bytes.Buffer
		if err := templ.GetChildren(ctx).Render(ctx, &body); err != nil {
			return err
		}
		data := layoutData{
			LayoutView: v,
			LoginURL:   routepath.LoginWithNext(v.CurrentPath),
			LogoutURL:  routepath.Logout,
			Body:       template.HTML(body.String()),
		}
		return view("layout", data).Render(ctx, w)
	})
}
