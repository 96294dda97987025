// Package templates renders web pages. Pages are templ components; their
// bodies are embedded html/template files.
package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"t": func(loc Localizer, key string, args ...any) string {
		return T(loc, key, args...)
	},
}

var set = template.Must(template.New("").Funcs(funcs).ParseFS(files, "html/*.html"))

// view adapts one named html/template definition into a templ component.
func view(name string, data any) templ.Component {
	tmpl := set.Lookup(name)
	if tmpl == nil {
		panic("templates: unknown view " + name)
	}
	return templ.FromGoHTML(tmpl, data)
}
