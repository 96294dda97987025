package matrix

import (
	"errors"
	"net/http"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/httpx"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
	"golang.org/x/text/language"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleMatrix(w http.ResponseWriter, r *http.Request) {
	projectSlug, componentSlug := pathSlugs(r)
	page, err := h.service.loadPage(r.Context(), h.RequestUser(r), projectSlug, componentSlug, r.URL.Query())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, tag := h.PageLocalizer(w, r)
	view := matrixView(page, loc, tag)
	h.WritePage(w, r, view.Title, http.StatusOK, webtemplates.Matrix(view))
}

// handleLoad answers malformed load queries with a plain 500, which is what
// the matrix script expects from the loader.
func (h handlers) handleLoad(w http.ResponseWriter, r *http.Request) {
	projectSlug, componentSlug := pathSlugs(r)
	offset, codes, err := ParseLoadQuery(r.URL.Query())
	switch {
	case errors.Is(err, ErrMissingOffset):
		_ = httpx.WriteText(w, http.StatusInternalServerError, "Missing offset")
		return
	case errors.Is(err, ErrMissingLang):
		_ = httpx.WriteText(w, http.StatusInternalServerError, "Missing lang")
		return
	}
	window, err := h.service.loadWindow(r.Context(), h.RequestUser(r), projectSlug, componentSlug, offset, codes)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	h.WriteFragment(w, r, http.StatusOK, webtemplates.MatrixTable(tableView(window, loc)))
}

func pathSlugs(r *http.Request) (string, string) {
	return strings.TrimSpace(r.PathValue("project")), strings.TrimSpace(r.PathValue("component"))
}

func matrixView(page Page, loc webtemplates.Localizer, ui language.Tag) webtemplates.MatrixView {
	project := page.Component.Project
	component := page.Component.Component

	choices := make([]webtemplates.LanguageChoice, 0, len(page.Form.Choices))
	for _, lang := range page.Form.Choices {
		choices = append(choices, webtemplates.LanguageChoice{
			Code:     lang.Code,
			Name:     languageName(lang, ui),
			Selected: contains(page.Form.Selected, lang.Code),
		})
	}
	errorsText := make([]string, 0, len(page.Form.Errors))
	for _, formErr := range page.Form.Errors {
		if formErr.Value != "" {
			errorsText = append(errorsText, webtemplates.T(loc, formErr.Key, formErr.Value))
			continue
		}
		errorsText = append(errorsText, webtemplates.T(loc, formErr.Key))
	}
	languages := make([]webtemplates.MatrixLanguage, 0, len(page.Languages))
	for _, lang := range page.Languages {
		languages = append(languages, webtemplates.MatrixLanguage{
			Code:      lang.Code,
			Name:      languageName(lang, ui),
			Direction: direction(lang),
		})
	}

	view := webtemplates.MatrixView{
		Loc:           loc,
		Title:         webtemplates.T(loc, "web.matrix.title", component.Name),
		ProjectName:   project.Name,
		ComponentName: component.Name,
		SummaryURL:    routepath.Source(project.Slug, component.Slug),
		FormAction:    routepath.AppMatrix(project.Slug, component.Slug),
		Choices:       choices,
		Errors:        errorsText,
		Languages:     languages,
		LanguageCodes: page.LanguageCodes,
	}
	if page.LanguageCodes != "" {
		view.LoadURL = routepath.AppMatrixLoad(project.Slug, component.Slug, page.LanguageCodes, 0)
	}
	return view
}

func tableView(window Window, loc webtemplates.Localizer) webtemplates.MatrixTableView {
	project := window.Component.Project
	component := window.Component.Component

	rows := make([]webtemplates.MatrixRow, 0, len(window.Rows))
	columns := len(strings.Split(window.LanguageCodes, ",")) + 1
	for _, row := range window.Rows {
		cells := make([]webtemplates.MatrixCell, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, webtemplates.MatrixCell{
				Present:   cell.Present,
				Target:    cell.Unit.Target,
				State:     string(cell.Unit.State),
				Direction: direction(cell.Language),
			})
		}
		rows = append(rows, webtemplates.MatrixRow{
			Checksum:  row.Unit.Checksum,
			Source:    row.Unit.Source,
			Context:   row.Unit.Context,
			DetailURL: routepath.SourceDetail(project.Slug, component.Slug, row.Unit.Checksum),
			Cells:     cells,
		})
	}

	view := webtemplates.MatrixTableView{
		Loc:     loc,
		Rows:    rows,
		Last:    window.Last,
		Columns: columns,
	}
	if !window.Last {
		view.NextURL = routepath.AppMatrixLoad(project.Slug, component.Slug, window.LanguageCodes, window.Offset+RowWindow)
	}
	return view
}

func languageName(lang storage.Language, ui language.Tag) string {
	if lang.Name != "" {
		return lang.Name
	}
	return webi18n.LanguageName(ui, lang.Code)
}

func direction(lang storage.Language) string {
	if lang.Direction == storage.DirectionRTL {
		return string(storage.DirectionRTL)
	}
	return string(storage.DirectionLTR)
}

func contains(values []string, want string) bool {
	for _, value := range values {
		if value == want {
			return true
		}
	}
	return false
}
