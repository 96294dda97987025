package source

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/check"
	"github.com/louisbranch/translating.space/internal/services/translate/priority"
	webi18n "github.com/louisbranch/translating.space/internal/services/web/i18n"
	"github.com/louisbranch/translating.space/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/translating.space/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/translating.space/internal/services/web/templates"
	"golang.org/x/text/language"
)

var fixedFilters = []string{
	"all",
	"fuzzy",
	"untranslated",
	"nottranslated",
	"translated",
	"sourcecomments",
	"targetcomments",
	"allchecks",
	"sourcechecks",
}

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleShow(w http.ResponseWriter, r *http.Request) {
	projectSlug, componentSlug := pathSlugs(r)
	summary, err := h.service.loadSummary(r.Context(), h.RequestUser(r), projectSlug, componentSlug)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, tag := h.PageLocalizer(w, r)
	view := summaryView(summary, loc, tag)
	h.WritePage(w, r, view.Title, http.StatusOK, webtemplates.SourceSummary(view))
}

func (h handlers) handleReview(w http.ResponseWriter, r *http.Request) {
	projectSlug, componentSlug := pathSlugs(r)
	query := ParseReviewQuery(r.URL.Query())
	review, err := h.service.loadReview(r.Context(), h.RequestUser(r), projectSlug, componentSlug, query)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	loc, _ := h.PageLocalizer(w, r)
	view := reviewView(review, loc, r.URL.RequestURI())
	h.WritePage(w, r, view.Title, http.StatusOK, webtemplates.SourceReview(view))
}

func pathSlugs(r *http.Request) (string, string) {
	return strings.TrimSpace(r.PathValue("project")), strings.TrimSpace(r.PathValue("component"))
}

func summaryView(s Summary, loc webtemplates.Localizer, ui language.Tag) webtemplates.SourceSummaryView {
	project := s.Source.Project
	component := s.Source.Component.Component
	reviewOf := func(typ string) string {
		return routepath.SourceReviewQuery(project.Slug, component.Slug, url.Values{"type": {typ}})
	}

	checks := make([]webtemplates.CheckCountRow, 0, len(s.Summary.Checks))
	for _, c := range s.Summary.Checks {
		checks = append(checks, webtemplates.CheckCountRow{
			Name:  c.Name,
			Label: check.Label(c.Name),
			Count: c.Count,
			URL:   reviewOf(c.Name),
		})
	}

	lang := s.Source.Translation.Language
	languageName := lang.Name
	if languageName == "" {
		languageName = webi18n.LanguageName(ui, lang.Code)
	}

	return webtemplates.SourceSummaryView{
		Loc:             loc,
		Title:           webtemplates.T(loc, "web.source.title", component.Name),
		ProjectName:     project.Name,
		ComponentName:   component.Name,
		LanguageName:    languageName,
		Total:           s.Summary.Total,
		SourceChecks:    s.Summary.SourceChecks,
		SourceComments:  s.Summary.SourceComments,
		Checks:          checks,
		ReviewURL:       routepath.SourceReview(project.Slug, component.Slug),
		SourceChecksURL: reviewOf("sourcechecks"),
		CommentsURL:     reviewOf("sourcecomments"),
		MatrixURL:       routepath.AppMatrix(project.Slug, component.Slug),
	}
}

func reviewView(rv Review, loc webtemplates.Localizer, current string) webtemplates.SourceReviewView {
	project := rv.Source.Project
	component := rv.Source.Component.Component

	units := make([]webtemplates.ReviewUnit, 0, len(rv.Items))
	for _, item := range rv.Items {
		units = append(units, reviewUnit(rv.Source, item, rv, loc))
	}

	page := webtemplates.PageView{
		Number:     rv.Page.Number,
		NumPages:   rv.Page.NumPages,
		Count:      rv.Page.Count,
		StartIndex: rv.Page.StartIndex(),
		EndIndex:   rv.Page.EndIndex(),
	}
	if rv.Page.HasPrevious() {
		page.PreviousURL = routepath.SourceReviewQuery(project.Slug, component.Slug, rv.Query.pageQuery(rv.Page.Size, rv.Page.Number-1))
	}
	if rv.Page.HasNext() {
		page.NextURL = routepath.SourceReviewQuery(project.Slug, component.Slug, rv.Query.pageQuery(rv.Page.Size, rv.Page.Number+1))
	}

	return webtemplates.SourceReviewView{
		Loc:           loc,
		Title:         webtemplates.T(loc, "web.source.review.title", component.Name),
		ProjectName:   project.Name,
		ComponentName: component.Name,
		SummaryURL:    routepath.Source(project.Slug, component.Slug),
		FormAction:    routepath.SourceReview(project.Slug, component.Slug),
		FilterType:    rv.Query.Type,
		Filters:       filterOptions(rv.Query.Type, loc),
		Ignored:       rv.Query.Ignored,
		Expand:        rv.Expand,
		QueryString:   rv.Query.QueryString(),
		Units:         units,
		Page:          page,
		Next:          current,
	}
}

func reviewUnit(src catalog.Source, item ReviewItem, rv Review, loc webtemplates.Localizer) webtemplates.ReviewUnit {
	project := src.Project
	component := src.Component.Component
	unit := webtemplates.ReviewUnit{
		Checksum:  item.Unit.Checksum,
		Source:    item.Unit.Source,
		Context:   item.Unit.Context,
		DetailURL: routepath.SourceDetail(project.Slug, component.Slug, item.Unit.Checksum),
		HasSource: item.HasSource,
	}
	if !item.HasSource {
		return unit
	}
	meta := item.Source
	unit.Priority = meta.Priority
	unit.PriorityOptions = priorityOptions(meta.Priority, loc)
	unit.CheckFlags = meta.CheckFlags
	if meta.Screenshot != "" {
		unit.ScreenshotURL = routepath.Screenshot(meta.Screenshot)
	}
	unit.CanEditPriority = rv.Capabilities.EditPriority
	unit.CanEditFlags = rv.Capabilities.EditFlags
	unit.CanUploadScreenshot = rv.Capabilities.UploadScreenshot
	unit.PriorityAction = routepath.AppSourcePriority(meta.ID)
	unit.FlagsAction = routepath.AppSourceCheckFlags(meta.ID)
	unit.ScreenshotAction = routepath.AppSourceScreenshot(meta.ID)
	return unit
}

// priorityOptions lists the presets plus the current value when it has no
// preset of its own.
func priorityOptions(current int, loc webtemplates.Localizer) []webtemplates.PriorityOption {
	options := make([]webtemplates.PriorityOption, 0, 6)
	if !priority.IsPreset(current) {
		options = append(options, webtemplates.PriorityOption{
			Value:    current,
			Label:    strconv.Itoa(current),
			Selected: true,
		})
	}
	for _, preset := range priority.Presets() {
		options = append(options, webtemplates.PriorityOption{
			Value:    preset.Value,
			Label:    webtemplates.T(loc, preset.Key),
			Selected: preset.Value == current,
		})
	}
	return options
}

func filterOptions(selected string, loc webtemplates.Localizer) []webtemplates.FilterOption {
	options := make([]webtemplates.FilterOption, 0, len(fixedFilters)+len(check.All()))
	for _, value := range fixedFilters {
		options = append(options, webtemplates.FilterOption{
			Value:    value,
			Label:    webtemplates.T(loc, "web.source.filter."+value),
			Selected: value == selected,
		})
	}
	for _, def := range check.All() {
		options = append(options, webtemplates.FilterOption{
			Value:    def.Name,
			Label:    def.Label,
			Selected: def.Name == selected,
		})
	}
	return options
}
