package matrix

import (
	"context"
	"errors"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/louisbranch/translating.space/internal/services/translate/catalog"
	"github.com/louisbranch/translating.space/internal/services/translate/storage"
	apperrors "github.com/louisbranch/translating.space/internal/services/web/platform/errors"
)

// RowWindow is the number of rows returned by one load request.
const RowWindow = 20

var (
	// ErrMissingOffset reports a load request without an integer offset.
	ErrMissingOffset = errors.New("missing offset")
	// ErrMissingLang reports a load request without language codes.
	ErrMissingLang = errors.New("missing lang")
)

// Gateway reads the catalog data rendered by the matrix.
type Gateway interface {
	ResolveComponent(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (catalog.Component, error)
	Translations(ctx context.Context, component catalog.Component) ([]storage.Translation, error)
	TranslationByLanguage(ctx context.Context, component catalog.Component, code string) (storage.Translation, error)
	ListLanguagesByCodes(ctx context.Context, codes []string) ([]storage.Language, error)
	CountUnits(ctx context.Context, translationID int64, filter storage.UnitFilter) (int, error)
	ListUnits(ctx context.Context, translationID int64, filter storage.UnitFilter, offset int, limit int) ([]storage.Unit, error)
	GetUnitsByChecksums(ctx context.Context, translationID int64, checksums []string) (map[string]storage.Unit, error)
}

// FormError is one validation message of the language form. Value is the
// rejected choice, empty for a missing selection.
type FormError struct {
	Key   string
	Value string
}

// LanguageForm is the matrix language selection. An unbound form has not been
// submitted.
type LanguageForm struct {
	Bound    bool
	Choices  []storage.Language
	Selected []string
	Errors   []FormError
}

// Valid reports whether a bound form passed validation.
func (f LanguageForm) Valid() bool {
	return f.Bound && len(f.Errors) == 0
}

// Page is the data of the matrix page.
type Page struct {
	Component     catalog.Component
	Form          LanguageForm
	Languages     []storage.Language
	LanguageCodes string
}

// Row pairs a unit of the first requested translation with the unit of equal
// checksum in every requested translation.
type Row struct {
	Unit  storage.Unit
	Cells []Cell
}

// Cell is one translation column of a row.
type Cell struct {
	Unit     storage.Unit
	Present  bool
	Language storage.Language
}

// Window is one loaded window of matrix rows.
type Window struct {
	Component     catalog.Component
	Rows          []Row
	Last          bool
	Offset        int
	LanguageCodes string
}

type service struct {
	gateway Gateway
}

func newService(gateway Gateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadPage(ctx context.Context, user storage.User, projectSlug string, componentSlug string, query url.Values) (Page, error) {
	component, err := s.resolve(ctx, user, projectSlug, componentSlug)
	if err != nil {
		return Page{}, err
	}
	translations, err := s.gateway.Translations(ctx, component)
	if err != nil {
		return Page{}, err
	}
	choices := make([]storage.Language, 0, len(translations))
	for _, translation := range translations {
		choices = append(choices, translation.Language)
	}
	slices.SortStableFunc(choices, func(a, b storage.Language) int {
		return strings.Compare(a.Name, b.Name)
	})

	page := Page{Component: component, Form: LanguageForm{Choices: choices}}
	if _, bound := query["lang"]; !bound {
		return page, nil
	}
	page.Form = bindLanguageForm(choices, query["lang"])
	if !page.Form.Valid() {
		return page, nil
	}

	languages, err := s.gateway.ListLanguagesByCodes(ctx, page.Form.Selected)
	if err != nil {
		return Page{}, err
	}
	codes := make([]string, 0, len(languages))
	for _, lang := range languages {
		codes = append(codes, lang.Code)
	}
	page.Languages = languages
	page.LanguageCodes = strings.Join(codes, ",")
	return page, nil
}

// bindLanguageForm validates submitted codes against the component languages.
// Blank values are dropped before validation.
func bindLanguageForm(choices []storage.Language, values []string) LanguageForm {
	form := LanguageForm{Bound: true, Choices: choices}
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		known := slices.ContainsFunc(choices, func(lang storage.Language) bool { return lang.Code == value })
		if !known {
			form.Errors = append(form.Errors, FormError{Key: "web.matrix.error_invalid_choice", Value: value})
			continue
		}
		if !slices.Contains(form.Selected, value) {
			form.Selected = append(form.Selected, value)
		}
	}
	if len(form.Selected) == 0 && len(form.Errors) == 0 {
		form.Errors = append(form.Errors, FormError{Key: "web.matrix.error_required"})
	}
	return form
}

// ParseLoadQuery reads the offset and language codes of a load request. A
// negative offset starts at the first row.
func ParseLoadQuery(query url.Values) (int, []string, error) {
	offset, err := strconv.Atoi(strings.TrimSpace(query.Get("offset")))
	if err != nil {
		return 0, nil, ErrMissingOffset
	}
	raw := query.Get("lang")
	if raw == "" {
		return 0, nil, ErrMissingLang
	}
	return max(offset, 0), strings.Split(raw, ","), nil
}

func (s service) loadWindow(ctx context.Context, user storage.User, projectSlug string, componentSlug string, offset int, codes []string) (Window, error) {
	component, err := s.resolve(ctx, user, projectSlug, componentSlug)
	if err != nil {
		return Window{}, err
	}

	translations := make([]storage.Translation, 0, len(codes))
	for _, code := range codes {
		translation, err := s.gateway.TranslationByLanguage(ctx, component, code)
		if errors.Is(err, storage.ErrNotFound) {
			return Window{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.not_found", err)
		}
		if err != nil {
			return Window{}, err
		}
		translations = append(translations, translation)
	}

	base := translations[0]
	all := storage.UnitFilter{Kind: storage.FilterAll}
	units, err := s.gateway.ListUnits(ctx, base.ID, all, offset, RowWindow)
	if err != nil {
		return Window{}, err
	}
	count, err := s.gateway.CountUnits(ctx, base.ID, all)
	if err != nil {
		return Window{}, err
	}

	checksums := make([]string, 0, len(units))
	for _, unit := range units {
		checksums = append(checksums, unit.Checksum)
	}
	byTranslation := make(map[int64]map[string]storage.Unit, len(translations))
	for _, translation := range translations {
		if _, ok := byTranslation[translation.ID]; ok {
			continue
		}
		found, err := s.gateway.GetUnitsByChecksums(ctx, translation.ID, checksums)
		if err != nil {
			return Window{}, err
		}
		byTranslation[translation.ID] = found
	}

	rows := make([]Row, 0, len(units))
	for _, unit := range units {
		cells := make([]Cell, 0, len(translations))
		for _, translation := range translations {
			match, ok := byTranslation[translation.ID][unit.Checksum]
			cells = append(cells, Cell{Unit: match, Present: ok, Language: translation.Language})
		}
		rows = append(rows, Row{Unit: unit, Cells: cells})
	}

	return Window{
		Component:     component,
		Rows:          rows,
		Last:          count <= offset+RowWindow,
		Offset:        offset,
		LanguageCodes: strings.Join(codes, ","),
	}, nil
}

func (s service) resolve(ctx context.Context, user storage.User, projectSlug string, componentSlug string) (catalog.Component, error) {
	component, err := s.gateway.ResolveComponent(ctx, user, projectSlug, componentSlug)
	if errors.Is(err, storage.ErrNotFound) {
		return catalog.Component{}, apperrors.Wrap(apperrors.KindNotFound, "web.error.not_found", err)
	}
	return component, err
}
