package templates

import (
	"net/http"

	"github.com/a-h/templ"
)

// SourceSummaryView is the component source summary page.
type SourceSummaryView struct {
	Loc             Localizer
	Title           string
	ProjectName     string
	ComponentName   string
	LanguageName    string
	Total           int
	SourceChecks    int
	SourceComments  int
	Checks          []CheckCountRow
	ReviewURL       string
	SourceChecksURL string
	CommentsURL     string
	MatrixURL       string
}

// CheckCountRow is one failing check in the summary breakdown.
type CheckCountRow struct {
	Name  string
	Label string
	Count int
	URL   string
}

// SourceSummary renders the component source summary.
func SourceSummary(v SourceSummaryView) templ.Component {
	return view("source", v)
}

// SourceReviewView is the paginated source review listing.
type SourceReviewView struct {
	Loc           Localizer
	Title         string
	ProjectName   string
	ComponentName string
	SummaryURL    string
	FormAction    string
	FilterType    string
	Filters       []FilterOption
	Ignored       bool
	Expand        bool
	QueryString   string
	Units         []ReviewUnit
	Page          PageView
	// Next is the redirect target posted back by edit forms.
	Next string
}

// FilterOption is one selectable review filter.
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

// PageView is the pagination state of a listing.
type PageView struct {
	Number      int
	NumPages    int
	Count       int
	StartIndex  int
	EndIndex    int
	PreviousURL string
	NextURL     string
}

// ReviewUnit is one source string in the review listing.
type ReviewUnit struct {
	Checksum            string
	Source              string
	Context             string
	DetailURL           string
	HasSource           bool
	Priority            int
	PriorityOptions     []PriorityOption
	CheckFlags          string
	ScreenshotURL       string
	CanEditPriority     bool
	CanEditFlags        bool
	CanUploadScreenshot bool
	PriorityAction      string
	FlagsAction         string
	ScreenshotAction    string
}

// PriorityOption is one preset of the priority selector.
type PriorityOption struct {
	Value    int
	Label    string
	Selected bool
}

// SourceReview renders the source review listing.
func SourceReview(v SourceReviewView) templ.Component {
	return view("source_review", v)
}

// MatrixView is the language matrix page.
type MatrixView struct {
	Loc           Localizer
	Title         string
	ProjectName   string
	ComponentName string
	SummaryURL    string
	FormAction    string
	Choices       []LanguageChoice
	Errors        []string
	Languages     []MatrixLanguage
	LanguageCodes string
	LoadURL       string
}

// LanguageChoice is one selectable language of the matrix form.
type LanguageChoice struct {
	Code     string
	Name     string
	Selected bool
}

// MatrixLanguage is one column of the matrix.
type MatrixLanguage struct {
	Code      string
	Name      string
	Direction string
}

// Matrix renders the language matrix page.
func Matrix(v MatrixView) templ.Component {
	return view("matrix", v)
}

// MatrixTableView is one window of matrix rows.
type MatrixTableView struct {
	Loc     Localizer
	Rows    []MatrixRow
	Last    bool
	NextURL string
	Columns int
}

// MatrixRow pairs a source string with its unit in every column.
type MatrixRow struct {
	Checksum  string
	Source    string
	Context   string
	DetailURL string
	Cells     []MatrixCell
}

// MatrixCell is one unit of a matrix row. Present is false when the
// translation has no unit with the row checksum.
type MatrixCell struct {
	Present   bool
	Target    string
	State     string
	Direction string
}

// MatrixTable renders a window of matrix rows.
func MatrixTable(v MatrixTableView) templ.Component {
	return view("matrix_table", v)
}

// LoginView is the sign-in page.
type LoginView struct {
	Loc         Localizer
	Action      string
	Next        string
	Username    string
	Error       string
	SignedIn    bool
	DisplayName string
	LogoutURL   string
}

// Login renders the sign-in page.
func Login(v LoginView) templ.Component {
	return view("login", v)
}

type errorView struct {
	Loc        Localizer
	StatusCode int
	StatusText string
	Message    string
}

// ErrorState renders an error page body.
func ErrorState(statusCode int, message string, loc Localizer) templ.Component {
	return view("error", errorView{
		Loc:        loc,
		StatusCode: statusCode,
		StatusText: http.StatusText(statusCode),
		Message:    message,
	})
}

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return T(loc, "web.error.title")
}
