package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		wantPersist bool
	}{
		{name: "query param wins", target: "/?ui_lang=en", cookie: "en", accept: "cs", wantPersist: true},
		{name: "cookie used without query", target: "/", cookie: "en", accept: "cs", wantPersist: false},
		{name: "accept-language fallback", target: "/", accept: "en-GB, cs;q=0.5", wantPersist: false},
		{name: "unsupported query ignored", target: "/?ui_lang=not-a-lang", wantPersist: false},
		{name: "nothing set", target: "/", wantPersist: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != language.English {
				t.Fatalf("tag = %s, want en", tag)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()

	if tag, persist := ResolveTag(nil); tag != Default() || persist {
		t.Fatalf("ResolveTag(nil) = (%s, %v)", tag, persist)
	}
}

func TestResolvePrinterPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	printer, tag := ResolvePrinter(rr, httptest.NewRequest(http.MethodGet, "/?ui_lang=en", nil))
	if tag != language.English {
		t.Fatalf("tag = %s", tag)
	}
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil || cookie.Name != LangCookieName || cookie.Value != "en" {
		t.Fatalf("language cookie = %v, err = %v", cookie, err)
	}
	if got := printer.Sprintf("web.source.notice_priority_failed"); got != "Failed to change a priority!" {
		t.Fatalf("printer message = %q", got)
	}
}

func TestCatalogFormatsArguments(t *testing.T) {
	t.Parallel()

	printer := Printer(language.English)
	if got := printer.Sprintf("web.source.review.title", "App"); got != "Review source strings in App" {
		t.Fatalf("review title = %q", got)
	}
	if got := printer.Sprintf("web.source.title", "App"); got != "Source strings in App" {
		t.Fatalf("source title = %q", got)
	}
}

func TestLanguageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want string
	}{
		{code: "cs", want: "Czech"},
		{code: "de", want: "German"},
		{code: "pt_BR", want: "Brazilian Portuguese"},
		{code: "%%", want: "%%"},
	}
	for _, tc := range tests {
		t.Run(tc.code, func(t *testing.T) {
			t.Parallel()
			if got := LanguageName(language.English, tc.code); got != tc.want {
				t.Fatalf("LanguageName(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := Supported()
	tags[0] = language.Czech
	if Supported()[0] != language.English {
		t.Fatalf("Supported() leaked internal slice")
	}
}
