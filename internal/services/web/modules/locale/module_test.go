package locale

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

func mount(t *testing.T) http.Handler {
	t.Helper()
	m, err := New().Mount(module.Dependencies{})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return m.Handler
}

func localeCookie(rr *httptest.ResponseRecorder) string {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == localeroute.CookieName {
			return cookie.Value
		}
	}
	return ""
}

func TestSwitchLink(t *testing.T) {
	t.Parallel()

	h := mount(t)
	tests := []struct {
		name         string
		target       string
		wantLocation string
		wantCookie   string
	}{
		{name: "to slovak", target: routepath.LocaleSwitch("sk", "/dashboard"), wantLocation: "/sk/dashboard", wantCookie: "sk"},
		{name: "back to english", target: routepath.LocaleSwitch("en", "/sk/dashboard"), wantLocation: "/dashboard", wantCookie: "en"},
		{name: "keeps query", target: routepath.LocaleSwitch("sk", "/auth?tab=signup"), wantLocation: "/sk/auth?tab=signup", wantCookie: "sk"},
		{name: "missing path", target: "/locale/sk", wantLocation: "/sk", wantCookie: "sk"},
		{name: "offsite path", target: routepath.LocaleSwitch("sk", "//evil.example/x"), wantLocation: "/sk", wantCookie: "sk"},
		{name: "upper case target", target: routepath.LocaleSwitch("SK", "/"), wantLocation: "/sk", wantCookie: "sk"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.target, nil))
			if rr.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
			}
			if got := rr.Header().Get("Location"); got != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", got, tc.wantLocation)
			}
			if got := localeCookie(rr); got != tc.wantCookie {
				t.Fatalf("locale cookie = %q, want %q", got, tc.wantCookie)
			}
		})
	}
}

func TestSwitchFormUsesSeeOther(t *testing.T) {
	t.Parallel()

	form := url.Values{"locale": {"sk"}, "path": {"/auth"}}
	req := httptest.NewRequest(http.MethodPost, routepath.Locale, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/sk/auth" {
		t.Fatalf("Location = %q, want %q", got, "/sk/auth")
	}
}

func TestSwitchRejectsUnsupportedLocale(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.LocaleSwitch("de", "/dashboard"), nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if got := rr.Header().Get("Location"); got != "" {
		t.Fatalf("Location = %q, want none", got)
	}
	if got := localeCookie(rr); got != "" {
		t.Fatalf("locale cookie = %q, want none", got)
	}
	if !strings.Contains(rr.Body.String(), "Unsupported language") {
		t.Fatalf("body = %q, want localized message", rr.Body.String())
	}
}
