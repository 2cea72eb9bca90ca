package localeroute

import (
	"net/http"
	"net/url"

	platformi18n "github.com/louisbranch/atrium/internal/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
)

// Options configures Middleware.
type Options struct {
	// IsPage reports whether an unprefixed path is a localized page. Only
	// pages are subject to locale detection redirects.
	IsPage func(path string) bool
}

// Middleware resolves the request locale from the path prefix, strips the
// prefix and stores the locale in the request context.
//
// A request for an explicit default-locale prefix (/en/...) is redirected to
// the unprefixed path. An unprefixed GET for a page whose visitor prefers
// another locale is redirected to that locale's prefix; htmx requests are
// never redirected.
func Middleware(opts Options) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, rest, prefixed := Split(r.URL.Path)
			isGet := r.Method == http.MethodGet || r.Method == http.MethodHead

			if prefixed && locale == platformi18n.DefaultLocale && isGet {
				httpx.WriteRedirect(w, r, withQuery(rest, r.URL))
				return
			}
			if !prefixed && isGet && !httpx.IsHTMXRequest(r) && isPage(opts, rest) {
				if preferred, ok := Preferred(r); ok && preferred != platformi18n.DefaultLocale {
					httpx.WriteRedirect(w, r, withQuery(Localize(rest, preferred), r.URL))
					return
				}
			}

			stripped := r.Clone(WithLocale(r.Context(), locale))
			if prefixed {
				stripped.URL.Path = rest
				stripped.URL.RawPath = ""
			}
			next.ServeHTTP(w, stripped)
		})
	}
}

func isPage(opts Options, path string) bool {
	if opts.IsPage == nil {
		return true
	}
	return opts.IsPage(path)
}

func withQuery(path string, u *url.URL) string {
	if u == nil || u.RawQuery == "" {
		return path
	}
	return path + "?" + u.RawQuery
}
