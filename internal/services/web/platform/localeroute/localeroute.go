// Package localeroute maps request paths onto locales. English is served
// unprefixed and every other supported locale under /<locale>, so a path
// only carries a prefix when it is needed.
package localeroute

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/atrium/internal/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
)

// CookieName stores the visitor's explicit locale choice.
const CookieName = "atrium_locale"

const cookieMaxAge = 365 * 24 * time.Hour

// ErrUnsupportedLocale is returned when a switch targets an unknown locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

type contextKey struct{}

// WithLocale stores the active locale in ctx.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, contextKey{}, locale)
}

// FromContext returns the active locale, defaulting to English.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return platformi18n.DefaultLocale
	}
	if locale, ok := ctx.Value(contextKey{}).(string); ok && platformi18n.IsSupported(locale) {
		return locale
	}
	return platformi18n.DefaultLocale
}

// FromRequest returns the active locale of r.
func FromRequest(r *http.Request) string {
	if r == nil {
		return platformi18n.DefaultLocale
	}
	return FromContext(r.Context())
}

// Prefix returns the path prefix for locale: empty for the default locale.
func Prefix(locale string) string {
	if locale == platformi18n.DefaultLocale || !platformi18n.IsSupported(locale) {
		return ""
	}
	return "/" + locale
}

// Split separates a leading locale segment from path. prefixed is true only
// when the first segment names a supported locale, including the default.
// rest always starts with exactly one slash so it stays a same-site path.
func Split(path string) (locale string, rest string, prefixed bool) {
	path = cleanPath(path)
	segment, tail, _ := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !platformi18n.IsSupported(segment) {
		return platformi18n.DefaultLocale, path, false
	}
	return segment, "/" + strings.TrimLeft(tail, `/\`), true
}

// Localize returns path as served under locale. Any existing locale prefix
// is replaced; the query string, if present, is preserved.
func Localize(path string, locale string) string {
	rawPath, query, hasQuery := strings.Cut(path, "?")
	_, rest, _ := Split(rawPath)
	localized := rest
	if prefix := Prefix(locale); prefix != "" {
		if rest == "/" {
			localized = prefix
		} else {
			localized = prefix + rest
		}
	}
	if hasQuery && query != "" {
		localized += "?" + query
	}
	return localized
}

// Switch computes the path equivalent to path under target. Unknown targets
// yield ErrUnsupportedLocale. Paths that are not same-site relative paths
// collapse to the root so a switch never redirects off-site.
func Switch(path string, target string) (string, error) {
	if !platformi18n.IsSupported(target) {
		return "", ErrUnsupportedLocale
	}
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		path = "/"
	}
	return Localize(path, target), nil
}

// Preferred returns the locale the visitor asked for, from the locale
// cookie or else Accept-Language. ok is false when neither names a
// supported locale.
func Preferred(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	if cookie, err := r.Cookie(CookieName); err == nil && cookie != nil {
		if locale, ok := platformi18n.Normalize(cookie.Value); ok {
			return locale, true
		}
	}
	return platformi18n.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
}

// SetCookie persists locale as the visitor's explicit choice.
func SetCookie(w http.ResponseWriter, r *http.Request, locale string, policy requestmeta.SchemePolicy) {
	if w == nil || !platformi18n.IsSupported(locale) {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	})
}

func cleanPath(path string) string {
	return "/" + strings.TrimLeft(strings.TrimSpace(path), `/\`)
}
