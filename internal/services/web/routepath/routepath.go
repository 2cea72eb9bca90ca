// Package routepath stores canonical HTTP paths for web modules. Page paths
// are locale-neutral; localeroute adds the locale prefix.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root          = "/"
	Auth          = "/auth"
	AuthPrefix    = "/auth/"
	AuthSignIn    = "/auth/sign-in"
	AuthSignUp    = "/auth/sign-up"
	AuthSignOut   = "/auth/sign-out"
	Dashboard     = "/dashboard"
	Locale        = "/locale"
	LocalePrefix  = "/locale/"
	LocalePattern = LocalePrefix + "{locale}"
	APIPrefix     = "/api/"
	APIGetSession = "/api/auth/get-session"
	Health        = "/up"
	StaticPrefix  = "/static/"

	AuthTabQueryKey  = "tab"
	AuthTabSignIn    = "signin"
	AuthTabSignUp    = "signup"
	ResolvedQueryKey = "resolved"
	PathQueryKey     = "path"
)

// AuthTab returns the auth page route with the selected tab.
func AuthTab(tab string) string {
	tab = strings.TrimSpace(tab)
	if tab == "" || tab == AuthTabSignIn {
		return Auth
	}
	return Auth + "?" + AuthTabQueryKey + "=" + url.QueryEscape(tab)
}

// DashboardResolved returns the dashboard route that resolves the session
// before rendering. Used by the no-script fallback.
func DashboardResolved() string {
	return Dashboard + "?" + ResolvedQueryKey + "=1"
}

// LocaleSwitch returns the locale switch route for target and the page to
// come back to.
func LocaleSwitch(target string, returnPath string) string {
	route := LocalePrefix + url.PathEscape(strings.TrimSpace(target))
	returnPath = strings.TrimSpace(returnPath)
	if returnPath == "" {
		return route
	}
	return route + "?" + PathQueryKey + "=" + url.QueryEscape(returnPath)
}

// IsPage reports whether path is served by a localized page module rather
// than an API, asset, health or locale endpoint.
func IsPage(path string) bool {
	for _, prefix := range []string{StaticPrefix, APIPrefix, LocalePrefix} {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return path != Health && path != Locale
}
