// Package templates renders the HTML pages and fragments of the web app as
// templ components.
//
// The components are written by hand against the templ runtime instead of
// being generated. Each file names the .templ source it corresponds to
// (home.go is home.templ, and so on); html.go holds the escaping writer that
// generated code would get from templ itself.
package templates

import (
	"strings"

	webi18n "github.com/louisbranch/atrium/internal/services/web/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
)

// PageContext is the shared per-request state every component needs.
type PageContext struct {
	Loc webi18n.Localizer
	// CurrentPath is the locale-neutral request path.
	CurrentPath string
	// CurrentQuery is the raw query string, without "?".
	CurrentQuery string
	Title        string
	Notice       *Notice
}

// Notice is a one-time message shown at the top of a full page.
type Notice struct {
	Kind    string
	Message string
}

// Viewer is the signed-in user as shown on a page.
type Viewer struct {
	UserID string
	Name   string
	Email  string
	Image  string
}

// Locale returns the page locale.
func (p PageContext) Locale() string {
	return p.Loc.Locale()
}

// T returns a message from the page locale.
func (p PageContext) T(namespace, key string) string {
	return p.Loc.T(namespace, key)
}

// TV returns a message from the page locale with {name} placeholders filled.
func (p PageContext) TV(namespace, key string, vars map[string]string) string {
	return p.Loc.TV(namespace, key, vars)
}

// Href localizes a locale-neutral path for the page locale.
func (p PageContext) Href(path string) string {
	return localeroute.Localize(path, p.Locale())
}

// CurrentURL returns the localized URL of the current page.
func (p PageContext) CurrentURL() string {
	path := strings.TrimSpace(p.CurrentPath)
	if path == "" {
		path = "/"
	}
	if p.CurrentQuery != "" {
		path += "?" + p.CurrentQuery
	}
	return p.Href(path)
}
