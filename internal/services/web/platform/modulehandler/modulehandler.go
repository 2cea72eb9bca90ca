// Package modulehandler provides a composable base for web module handlers.
//
// Page modules share request locale resolution, session access, page
// rendering and error handling. Modules embed Base rather than duplicating
// that scaffold.
package modulehandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	"github.com/louisbranch/atrium/internal/platform/logging"
	module "github.com/louisbranch/atrium/internal/services/web/module"
	webi18n "github.com/louisbranch/atrium/internal/services/web/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/platform/pagerender"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/atrium/internal/services/web/platform/webctx"
	"github.com/louisbranch/atrium/internal/services/web/platform/weberror"
	"github.com/louisbranch/atrium/internal/services/web/session"
	webtemplates "github.com/louisbranch/atrium/internal/services/web/templates"
)

// Base carries the shared collaborators used by page module handlers.
type Base struct {
	bundle   *catalog.Bundle
	sessions module.SessionReader
	policy   requestmeta.SchemePolicy
	logger   *slog.Logger
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return Base{
		bundle:   deps.Bundle,
		sessions: deps.Sessions,
		policy:   deps.Policy,
		logger:   logger,
	}
}

// Logger returns the module logger.
func (b Base) Logger() *slog.Logger {
	return b.logger
}

// Policy returns the request scheme policy.
func (b Base) Policy() requestmeta.SchemePolicy {
	return b.policy
}

// Localizer returns the localizer for the request locale.
func (b Base) Localizer(r *http.Request) webi18n.Localizer {
	return webi18n.New(b.bundle, localeroute.FromRequest(r))
}

// PageContext builds the page context with a title from the catalog.
func (b Base) PageContext(r *http.Request, titleNamespace, titleKey string) webtemplates.PageContext {
	page := pagerender.NewPageContext(r, b.bundle, "")
	page.Title = page.T(titleNamespace, titleKey)
	return page
}

// Session returns the request session. A base without a session reader
// reports no session.
func (b Base) Session(r *http.Request) (session.Session, bool) {
	if b.sessions == nil || r == nil {
		return session.Session{}, false
	}
	return b.sessions.Session(r)
}

// ClientContext returns the request context carrying caller details for
// credential operations.
func (b Base) ClientContext(r *http.Request) context.Context {
	return webctx.WithClientInfo(r, b.policy)
}

// WritePage renders a page (HTMX-aware) with the given status and fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.PageContext, statusCode int, fragment templ.Component) {
	if err := pagerender.Write(w, r, page, pagerender.Page{
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.logger.ErrorContext(r.Context(), "render page failed", "path", page.CurrentPath, "error", err)
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.bundle)
}

// WriteNotFound renders a localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.bundle)
}
