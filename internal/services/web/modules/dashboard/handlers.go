package dashboard

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/platform/pagerender"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
	"github.com/louisbranch/atrium/internal/services/web/session"
	webtemplates "github.com/louisbranch/atrium/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// handleIndex renders the dashboard. A full page load renders the checking
// shell without touching the session; the shell's fragment request and the
// no-script resolved link resolve it before rendering.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	timing := pagerender.EffectiveTiming(r, pagerender.SessionAfterRender)
	var (
		sess session.Session
		ok   bool
	)
	if timing == pagerender.SessionBeforeRender {
		sess, ok = h.Session(r)
	}
	page := h.PageContext(r, "dashboard", "title")

	var fragment templ.Component
	switch pagerender.ResolveState(timing, sess, ok) {
	case pagerender.StateChecking:
		fragment = webtemplates.DashboardChecking(page, page.Href(routepath.Dashboard), page.Href(routepath.DashboardResolved()))
	case pagerender.StateAuthenticated:
		fragment = webtemplates.DashboardAuthenticated(page, pagerender.Viewer(sess))
	default:
		fragment = webtemplates.DashboardAccessDenied(page)
	}
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Add("Vary", "HX-Request")
	h.WritePage(w, r, page, http.StatusOK, fragment)
}
