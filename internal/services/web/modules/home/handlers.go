package home

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/atrium/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

// handleIndex resolves the session before rendering; the landing page is
// never in the checking state.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.Session(r)
	page := h.PageContext(r, "home", "title")

	var fragment templ.Component
	switch pagerender.ResolveState(pagerender.SessionBeforeRender, sess, ok) {
	case pagerender.StateAuthenticated:
		fragment = webtemplates.HomeAuthenticated(page, pagerender.Viewer(sess))
	default:
		fragment = webtemplates.HomeAnonymous(page)
	}
	h.WritePage(w, r, page, http.StatusOK, fragment)
}
