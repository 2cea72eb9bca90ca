// Package pagerender centralizes page rendering for web modules: the
// session-dependent page state and the full-page versus HTMX fragment
// response shape.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	flashnotice "github.com/louisbranch/atrium/internal/services/web/platform/flash"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/atrium/internal/services/web/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
	"github.com/louisbranch/atrium/internal/services/web/session"
	webtemplates "github.com/louisbranch/atrium/internal/services/web/templates"
)

// Timing declares when a page resolves the session relative to its first
// render.
type Timing int

const (
	// SessionBeforeRender resolves the session before any output.
	SessionBeforeRender Timing = iota
	// SessionAfterRender renders a checking shell first and resolves the
	// session in a follow-up fragment request.
	SessionAfterRender
)

// State is the session-dependent variant a page renders.
type State int

const (
	StateChecking State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateChecking:
		return "checking"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// EffectiveTiming returns the timing for r. Fragment requests and explicit
// resolved requests always resolve before render.
func EffectiveTiming(r *http.Request, declared Timing) Timing {
	if declared == SessionBeforeRender {
		return declared
	}
	if httpx.IsHTMXRequest(r) {
		return SessionBeforeRender
	}
	if r != nil && r.URL != nil && r.URL.Query().Get(routepath.ResolvedQueryKey) == "1" {
		return SessionBeforeRender
	}
	return declared
}

// ResolveState picks the page variant. A page that resolves after render is
// Checking until the follow-up request; otherwise a session with a user is
// Authenticated and anything else is Anonymous.
func ResolveState(timing Timing, sess session.Session, ok bool) State {
	if timing == SessionAfterRender {
		return StateChecking
	}
	if ok && sess.Authenticated() {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Viewer converts a session into the user fields a page may render.
func Viewer(sess session.Session) webtemplates.Viewer {
	return webtemplates.Viewer{
		UserID: sess.UserID,
		Name:   sess.Name,
		Email:  sess.Email,
		Image:  sess.Image,
	}
}

// NewPageContext builds the page context for r in its resolved locale.
func NewPageContext(r *http.Request, bundle *catalog.Bundle, title string) webtemplates.PageContext {
	page := webtemplates.PageContext{
		Loc:         webi18n.New(bundle, localeroute.FromRequest(r)),
		CurrentPath: "/",
		Title:       title,
	}
	if r != nil && r.URL != nil {
		page.CurrentPath = r.URL.Path
		page.CurrentQuery = r.URL.RawQuery
	}
	return page
}

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// Write renders page. HTMX requests get the fragment alone; other requests
// get the full layout with any pending flash notice. Output is buffered so a
// render error leaves the response untouched.
func Write(w http.ResponseWriter, r *http.Request, pageCtx webtemplates.PageContext, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	ctx := httpx.RequestContext(r)

	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		pageCtx.Notice = resolveFlashNotice(w, r, pageCtx.Loc)
		if err := webtemplates.Layout(pageCtx).Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashNotice(w http.ResponseWriter, r *http.Request, loc webi18n.Localizer) *webtemplates.Notice {
	notice, ok := flashnotice.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.T(notice.Namespace, notice.Key))
	if message == "" {
		return nil
	}
	return &webtemplates.Notice{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
