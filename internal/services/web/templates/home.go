package templates

// Hand-written in the shape templ generates from home.templ.

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// HomeAnonymous renders the landing page for visitors without a session.
func HomeAnonymous(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="card home" id="home" data-state="anonymous"><h1>`)
		h.text(page.T("home", "title"))
		h.raw(`</h1><p>`)
		h.text(page.T("home", "signInPrompt"))
		h.raw(`</p><p class="muted">`)
		h.text(page.T("home", "dashboardAccess"))
		h.raw(`</p><a class="button" id="home-auth-link"`)
		h.url("href", page.Href(routepath.Auth))
		h.raw(`>`)
		h.text(page.T("home", "loginRegister"))
		h.raw(`</a></section>`)
	})
}

// HomeAuthenticated renders the landing page for a signed-in user.
func HomeAuthenticated(page PageContext, viewer Viewer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="card home" id="home" data-state="authenticated"><h1>`)
		h.text(page.TV("home", "welcomeBack", map[string]string{"name": viewer.Name}))
		h.raw(`</h1><p>`)
		h.text(page.TV("home", "loggedInAs", map[string]string{"email": viewer.Email}))
		h.raw(`</p><div class="actions"><a class="button" id="home-dashboard-link"`)
		h.url("href", page.Href(routepath.Dashboard))
		h.raw(`>`)
		h.text(page.T("home", "goToDashboard"))
		h.raw(`</a>`)
		h.render(ctx, SignOutForm(page))
		h.raw(`</div></section>`)
	})
}
