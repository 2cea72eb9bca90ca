package templates

// Hand-written in the shape templ generates from dashboard.templ.

import (
	"context"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// DashboardChecking renders the shell shown while the session is resolved.
// It fetches fragmentURL as an htmx fragment on load and offers fallbackURL
// to clients without scripts.
func DashboardChecking(page PageContext, fragmentURL string, fallbackURL string) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="card dashboard" id="dashboard" data-state="checking" aria-busy="true" hx-trigger="load" hx-swap="outerHTML"`)
		h.url("hx-get", fragmentURL)
		h.raw(`><p class="spinner">`)
		h.text(page.T("common", "loading"))
		h.raw(`</p><p class="muted">`)
		h.text(page.T("dashboard", "loadingDescription"))
		h.raw(`</p><noscript><a class="button"`)
		h.url("href", fallbackURL)
		h.raw(`>`)
		h.text(page.T("common", "continue"))
		h.raw(`</a></noscript></section>`)
	})
}

// DashboardAccessDenied renders the dashboard for a visitor without a session.
func DashboardAccessDenied(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<section class="card dashboard" id="dashboard" data-state="anonymous"><h1>`)
		h.text(page.T("dashboard", "accessDenied"))
		h.raw(`</h1><p>`)
		h.text(page.T("dashboard", "needToBeLoggedIn"))
		h.raw(`</p><a class="button" id="dashboard-auth-link"`)
		h.url("href", page.Href(routepath.Auth))
		h.raw(`>`)
		h.text(page.T("common", "goToLogin"))
		h.raw(`</a></section>`)
	})
}

// DashboardAuthenticated renders the dashboard for a signed-in user.
func DashboardAuthenticated(page PageContext, viewer Viewer) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="card dashboard" id="dashboard" data-state="authenticated"><h1>`)
		h.text(page.T("dashboard", "title"))
		h.raw(`</h1><p>`)
		h.text(page.TV("dashboard", "welcome", map[string]string{"name": viewer.Name}))
		h.raw(`</p>`)

		h.raw(`<section class="user-info"><h2>`)
		h.text(page.T("dashboard", "userInformation"))
		h.raw(`</h2><dl>`)
		definition(h, page.T("common", "name"), "user-name", viewer.Name)
		definition(h, page.T("common", "email"), "user-email", viewer.Email)
		definition(h, page.T("dashboard", "userId"), "user-id", viewer.UserID)
		if viewer.Image != "" {
			h.raw(`<dt>`)
			h.text(page.T("dashboard", "profileImage"))
			h.raw(`</dt><dd><img id="user-image" width="64" height="64"`)
			h.url("src", viewer.Image)
			h.attr("alt", page.T("dashboard", "profileImage"))
			h.raw(`></dd>`)
		}
		h.raw(`</dl></section>`)

		h.raw(`<section class="quick-actions"><h2>`)
		h.text(page.T("dashboard", "quickActions"))
		h.raw(`</h2><div class="actions"><a class="button secondary"`)
		h.url("href", page.Href(routepath.Root))
		h.raw(`>`)
		h.text(page.T("common", "backToHome"))
		h.raw(`</a>`)
		h.render(ctx, SignOutForm(page))
		h.raw(`</div></section>`)

		h.raw(`<section class="account-status"><h2>`)
		h.text(page.T("dashboard", "accountStatus"))
		h.raw(`</h2><p>`)
		h.text(page.T("dashboard", "accountActive"))
		h.raw(`</p></section></section>`)
	})
}

func definition(h *htmlWriter, term string, id string, value string) {
	h.raw(`<dt>`)
	h.text(term)
	h.raw(`</dt><dd`)
	h.attr("id", id)
	h.raw(`>`)
	h.text(value)
	h.raw(`</dd>`)
}
