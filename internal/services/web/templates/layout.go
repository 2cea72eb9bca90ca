package templates

// Hand-written in the shape templ generates from layout.templ.

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// Layout renders the full document around the children in ctx.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		appName := page.T("common", "appName")
		title := appName
		if t := strings.TrimSpace(page.Title); t != "" && t != appName {
			title = t + " · " + appName
		}

		h.raw(`<!doctype html><html`)
		h.attr("lang", page.Locale())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(title)
		h.raw(`</title><link rel="stylesheet" href="/static/app.css"><script src="/static/app.js" defer></script></head><body>`)

		h.raw(`<header class="site-header"><a class="brand"`)
		h.url("href", page.Href(routepath.Root))
		h.raw(`>`)
		h.text(appName)
		h.raw(`</a>`)
		h.render(ctx, LanguageSelector(page))
		h.raw(`</header>`)

		if page.Notice != nil && page.Notice.Message != "" {
			h.raw(`<div id="app-notice" role="status"`)
			h.attr("class", "notice notice-"+page.Notice.Kind)
			h.raw(`>`)
			h.text(page.Notice.Message)
			h.raw(`</div>`)
		}

		h.raw(`<main id="main">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw(`</main></body></html>`)
	})
}

// ErrorState renders the body of an error page.
func ErrorState(page PageContext, notFound bool) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		titleKey, bodyKey := "errorTitle", "errorBody"
		if notFound {
			titleKey, bodyKey = "notFoundTitle", "notFoundBody"
		}
		h.raw(`<section class="card error-state" id="error-state"><h1>`)
		h.text(page.T("common", titleKey))
		h.raw(`</h1><p>`)
		h.text(page.T("common", bodyKey))
		h.raw(`</p><a class="button"`)
		h.url("href", page.Href(routepath.Root))
		h.raw(`>`)
		h.text(page.T("common", "backToHome"))
		h.raw(`</a></section>`)
	})
}

// SignOutForm renders the sign-out form button.
func SignOutForm(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<form method="post" class="sign-out"`)
		h.url("action", page.Href(routepath.AuthSignOut))
		h.raw(`><button type="submit" class="button secondary">`)
		h.text(page.T("common", "logout"))
		h.raw(`</button></form>`)
	})
}
