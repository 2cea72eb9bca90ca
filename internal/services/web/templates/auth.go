package templates

// Hand-written in the shape templ generates from auth.templ.

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// AuthForm is the render state of one auth form.
type AuthForm struct {
	Name       string
	Email      string
	Error      string
	Submitting bool
}

// AuthView is the render state of the auth page.
type AuthView struct {
	// Tab is routepath.AuthTabSignIn or routepath.AuthTabSignUp.
	Tab               string
	SignIn            AuthForm
	SignUp            AuthForm
	MinPasswordLength int
}

// AuthPage renders the sign-in and sign-up tabs. Only the active tab's form
// is rendered.
func AuthPage(page PageContext, view AuthView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		signUp := view.Tab == routepath.AuthTabSignUp

		h.raw(`<section class="card auth" id="auth-page"><h1>`)
		h.text(page.T("auth", "title"))
		h.raw(`</h1><p class="muted">`)
		h.text(page.T("auth", "description"))
		h.raw(`</p><nav class="tabs" role="tablist">`)
		authTab(h, page, routepath.AuthTabSignIn, "signIn", !signUp)
		authTab(h, page, routepath.AuthTabSignUp, "signUp", signUp)
		h.raw(`</nav>`)
		if signUp {
			h.render(ctx, signUpForm(page, view.SignUp, view.MinPasswordLength))
		} else {
			h.render(ctx, signInForm(page, view.SignIn))
		}
		h.raw(`</section>`)
	})
}

func authTab(h *htmlWriter, page PageContext, tab string, labelKey string, active bool) {
	h.raw(`<a role="tab"`)
	h.attr("id", "tab-"+tab)
	h.url("href", page.Href(routepath.AuthTab(tab)))
	if active {
		h.raw(` aria-selected="true" class="active"`)
	} else {
		h.raw(` aria-selected="false"`)
	}
	h.raw(`>`)
	h.text(page.T("auth", labelKey))
	h.raw(`</a>`)
}

func signInForm(page PageContext, form AuthForm) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<form method="post" id="sign-in-form" class="auth-form" data-submit-form`)
		h.url("action", page.Href(routepath.AuthSignIn))
		h.raw(`>`)
		formError(h, "sign-in-error", form.Error)
		emailField(h, page, "sign-in-email", form.Email)
		passwordField(h, page, "sign-in-password", "current-password", "passwordPlaceholder", 0)
		submitButton(h, page.T("auth", "signIn"), page.T("auth", "signingIn"), form.Submitting)
		h.raw(`</form>`)
	})
}

func signUpForm(page PageContext, form AuthForm, minLength int) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<form method="post" id="sign-up-form" class="auth-form" data-submit-form`)
		h.url("action", page.Href(routepath.AuthSignUp))
		h.raw(`>`)
		formError(h, "sign-up-error", form.Error)

		h.raw(`<label for="sign-up-name">`)
		h.text(page.T("common", "name"))
		h.raw(`</label><input type="text" id="sign-up-name" name="name" autocomplete="name" required`)
		h.attr("placeholder", page.T("auth", "namePlaceholder"))
		h.attr("value", form.Name)
		h.raw(`>`)

		emailField(h, page, "sign-up-email", form.Email)
		passwordField(h, page, "sign-up-password", "new-password", "confirmPasswordPlaceholder", minLength)
		submitButton(h, page.T("auth", "signUp"), page.T("auth", "creatingAccount"), form.Submitting)
		h.raw(`</form>`)
	})
}

func formError(h *htmlWriter, id string, message string) {
	if message == "" {
		return
	}
	h.raw(`<div class="form-error" role="alert"`)
	h.attr("id", id)
	h.raw(`>`)
	h.text(message)
	h.raw(`</div>`)
}

func emailField(h *htmlWriter, page PageContext, id string, value string) {
	h.raw(`<label`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(page.T("common", "email"))
	h.raw(`</label><input type="email" name="email" autocomplete="email" required`)
	h.attr("id", id)
	h.attr("placeholder", page.T("auth", "emailPlaceholder"))
	h.attr("value", value)
	h.raw(`>`)
}

func passwordField(h *htmlWriter, page PageContext, id string, autocomplete string, placeholderKey string, minLength int) {
	h.raw(`<label`)
	h.attr("for", id)
	h.raw(`>`)
	h.text(page.T("common", "password"))
	h.raw(`</label><input type="password" name="password" required`)
	h.attr("id", id)
	h.attr("autocomplete", autocomplete)
	h.attr("placeholder", page.T("auth", placeholderKey))
	if minLength > 0 {
		h.attr("minlength", strconv.Itoa(minLength))
	}
	h.raw(`>`)
}

// submitButton renders a submit control. The loading label is swapped in by
// the page script while the form submits.
func submitButton(h *htmlWriter, label string, loadingLabel string, submitting bool) {
	h.raw(`<button type="submit" class="button"`)
	h.attr("data-loading-label", loadingLabel)
	h.flag("disabled", submitting)
	h.raw(`>`)
	if submitting {
		h.text(loadingLabel)
	} else {
		h.text(label)
	}
	h.raw(`</button>`)
}
