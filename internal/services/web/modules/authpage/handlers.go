package authpage

import (
	"net/http"
	"strings"

	"github.com/louisbranch/atrium/internal/services/web/credentials"
	module "github.com/louisbranch/atrium/internal/services/web/module"
	apperrors "github.com/louisbranch/atrium/internal/services/web/platform/errors"
	flashnotice "github.com/louisbranch/atrium/internal/services/web/platform/flash"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/platform/sessioncookie"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/atrium/internal/services/web/templates"
)

// maxFormBytes bounds credential form bodies.
const maxFormBytes = 16 << 10

type handlers struct {
	modulehandler.Base
	actions module.CredentialActions
}

func newHandlers(base modulehandler.Base, actions module.CredentialActions) handlers {
	return handlers{Base: base, actions: actions}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderAuth(w, r, http.StatusOK, webtemplates.AuthView{
		Tab: normalizeTab(r.URL.Query().Get(routepath.AuthTabQueryKey)),
	})
}

// handleSignIn opens a session. Success stores the session cookie and
// navigates to the dashboard; failure re-renders the form with the message.
func (h handlers) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	input := credentials.SignInInput{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	state := credentials.FormState{}.Submit()
	result := h.actions.Authenticate(h.ClientContext(r), input)
	state = state.Apply(result)
	if state.Failed() {
		h.renderAuth(w, r, result.HTTPStatus(), webtemplates.AuthView{
			Tab:    routepath.AuthTabSignIn,
			SignIn: webtemplates.AuthForm{Email: input.Email, Error: state.Message},
		})
		return
	}
	sessioncookie.WriteWithPolicy(w, r, result.Token, result.ExpiresAt, h.Policy())
	httpx.WriteRedirect(w, r, h.localized(r, routepath.Dashboard))
}

// handleSignUp creates an account without signing in and sends the user to
// the sign-in tab.
func (h handlers) handleSignUp(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}
	input := credentials.SignUpInput{
		Name:     r.PostForm.Get("name"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	state := credentials.FormState{}.Submit()
	result := h.actions.Register(h.ClientContext(r), input)
	state = state.Apply(result)
	if state.Failed() {
		h.renderAuth(w, r, result.HTTPStatus(), webtemplates.AuthView{
			Tab:    routepath.AuthTabSignUp,
			SignUp: webtemplates.AuthForm{Name: input.Name, Email: input.Email, Error: state.Message},
		})
		return
	}
	flashnotice.WriteWithPolicy(w, r, flashnotice.Success("auth", "signUpSuccess"), h.Policy())
	httpx.WriteRedirect(w, r, h.localized(r, routepath.Auth))
}

// handleSignOut always clears the cookie and returns to the landing page.
func (h handlers) handleSignOut(w http.ResponseWriter, r *http.Request) {
	token, _ := sessioncookie.Read(r)
	h.actions.TerminateSession(h.ClientContext(r), token)
	sessioncookie.ClearWithPolicy(w, r, h.Policy())
	flashnotice.WriteWithPolicy(w, r, flashnotice.Notice{Kind: flashnotice.KindInfo, Namespace: "common", Key: "signedOut"}, h.Policy())
	httpx.WriteRedirect(w, r, h.localized(r, routepath.Root))
}

func (h handlers) renderAuth(w http.ResponseWriter, r *http.Request, statusCode int, view webtemplates.AuthView) {
	view.MinPasswordLength = credentials.MinPasswordLength
	page := h.PageContext(r, "auth", "title")
	h.WritePage(w, r, page, statusCode, webtemplates.AuthPage(page, view))
}

func (h handlers) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindInvalidInput, "parse form: "+err.Error()))
		return false
	}
	return true
}

func (h handlers) localized(r *http.Request, path string) string {
	return localeroute.Localize(path, localeroute.FromRequest(r))
}

func normalizeTab(raw string) string {
	if strings.TrimSpace(raw) == routepath.AuthTabSignUp {
		return routepath.AuthTabSignUp
	}
	return routepath.AuthTabSignIn
}
