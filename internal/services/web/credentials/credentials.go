// Package credentials performs the sign-up, sign-in and sign-out actions
// behind the auth forms. Outcomes are values: every action returns a Result
// and never an error.
package credentials

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	apperrors "github.com/louisbranch/atrium/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/atrium/internal/services/web/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
)

// MinPasswordLength is the sign-up form's minlength hint. The backend owns
// the enforced policy.
const MinPasswordLength = 6

// Kind classifies a failed Result.
type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindBackend    Kind = "backend"
	KindUnexpected Kind = "unexpected"
)

// SignInInput is the sign-in form payload.
type SignInInput struct {
	Email    string
	Password string
}

// SignUpInput is the sign-up form payload.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
}

// Result is the outcome of one credential action. Token and ExpiresAt are
// set only by a successful Authenticate.
type Result struct {
	OK        bool
	Message   string
	Kind      Kind
	Token     string
	ExpiresAt time.Time

	cause error
}

// HTTPStatus returns the status a page should use when re-rendering a form
// after this result.
func (r Result) HTTPStatus() int {
	switch {
	case r.OK:
		return http.StatusOK
	case r.Kind == KindValidation:
		return http.StatusBadRequest
	case r.Kind == KindBackend:
		return apperrors.HTTPStatus(r.cause)
	default:
		return http.StatusInternalServerError
	}
}

// SignUpRequest is sent to the backend to create an account.
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
}

// SignUpResult identifies the created account.
type SignUpResult struct {
	UserID string
}

// SignInRequest is sent to the backend to open a session.
type SignInRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// SessionResult is a newly opened backend session.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    string
}

// Backend is the authentication backend. Rejections that should be shown to
// the user are returned as typed web errors carrying the backend message;
// anything else is treated as unexpected.
type Backend interface {
	SignUpEmail(ctx context.Context, req SignUpRequest) (SignUpResult, error)
	SignInEmail(ctx context.Context, req SignInRequest) (SessionResult, error)
	SignOut(ctx context.Context, token string) error
}

// ClientInfo describes the caller recorded on a new session.
type ClientInfo struct {
	IPAddress string
	UserAgent string
}

type clientInfoKey struct{}

// WithClient attaches caller details used by Authenticate.
func WithClient(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

func clientFromContext(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey{}).(ClientInfo)
	return info
}

// Options configures Actions.
type Options struct {
	Backend Backend
	Bundle  *catalog.Bundle
	Logger  *slog.Logger
	// Timeout bounds one backend call. Zero means no extra bound.
	Timeout time.Duration
}

// Actions runs credential actions against the backend. Messages are
// localized for the locale stored in the action's context.
type Actions struct {
	backend Backend
	bundle  *catalog.Bundle
	logger  *slog.Logger
	timeout time.Duration
}

// New builds Actions.
func New(opts Options) *Actions {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bundle := opts.Bundle
	if bundle == nil {
		bundle = catalog.Default()
	}
	return &Actions{backend: opts.Backend, bundle: bundle, logger: logger, timeout: opts.Timeout}
}

// Register creates an account. It does not sign the user in.
func (a *Actions) Register(ctx context.Context, in SignUpInput) Result {
	loc := a.localizer(ctx)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	// Name and password strength are the backend's to judge; its messages
	// reach the form unchanged.
	switch {
	case in.Email == "":
		return invalid(loc.T("auth", "emailRequired"))
	case in.Password == "":
		return invalid(loc.T("auth", "passwordRequired"))
	}
	if a.backend == nil {
		return a.unexpected(ctx, "sign up", errBackendMissing, loc.T("auth", "signUpFailed"))
	}

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()
	if _, err := a.backend.SignUpEmail(callCtx, SignUpRequest{Name: in.Name, Email: in.Email, Password: in.Password}); err != nil {
		return a.failure(ctx, "sign up", err, loc.T("auth", "signUpFailed"))
	}
	return Result{OK: true}
}

// Authenticate opens a session. On success the Result carries the session
// token and its expiry.
func (a *Actions) Authenticate(ctx context.Context, in SignInInput) Result {
	loc := a.localizer(ctx)
	in.Email = strings.TrimSpace(in.Email)

	switch {
	case in.Email == "":
		return invalid(loc.T("auth", "emailRequired"))
	case in.Password == "":
		return invalid(loc.T("auth", "passwordRequired"))
	}
	if a.backend == nil {
		return a.unexpected(ctx, "sign in", errBackendMissing, loc.T("auth", "signInFailed"))
	}

	client := clientFromContext(ctx)
	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()
	opened, err := a.backend.SignInEmail(callCtx, SignInRequest{
		Email:     in.Email,
		Password:  in.Password,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
	})
	if err != nil {
		return a.failure(ctx, "sign in", err, loc.T("auth", "signInFailed"))
	}
	if strings.TrimSpace(opened.Token) == "" {
		return a.unexpected(ctx, "sign in", errEmptyToken, loc.T("auth", "signInFailed"))
	}
	return Result{OK: true, Token: opened.Token, ExpiresAt: opened.ExpiresAt}
}

// TerminateSession revokes the session behind token. Callers clear the
// cookie and navigate away whatever the outcome; failures are only logged.
func (a *Actions) TerminateSession(ctx context.Context, token string) Result {
	token = strings.TrimSpace(token)
	if token == "" {
		return Result{OK: true}
	}
	loc := a.localizer(ctx)
	if a.backend == nil {
		return a.unexpected(ctx, "sign out", errBackendMissing, loc.T("common", "errorBody"))
	}
	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()
	if err := a.backend.SignOut(callCtx, token); err != nil {
		a.logger.WarnContext(ctx, "sign out failed", "error", err)
		return a.classify(err, loc.T("common", "errorBody"))
	}
	return Result{OK: true}
}

func (a *Actions) localizer(ctx context.Context) webi18n.Localizer {
	return webi18n.New(a.bundle, localeroute.FromContext(ctx))
}

func (a *Actions) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

// failure converts a backend error into a Result, logging unexpected ones.
func (a *Actions) failure(ctx context.Context, action string, err error, fallback string) Result {
	result := a.classify(err, fallback)
	if result.Kind == KindUnexpected {
		a.logger.ErrorContext(ctx, action+" failed", "error", err)
	}
	return result
}

func (a *Actions) classify(err error, fallback string) Result {
	appErr, ok := apperrors.As(err)
	if !ok {
		return Result{Kind: KindUnexpected, Message: fallback, cause: err}
	}
	message := strings.TrimSpace(appErr.Message)
	if message == "" {
		message = fallback
	}
	return Result{Kind: KindBackend, Message: message, cause: err}
}

func (a *Actions) unexpected(ctx context.Context, action string, err error, fallback string) Result {
	a.logger.ErrorContext(ctx, action+" failed", "error", err)
	return Result{Kind: KindUnexpected, Message: fallback, cause: err}
}

func invalid(message string) Result {
	return Result{Kind: KindValidation, Message: message}
}
