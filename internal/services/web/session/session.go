// Package session resolves the signed-in user for a request. The lookup runs
// at most once per request and any failure collapses to "no session".
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	"github.com/louisbranch/atrium/internal/services/web/platform/sessioncookie"
)

const tracerName = "github.com/louisbranch/atrium/internal/services/web/session"

// ErrSessionNotFound reports that the backend has no active session for a
// token. It is an expected outcome, not a failure.
var ErrSessionNotFound = errors.New("session not found")

// Session is a read-only, request-scoped copy of the backend session.
// Token and ExpiresAt are for internal use and never rendered.
type Session struct {
	UserID    string
	Name      string
	Email     string
	Image     string
	Token     string
	ExpiresAt time.Time
}

// Authenticated reports whether the session identifies a user.
func (s Session) Authenticated() bool {
	return strings.TrimSpace(s.UserID) != ""
}

// Backend resolves a session token to the live session.
type Backend interface {
	GetSession(ctx context.Context, token string) (Session, error)
}

// Verifier checks a token's signature and expiry without a backend call.
type Verifier interface {
	Verify(token string) error
}

// Options configures an Accessor.
type Options struct {
	Backend Backend
	// Verifier is optional; without it every cookie value reaches the backend.
	Verifier Verifier
	Logger   *slog.Logger
	// Timeout bounds one backend lookup. Zero means no extra bound.
	Timeout time.Duration
}

// Accessor reads the current user's session from a request.
type Accessor struct {
	backend  Backend
	verifier Verifier
	logger   *slog.Logger
	timeout  time.Duration
}

// NewAccessor builds an Accessor.
func NewAccessor(opts Options) *Accessor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Accessor{
		backend:  opts.Backend,
		verifier: opts.Verifier,
		logger:   logger,
		timeout:  opts.Timeout,
	}
}

type requestState struct {
	once    sync.Once
	session Session
	ok      bool
}

type requestStateKey struct{}

// Middleware installs the per-request memo used by Session.
func (a *Accessor) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if stateFromContext(r.Context()) != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), requestStateKey{}, &requestState{})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func stateFromContext(ctx context.Context) *requestState {
	if ctx == nil {
		return nil
	}
	state, _ := ctx.Value(requestStateKey{}).(*requestState)
	return state
}

// Session returns the session for r. ok is false when there is no cookie,
// the token is invalid or expired, the backend has no such session, or the
// lookup failed. Within one request served behind Middleware the backend is
// asked at most once.
func (a *Accessor) Session(r *http.Request) (Session, bool) {
	if a == nil || r == nil {
		return Session{}, false
	}
	if state := stateFromContext(r.Context()); state != nil {
		state.once.Do(func() {
			state.session, state.ok = a.resolve(r)
		})
		return state.session, state.ok
	}
	return a.resolve(r)
}

func (a *Accessor) resolve(r *http.Request) (Session, bool) {
	token, ok := sessioncookie.Read(r)
	if !ok || a.backend == nil {
		return Session{}, false
	}
	if a.verifier != nil {
		if err := a.verifier.Verify(token); err != nil {
			a.logger.DebugContext(r.Context(), "session token rejected", "error", err)
			return Session{}, false
		}
	}

	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "session.resolve")
	defer span.End()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	current, err := a.backend.GetSession(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			span.RecordError(err)
			a.logger.ErrorContext(r.Context(), "session lookup failed",
				"error", err,
				"request_id", httpx.RequestIDFrom(r),
			)
		}
		span.SetAttributes(attribute.Bool("session.found", false))
		return Session{}, false
	}
	if !current.Authenticated() {
		span.SetAttributes(attribute.Bool("session.found", false))
		return Session{}, false
	}
	span.SetAttributes(attribute.Bool("session.found", true))
	current.Token = token
	return current, true
}
