package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/atrium/internal/platform/errors"
	"github.com/louisbranch/atrium/internal/platform/id"
	"github.com/louisbranch/atrium/internal/services/auth/password"
	"github.com/louisbranch/atrium/internal/services/auth/sessiontoken"
	"github.com/louisbranch/atrium/internal/services/auth/storage"
	"github.com/louisbranch/atrium/internal/services/auth/user"
)

// DefaultSessionTTL is how long a new session stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

const tracerName = "github.com/louisbranch/atrium/internal/services/auth/app"

var (
	// ErrUserExists is returned when signing up with a registered email.
	ErrUserExists = apperrors.New(apperrors.CodeUserEmailTaken, "User already exists")
	// ErrInvalidCredentials is returned for any failed sign-in.
	ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "Invalid email or password")
	// ErrSessionNotFound is returned when a token does not resolve to an active session.
	ErrSessionNotFound = apperrors.New(apperrors.CodeSessionNotFound, "Session not found")
)

// Options wires service collaborators. Users, Sessions, Hasher and Tokens
// are required.
type Options struct {
	Users          storage.UserStore
	Sessions       storage.SessionStore
	Cache          storage.SessionCache
	Hasher         *password.Hasher
	Tokens         *sessiontoken.Signer
	SessionTTL     time.Duration
	PasswordPolicy user.PasswordPolicy
	Logger         *slog.Logger
	Now            func() time.Time
	NewID          func() (string, error)
}

// Service implements email/password authentication.
type Service struct {
	users    storage.UserStore
	sessions storage.SessionStore
	cache    storage.SessionCache
	hasher   *password.Hasher
	tokens   *sessiontoken.Signer
	ttl      time.Duration
	policy   user.PasswordPolicy
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
	newID    func() (string, error)
}

// SignUpRequest carries sign-up form input.
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
	Image    string
}

// SignInRequest carries sign-in form input plus client metadata.
type SignInRequest struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// SessionResult is an active session with its owner and cookie token.
type SessionResult struct {
	Token   string
	Session storage.Session
	User    user.User
}

// NewService validates options and builds a service.
func NewService(opts Options) (*Service, error) {
	if opts.Users == nil {
		return nil, errors.New("user store is required")
	}
	if opts.Sessions == nil {
		return nil, errors.New("session store is required")
	}
	if opts.Hasher == nil {
		return nil, errors.New("password hasher is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("session token signer is required")
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = DefaultSessionTTL
	}
	if opts.PasswordPolicy == (user.PasswordPolicy{}) {
		opts.PasswordPolicy = user.DefaultPasswordPolicy()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = id.NewID
	}
	return &Service{
		users:    opts.Users,
		sessions: opts.Sessions,
		cache:    opts.Cache,
		hasher:   opts.Hasher,
		tokens:   opts.Tokens,
		ttl:      opts.SessionTTL,
		policy:   opts.PasswordPolicy,
		logger:   opts.Logger,
		tracer:   otel.Tracer(tracerName),
		now:      opts.Now,
		newID:    opts.NewID,
	}, nil
}

// SignUpEmail registers a user with a password. It does not start a session.
func (s *Service) SignUpEmail(ctx context.Context, req SignUpRequest) (user.User, error) {
	ctx, span := s.tracer.Start(ctx, "auth.SignUpEmail")
	defer span.End()

	input, err := user.NormalizeSignUp(user.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Image:    req.Image,
	}, s.policy)
	if err != nil {
		return user.User{}, recordError(span, err)
	}

	created, err := user.CreateUser(input, s.now, s.newID)
	if err != nil {
		return user.User{}, recordError(span, err)
	}
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return user.User{}, recordError(span, err)
	}

	err = s.users.CreateUserWithCredential(ctx, created, storage.Credential{
		UserID:       created.ID,
		PasswordHash: hash,
		CreatedAt:    created.CreatedAt,
		UpdatedAt:    created.UpdatedAt,
	})
	if errors.Is(err, storage.ErrEmailTaken) {
		return user.User{}, recordError(span, ErrUserExists)
	}
	if err != nil {
		return user.User{}, recordError(span, fmt.Errorf("create user: %w", err))
	}

	span.SetAttributes(attribute.String("user.id", created.ID))
	s.logger.InfoContext(ctx, "user signed up", "user_id", created.ID)
	return created, nil
}

// SignInEmail verifies credentials and starts a new session.
func (s *Service) SignInEmail(ctx context.Context, req SignInRequest) (SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.SignInEmail")
	defer span.End()

	email, err := user.NormalizeEmail(req.Email)
	if err != nil {
		return SessionResult{}, recordError(span, err)
	}
	if req.Password == "" {
		return SessionResult{}, recordError(span, ErrInvalidCredentials)
	}

	account, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		s.hasher.CompareDummy(req.Password)
		return SessionResult{}, recordError(span, ErrInvalidCredentials)
	}
	if err != nil {
		return SessionResult{}, recordError(span, fmt.Errorf("get user: %w", err))
	}

	credential, err := s.users.GetCredential(ctx, account.ID)
	if errors.Is(err, storage.ErrNotFound) {
		s.hasher.CompareDummy(req.Password)
		return SessionResult{}, recordError(span, ErrInvalidCredentials)
	}
	if err != nil {
		return SessionResult{}, recordError(span, fmt.Errorf("get credential: %w", err))
	}

	if err := s.hasher.Compare(credential.PasswordHash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return SessionResult{}, recordError(span, ErrInvalidCredentials)
		}
		return SessionResult{}, recordError(span, err)
	}

	sessionID, err := s.newID()
	if err != nil {
		return SessionResult{}, recordError(span, fmt.Errorf("generate session id: %w", err))
	}
	now := s.now().UTC()
	session := storage.Session{
		ID:        sessionID,
		UserID:    account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
		IPAddress: strings.TrimSpace(req.IPAddress),
		UserAgent: strings.TrimSpace(req.UserAgent),
	}
	if err := s.sessions.PutSession(ctx, session); err != nil {
		return SessionResult{}, recordError(span, fmt.Errorf("put session: %w", err))
	}
	token, err := s.tokens.Issue(session.ID, session.ExpiresAt)
	if err != nil {
		return SessionResult{}, recordError(span, err)
	}

	span.SetAttributes(attribute.String("user.id", account.ID))
	s.logger.InfoContext(ctx, "user signed in", "user_id", account.ID, "session_id", session.ID)
	return SessionResult{Token: token, Session: session, User: account}, nil
}

// GetSession resolves a cookie token to its active session and user.
// Invalid, expired, revoked or unknown tokens return ErrSessionNotFound.
func (s *Service) GetSession(ctx context.Context, token string) (SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "auth.GetSession")
	defer span.End()

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return SessionResult{}, ErrSessionNotFound
	}
	now := s.now().UTC()

	if s.cache != nil {
		view, err := s.cache.GetSessionView(ctx, claims.SessionID)
		switch {
		case err == nil && view.Session.Active(now):
			span.SetAttributes(attribute.Bool("session.cache_hit", true))
			return SessionResult{Token: token, Session: view.Session, User: view.User}, nil
		case err != nil && !errors.Is(err, storage.ErrNotFound):
			s.logger.WarnContext(ctx, "session cache read failed", "error", err)
		}
	}

	session, err := s.sessions.GetSession(ctx, claims.SessionID)
	if errors.Is(err, storage.ErrNotFound) {
		return SessionResult{}, ErrSessionNotFound
	}
	if err != nil {
		return SessionResult{}, recordError(span, fmt.Errorf("get session: %w", err))
	}
	if !session.Active(now) {
		return SessionResult{}, ErrSessionNotFound
	}

	account, err := s.users.GetUser(ctx, session.UserID)
	if errors.Is(err, storage.ErrNotFound) {
		return SessionResult{}, ErrSessionNotFound
	}
	if err != nil {
		return SessionResult{}, recordError(span, fmt.Errorf("get user: %w", err))
	}

	if s.cache != nil {
		view := storage.SessionView{Session: session, User: account}
		if err := s.cache.PutSessionView(ctx, view, session.ExpiresAt.Sub(now)); err != nil {
			s.logger.WarnContext(ctx, "session cache write failed", "error", err)
		}
	}
	return SessionResult{Token: token, Session: session, User: account}, nil
}

// SignOut revokes the session behind token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "auth.SignOut")
	defer span.End()

	claims, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, sessiontoken.ErrExpired) {
			return nil
		}
		return recordError(span, ErrSessionNotFound)
	}

	// The row is revoked before the cached view is evicted so a concurrent
	// lookup cannot re-cache a session that is about to end.
	revokeErr := s.sessions.RevokeSession(ctx, claims.SessionID, s.now().UTC())
	if s.cache != nil {
		if err := s.cache.DeleteSessionView(ctx, claims.SessionID); err != nil {
			s.logger.WarnContext(ctx, "session cache delete failed", "error", err)
		}
	}
	if err := revokeErr; err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return recordError(span, ErrSessionNotFound)
		}
		return recordError(span, fmt.Errorf("revoke session: %w", err))
	}
	s.logger.InfoContext(ctx, "session revoked", "session_id", claims.SessionID)
	return nil
}

// PurgeExpiredSessions deletes sessions that are expired or revoked.
func (s *Service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "auth.PurgeExpiredSessions")
	defer span.End()

	deleted, err := s.sessions.DeleteExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		return 0, recordError(span, err)
	}
	span.SetAttributes(attribute.Int64("sessions.deleted", deleted))
	return deleted, nil
}

func recordError(span trace.Span, err error) error {
	if err == nil {
		return nil
	}
	span.RecordError(err)
	if !apperrors.IsDomainError(err) {
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
