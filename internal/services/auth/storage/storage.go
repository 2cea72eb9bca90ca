package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/atrium/internal/platform/errors"
	"github.com/louisbranch/atrium/internal/services/auth/user"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")
	// ErrEmailTaken indicates the email already belongs to a user.
	ErrEmailTaken = apperrors.New(apperrors.CodeUserEmailTaken, "User already exists")
)

// Credential stores the password hash for a user.
type Credential struct {
	UserID       string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Session is a persisted sign-in.
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
	IPAddress string
	UserAgent string
}

// Active reports whether the session is neither revoked nor expired at now.
func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// SessionView joins a session with the user it belongs to.
type SessionView struct {
	Session Session
	User    user.User
}

// UserStore persists users and their password credentials.
type UserStore interface {
	// CreateUserWithCredential stores both records atomically. It returns
	// ErrEmailTaken when the email is already registered.
	CreateUserWithCredential(ctx context.Context, u user.User, credential Credential) error
	GetUser(ctx context.Context, userID string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	GetCredential(ctx context.Context, userID string) (Credential, error)
}

// SessionStore persists sessions.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, sessionID string) (Session, error)
	RevokeSession(ctx context.Context, sessionID string, revokedAt time.Time) error
	// DeleteExpiredSessions removes sessions that expired or were revoked
	// before cutoff and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

// SessionCache is an optional read-through cache for session views.
type SessionCache interface {
	GetSessionView(ctx context.Context, sessionID string) (SessionView, error)
	PutSessionView(ctx context.Context, view SessionView, ttl time.Duration) error
	DeleteSessionView(ctx context.Context, sessionID string) error
}
