package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/atrium/internal/services/auth/storage"
)

// PutSession inserts a new session row.
func (s *Store) PutSession(ctx context.Context, session storage.Session) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(session.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO sessions (id, user_id, expires_at, created_at, revoked_at, ip_address, user_agent)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.UserID,
		toMillis(session.ExpiresAt),
		toMillis(session.CreatedAt),
		nullableMillis(session.RevokedAt),
		session.IPAddress,
		session.UserAgent,
	); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession fetches a session by id regardless of its state.
func (s *Store) GetSession(ctx context.Context, sessionID string) (storage.Session, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Session{}, err
	}
	var (
		session   storage.Session
		expiresAt int64
		createdAt int64
		revokedAt sql.NullInt64
	)
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT id, user_id, expires_at, created_at, revoked_at, ip_address, user_agent
FROM sessions WHERE id = ?`, strings.TrimSpace(sessionID)).
		Scan(&session.ID, &session.UserID, &expiresAt, &createdAt, &revokedAt, &session.IPAddress, &session.UserAgent)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Session{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Session{}, fmt.Errorf("get session: %w", err)
	}
	session.ExpiresAt = fromMillis(expiresAt)
	session.CreatedAt = fromMillis(createdAt)
	session.RevokedAt = timeFromNullable(revokedAt)
	return session, nil
}

// RevokeSession marks a session revoked. Revoking twice keeps the first
// timestamp; an unknown id returns storage.ErrNotFound.
func (s *Store) RevokeSession(ctx context.Context, sessionID string, revokedAt time.Time) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE sessions SET revoked_at = COALESCE(revoked_at, ?) WHERE id = ?`,
		toMillis(revokedAt), strings.TrimSpace(sessionID))
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("revoke session rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteExpiredSessions removes sessions that expired or were revoked before cutoff.
func (s *Store) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	millis := toMillis(cutoff)
	result, err := s.sqlDB.ExecContext(ctx, `
DELETE FROM sessions WHERE expires_at <= ? OR (revoked_at IS NOT NULL AND revoked_at <= ?)`,
		millis, millis)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions rows: %w", err)
	}
	return deleted, nil
}
