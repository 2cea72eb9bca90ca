package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/atrium/internal/services/auth/storage"
	"github.com/louisbranch/atrium/internal/services/auth/user"
)

const userColumns = `id, name, email, email_verified, image, created_at, updated_at`

// CreateUserWithCredential persists a user and its password hash atomically.
func (s *Store) CreateUserWithCredential(ctx context.Context, u user.User, credential storage.Credential) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(u.ID) == "" {
		return fmt.Errorf("user id is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if strings.TrimSpace(credential.PasswordHash) == "" {
		return fmt.Errorf("password hash is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO users (`+userColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.EmailVerified, u.Image, toMillis(u.CreatedAt), toMillis(u.UpdatedAt),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("put user: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO credentials (user_id, password_hash, created_at, updated_at)
VALUES (?, ?, ?, ?)`,
		u.ID, credential.PasswordHash, toMillis(credential.CreatedAt), toMillis(credential.UpdatedAt),
	); err != nil {
		return fmt.Errorf("put credential: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user: %w", err)
	}
	return nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, userID string) (user.User, error) {
	if err := s.ready(ctx); err != nil {
		return user.User{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, strings.TrimSpace(userID))
	return scanUser(row)
}

// GetUserByEmail fetches a user by normalized email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	if err := s.ready(ctx); err != nil {
		return user.User{}, err
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

// GetCredential fetches the password credential for a user.
func (s *Store) GetCredential(ctx context.Context, userID string) (storage.Credential, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Credential{}, err
	}
	var (
		credential storage.Credential
		createdAt  int64
		updatedAt  int64
	)
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT user_id, password_hash, created_at, updated_at
FROM credentials WHERE user_id = ?`, strings.TrimSpace(userID)).
		Scan(&credential.UserID, &credential.PasswordHash, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Credential{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.Credential{}, fmt.Errorf("get credential: %w", err)
	}
	credential.CreatedAt = fromMillis(createdAt)
	credential.UpdatedAt = fromMillis(updatedAt)
	return credential, nil
}

func scanUser(row *sql.Row) (user.User, error) {
	var (
		u         user.User
		createdAt int64
		updatedAt int64
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.EmailVerified, &u.Image, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, storage.ErrNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}
