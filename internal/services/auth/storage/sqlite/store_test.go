package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/atrium/internal/platform/storage/sqlitedb"
	"github.com/louisbranch/atrium/internal/services/auth/storage"
	"github.com/louisbranch/atrium/internal/services/auth/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresDB(t *testing.T) {
	_, err := New(context.Background(), nil)
	require.Error(t, err)
}

func TestStoreDBNilSafe(t *testing.T) {
	var store *Store
	assert.Nil(t, store.DB())
}

func TestNewIsIdempotent(t *testing.T) {
	store := openTempStore(t)
	again, err := New(context.Background(), store.DB())
	require.NoError(t, err)
	assert.NotNil(t, again)
}

func TestCreateUserWithCredentialRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	u := user.User{
		ID:        "user-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Image:     "https://example.com/ada.png",
		CreatedAt: created,
		UpdatedAt: created,
	}
	require.NoError(t, store.CreateUserWithCredential(ctx, u, storage.Credential{
		UserID:       u.ID,
		PasswordHash: "hash",
		CreatedAt:    created,
		UpdatedAt:    created,
	}))

	got, err := store.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	byEmail, err := store.GetUserByEmail(ctx, " ADA@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "user-1", byEmail.ID)

	credential, err := store.GetCredential(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "hash", credential.PasswordHash)
}

func TestCreateUserWithCredentialRejectsDuplicateEmail(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	first := user.User{ID: "user-1", Name: "Ada", Email: "ada@example.com", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.CreateUserWithCredential(ctx, first, storage.Credential{UserID: "user-1", PasswordHash: "h", CreatedAt: now, UpdatedAt: now}))

	second := user.User{ID: "user-2", Name: "Other", Email: "ada@example.com", CreatedAt: now, UpdatedAt: now}
	err := store.CreateUserWithCredential(ctx, second, storage.Credential{UserID: "user-2", PasswordHash: "h", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, storage.ErrEmailTaken)

	_, err = store.GetUser(ctx, "user-2")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateUserWithCredentialValidatesInput(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	assert.Error(t, store.CreateUserWithCredential(ctx, user.User{ID: " ", Email: "a@b.co"}, storage.Credential{PasswordHash: "h"}))
	assert.Error(t, store.CreateUserWithCredential(ctx, user.User{ID: "u", Email: ""}, storage.Credential{PasswordHash: "h"}))
	assert.Error(t, store.CreateUserWithCredential(ctx, user.User{ID: "u", Email: "a@b.co"}, storage.Credential{}))
}

func TestGetMissingRecords(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	_, err := store.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetUserByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetCredential(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = store.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", now)

	session := storage.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
		IPAddress: "127.0.0.1",
		UserAgent: "test",
	}
	require.NoError(t, store.PutSession(ctx, session))

	got, err := store.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.True(t, got.Active(now))

	revokedAt := now.Add(time.Minute)
	require.NoError(t, store.RevokeSession(ctx, "sess-1", revokedAt))
	require.NoError(t, store.RevokeSession(ctx, "sess-1", revokedAt.Add(time.Minute)))

	got, err = store.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt)
	assert.True(t, got.RevokedAt.Equal(revokedAt))
	assert.False(t, got.Active(now.Add(2*time.Minute)))

	assert.ErrorIs(t, store.RevokeSession(ctx, "missing", now), storage.ErrNotFound)
}

func TestPutSessionRequiresKnownUser(t *testing.T) {
	store := openTempStore(t)
	now := time.Now().UTC()
	err := store.PutSession(context.Background(), storage.Session{
		ID:        "sess-1",
		UserID:    "ghost",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	})
	assert.Error(t, err)
}

func TestDeleteExpiredSessions(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	seedUser(t, store, "user-1", now)

	for _, session := range []storage.Session{
		{ID: "expired", UserID: "user-1", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
		{ID: "active", UserID: "user-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{ID: "revoked", UserID: "user-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	} {
		require.NoError(t, store.PutSession(ctx, session))
	}
	require.NoError(t, store.RevokeSession(ctx, "revoked", now.Add(-time.Minute)))

	deleted, err := store.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	_, err = store.GetSession(ctx, "active")
	assert.NoError(t, err)
	_, err = store.GetSession(ctx, "expired")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetUser(ctx, "user-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func seedUser(t *testing.T, store *Store, userID string, now time.Time) {
	t.Helper()
	u := user.User{ID: userID, Name: "User", Email: userID + "@example.com", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.CreateUserWithCredential(context.Background(), u, storage.Credential{
		UserID:       userID,
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	connector := sqlitedb.NewConnector(filepath.Join(t.TempDir(), "auth.db"))
	t.Cleanup(func() {
		_ = connector.Close()
	})
	sqlDB, err := connector.Open(context.Background())
	require.NoError(t, err)
	store, err := New(context.Background(), sqlDB)
	require.NoError(t, err)
	return store
}
