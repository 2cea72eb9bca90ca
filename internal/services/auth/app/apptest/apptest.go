// Package apptest builds a real auth service backed by a temporary SQLite
// database for tests in other packages.
package apptest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/louisbranch/atrium/internal/platform/logging"
	"github.com/louisbranch/atrium/internal/platform/storage/sqlitedb"
	"github.com/louisbranch/atrium/internal/services/auth/app"
	"github.com/louisbranch/atrium/internal/services/auth/password"
	"github.com/louisbranch/atrium/internal/services/auth/sessiontoken"
	authsqlite "github.com/louisbranch/atrium/internal/services/auth/storage/sqlite"
)

// Backend is a running auth service and the signer behind its tokens.
type Backend struct {
	Service *app.Service
	Tokens  *sessiontoken.Signer
}

// New opens a fresh database under t.TempDir and builds a service with the
// cheapest bcrypt cost. The database is closed when the test ends.
func New(t testing.TB) Backend {
	t.Helper()
	ctx := context.Background()

	connector := sqlitedb.NewConnector(filepath.Join(t.TempDir(), "auth.db"))
	t.Cleanup(func() { _ = connector.Close() })
	db, err := connector.Open(ctx)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	store, err := authsqlite.New(ctx, db)
	if err != nil {
		t.Fatalf("open auth store: %v", err)
	}
	hasher, err := password.NewHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("new hasher: %v", err)
	}
	tokens, err := sessiontoken.NewSigner([]byte(strings.Repeat("t", sessiontoken.MinSecretLength)), nil)
	if err != nil {
		t.Fatalf("new signer: %v", err)
	}
	service, err := app.NewService(app.Options{
		Users:    store,
		Sessions: store,
		Hasher:   hasher,
		Tokens:   tokens,
		Logger:   logging.Discard(),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return Backend{Service: service, Tokens: tokens}
}
