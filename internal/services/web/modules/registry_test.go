package modules

import (
	"context"
	"net/http"
	"testing"

	"github.com/louisbranch/atrium/internal/services/web/credentials"
	"github.com/louisbranch/atrium/internal/services/web/session"
)

type nopSessions struct{}

func (nopSessions) Session(*http.Request) (session.Session, bool) { return session.Session{}, false }

type nopCredentials struct{}

func (nopCredentials) Register(context.Context, credentials.SignUpInput) credentials.Result {
	return credentials.Result{OK: true}
}

func (nopCredentials) Authenticate(context.Context, credentials.SignInInput) credentials.Result {
	return credentials.Result{OK: true}
}

func (nopCredentials) TerminateSession(context.Context, string) credentials.Result {
	return credentials.Result{OK: true}
}

func TestDefaultModulesOrder(t *testing.T) {
	t.Parallel()

	want := []string{"home", "authpage", "dashboard", "locale", "api"}
	got := Default()
	if len(got) != len(want) {
		t.Fatalf("module count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Fatalf("module[%d] id = %q, want %q", i, got[i].ID(), id)
		}
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	deps := Dependencies{Sessions: nopSessions{}, Credentials: nopCredentials{}}
	seen := map[string]string{}
	for _, m := range Default() {
		mount, err := m.Mount(deps)
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if mount.Prefix == "" || mount.Handler == nil {
			t.Fatalf("module %q mount = %+v", m.ID(), mount)
		}
		if owner, ok := seen[mount.Prefix]; ok {
			t.Fatalf("module %q duplicates prefix %q owned by %q", m.ID(), mount.Prefix, owner)
		}
		seen[mount.Prefix] = m.ID()
	}
}
