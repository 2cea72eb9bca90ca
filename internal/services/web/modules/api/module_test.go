package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
	"github.com/louisbranch/atrium/internal/services/web/session"
)

type fixedSessions struct {
	sess session.Session
	ok   bool
}

func (f fixedSessions) Session(*http.Request) (session.Session, bool) {
	return f.sess, f.ok
}

func serve(t *testing.T, sessions fixedSessions, target string) *httptest.ResponseRecorder {
	t.Helper()
	m, err := New().Mount(module.Dependencies{Sessions: sessions})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	m.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestMountRequiresSessions(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatalf("Mount() error = nil, want error")
	}
}

func TestGetSessionWithoutSessionWritesNull(t *testing.T) {
	t.Parallel()

	rr := serve(t, fixedSessions{}, routepath.APIGetSession)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "null" {
		t.Fatalf("body = %q, want null", got)
	}
	if got := rr.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("Cache-Control = %q, want no-store", got)
	}
}

func TestGetSessionWritesUser(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, 10, 25, 12, 0, 0, 0, time.UTC)
	rr := serve(t, fixedSessions{ok: true, sess: session.Session{
		UserID:    "user-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Token:     "secret-token",
		ExpiresAt: expires,
	}}, routepath.APIGetSession)

	if strings.Contains(rr.Body.String(), "secret-token") {
		t.Fatalf("body leaked session token: %q", rr.Body.String())
	}
	var got sessionPayload
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.User.ID != "user-1" || got.User.Name != "Ada" || got.User.Email != "ada@example.com" {
		t.Fatalf("user = %+v", got.User)
	}
	if got.Session.ExpiresAt == nil || !got.Session.ExpiresAt.Equal(expires) {
		t.Fatalf("expiresAt = %v, want %v", got.Session.ExpiresAt, expires)
	}
}

func TestUnknownAPIPathIsJSONNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, fixedSessions{}, "/api/other")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Fatalf("Content-Type = %q, want json", got)
	}
}
