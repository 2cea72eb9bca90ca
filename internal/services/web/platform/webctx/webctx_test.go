package webctx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/atrium/internal/services/web/credentials"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
)

func TestWithClientInfoReturnsBackgroundForNilRequest(t *testing.T) {
	t.Parallel()

	if got := WithClientInfo(nil, requestmeta.SchemePolicy{}); got == nil {
		t.Fatalf("expected background context")
	}
}

func TestWithClientInfoReachesBackend(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	req.Header.Set("User-Agent", "  atrium-test/1.0 ")
	req.Header.Set("X-Forwarded-For", "203.0.113.9")

	tests := []struct {
		name   string
		policy requestmeta.SchemePolicy
		wantIP string
	}{
		{name: "direct peer", wantIP: "10.0.0.7"},
		{name: "trusted proxy", policy: requestmeta.SchemePolicy{TrustForwardedProto: true}, wantIP: "203.0.113.9"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			backend := &recordingBackend{}
			actions := credentials.New(credentials.Options{Backend: backend})
			result := actions.Authenticate(WithClientInfo(req, tc.policy), credentials.SignInInput{Email: "a@example.com", Password: "secret1"})
			if !result.OK {
				t.Fatalf("Authenticate() = %+v, want OK", result)
			}
			if backend.signIn.IPAddress != tc.wantIP {
				t.Fatalf("IPAddress = %q, want %q", backend.signIn.IPAddress, tc.wantIP)
			}
			if backend.signIn.UserAgent != "atrium-test/1.0" {
				t.Fatalf("UserAgent = %q, want %q", backend.signIn.UserAgent, "atrium-test/1.0")
			}
		})
	}
}

type recordingBackend struct {
	signIn credentials.SignInRequest
}

func (b *recordingBackend) SignUpEmail(context.Context, credentials.SignUpRequest) (credentials.SignUpResult, error) {
	return credentials.SignUpResult{}, nil
}

func (b *recordingBackend) SignInEmail(_ context.Context, req credentials.SignInRequest) (credentials.SessionResult, error) {
	b.signIn = req
	return credentials.SessionResult{Token: "tok", UserID: "u1"}, nil
}

func (b *recordingBackend) SignOut(context.Context, string) error {
	return nil
}
