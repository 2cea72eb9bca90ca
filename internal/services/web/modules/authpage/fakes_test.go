package authpage

import (
	"context"
	"sync"

	"github.com/louisbranch/atrium/internal/services/web/credentials"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
)

type fakeActions struct {
	mu sync.Mutex

	registerResult     credentials.Result
	authenticateResult credentials.Result
	terminateResult    credentials.Result

	registered    []credentials.SignUpInput
	authenticated []credentials.SignInInput
	terminated    []string
	locales       []string
}

func (f *fakeActions) Register(ctx context.Context, in credentials.SignUpInput) credentials.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, in)
	f.locales = append(f.locales, localeroute.FromContext(ctx))
	return f.registerResult
}

func (f *fakeActions) Authenticate(ctx context.Context, in credentials.SignInInput) credentials.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.authenticated = append(f.authenticated, in)
	f.locales = append(f.locales, localeroute.FromContext(ctx))
	return f.authenticateResult
}

func (f *fakeActions) TerminateSession(_ context.Context, token string) credentials.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, token)
	return f.terminateResult
}
