// Package module defines the feature contract used by web composition.
package module

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	"github.com/louisbranch/atrium/internal/services/web/credentials"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/atrium/internal/services/web/session"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(deps Dependencies) (Mount, error)
}

// SessionReader returns the memoized session for a request.
type SessionReader interface {
	Session(r *http.Request) (session.Session, bool)
}

// CredentialActions runs the sign-up, sign-in and sign-out operations.
type CredentialActions interface {
	Register(ctx context.Context, in credentials.SignUpInput) credentials.Result
	Authenticate(ctx context.Context, in credentials.SignInInput) credentials.Result
	TerminateSession(ctx context.Context, token string) credentials.Result
}

// Dependencies carries the shared collaborators modules are built from.
type Dependencies struct {
	// Bundle is the message catalog; nil uses the embedded default.
	Bundle      *catalog.Bundle
	Sessions    SessionReader
	Credentials CredentialActions
	// Policy decides how request scheme and client address are read.
	Policy requestmeta.SchemePolicy
	Logger *slog.Logger
}

// Validate reports missing collaborators.
func (d Dependencies) Validate() error {
	if d.Sessions == nil {
		return errMissing("sessions")
	}
	if d.Credentials == nil {
		return errMissing("credentials")
	}
	return nil
}

type errMissing string

func (e errMissing) Error() string {
	return "module dependency is required: " + string(e)
}
