// Package authpage serves the sign-in and sign-up page and the credential
// form posts.
package authpage

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// Module provides auth routes.
type Module struct{}

// New returns an auth page module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "authpage" }

// Mount wires auth route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Credentials == nil {
		return module.Mount{}, errors.New("credential actions are required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(deps), deps.Credentials))
	return module.Mount{Prefix: routepath.AuthPrefix, Handler: mux}, nil
}
