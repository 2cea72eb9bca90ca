// Package api serves the JSON session lookup used by browser scripts.
package api

import (
	"errors"
	"net/http"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// Module provides JSON API routes.
type Module struct{}

// New returns an API module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires API handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Sessions == nil {
		return module.Mount{}, errors.New("session reader is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, handlers{sessions: deps.Sessions})
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
