// Package dashboard serves the session-gated dashboard page.
package dashboard

import (
	"net/http"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// Module provides dashboard routes.
type Module struct{}

// New returns a dashboard module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "dashboard" }

// Mount wires dashboard route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.Dashboard + "/", Handler: mux}, nil
}
