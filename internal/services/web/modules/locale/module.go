// Package locale serves the language switch endpoints.
package locale

import (
	"net/http"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// Module provides locale switch routes.
type Module struct{}

// New returns a locale module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "locale" }

// Mount wires locale switch handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.LocalePrefix, Handler: mux}, nil
}
