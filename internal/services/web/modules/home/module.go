// Package home serves the localized landing page.
package home

import (
	"net/http"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// Module provides the landing route and the not-found fallback.
type Module struct{}

// New returns a home module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires the landing route.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
