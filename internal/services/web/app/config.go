package app

import (
	"context"
	"io/fs"
	"log/slog"

	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// Static serves /static/ when set.
	Static fs.FS
	// Health reports backend availability on the health endpoint. Nil means
	// always healthy.
	Health func(ctx context.Context) error
	// Middleware runs inside the shared request middleware, in order.
	Middleware []httpx.Middleware
	Logger     *slog.Logger
}
