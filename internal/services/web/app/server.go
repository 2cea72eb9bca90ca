package app

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/louisbranch/atrium/internal/platform/logging"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	"github.com/louisbranch/atrium/internal/services/web/platform/localeroute"
	"github.com/louisbranch/atrium/internal/services/web/platform/observability"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// BuildRootHandler composes the modules with static assets, the health
// endpoint and the shared request middleware.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	if err := cfg.Dependencies.Validate(); err != nil {
		return nil, err
	}
	logger := logging.OrDefault(cfg.Logger)
	if cfg.Dependencies.Logger == nil {
		cfg.Dependencies.Logger = logger
	}

	root, err := Compose(ComposeInput{Dependencies: cfg.Dependencies, Modules: cfg.Modules})
	if err != nil {
		return nil, err
	}
	if cfg.Static != nil {
		root.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, staticHandler(cfg.Static)))
	}
	root.HandleFunc(http.MethodGet+" "+routepath.Health, healthHandler(cfg.Health, logger))

	middleware := []httpx.Middleware{
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(logger),
		httpx.RequireSameOrigin(cfg.Dependencies.Policy),
		localeroute.Middleware(localeroute.Options{IsPage: routepath.IsPage}),
	}
	middleware = append(middleware, cfg.Middleware...)
	return httpx.Chain(root, middleware...), nil
}

func staticHandler(assets fs.FS) http.Handler {
	files := http.FileServer(http.FS(assets))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

func healthHandler(check func(ctx context.Context) error, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				logger.WarnContext(r.Context(), "health check failed", "error", err)
				_ = httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
