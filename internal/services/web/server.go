package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
	"github.com/louisbranch/atrium/internal/platform/logging"
	"github.com/louisbranch/atrium/internal/platform/timeouts"
	webapp "github.com/louisbranch/atrium/internal/services/web/app"
	"github.com/louisbranch/atrium/internal/services/web/credentials"
	module "github.com/louisbranch/atrium/internal/services/web/module"
	"github.com/louisbranch/atrium/internal/services/web/modules"
	"github.com/louisbranch/atrium/internal/services/web/platform/httpx"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/atrium/internal/services/web/session"
	"github.com/louisbranch/atrium/internal/services/web/static"
)

// Backend is the authentication backend the web app runs on.
type Backend interface {
	credentials.Backend
	session.Backend
	session.Verifier
}

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// Policy decides whether forwarded scheme and client headers are trusted.
	Policy requestmeta.SchemePolicy
	// BackendTimeout bounds one backend call. Zero uses timeouts.AuthRequest.
	BackendTimeout time.Duration
}

// Dependencies carries the collaborators the web server is built from.
type Dependencies struct {
	Backend Backend
	// Bundle is the message catalog; nil uses the embedded default.
	Bundle *catalog.Bundle
	Logger *slog.Logger
	// Health reports backend availability on the health endpoint.
	Health func(ctx context.Context) error
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
}

// NewHandler builds the root HTTP handler.
func NewHandler(cfg Config, deps Dependencies) (http.Handler, error) {
	if deps.Backend == nil {
		return nil, errors.New("web backend is required")
	}
	logger := logging.OrDefault(deps.Logger)
	timeout := cfg.BackendTimeout
	if timeout <= 0 {
		timeout = timeouts.AuthRequest
	}

	accessor := session.NewAccessor(session.Options{
		Backend:  deps.Backend,
		Verifier: deps.Backend,
		Logger:   logger,
		Timeout:  timeout,
	})
	actions := credentials.New(credentials.Options{
		Backend: deps.Backend,
		Bundle:  deps.Bundle,
		Logger:  logger,
		Timeout: timeout,
	})

	return webapp.BuildRootHandler(webapp.Config{
		Dependencies: module.Dependencies{
			Bundle:      deps.Bundle,
			Sessions:    accessor,
			Credentials: actions,
			Policy:      cfg.Policy,
			Logger:      logger,
		},
		Modules:    modules.Default(),
		Static:     static.FS,
		Health:     deps.Health,
		Middleware: []httpx.Middleware{accessor.Middleware()},
		Logger:     logger,
	})
}

// NewServer builds a web server listening on cfg.HTTPAddr.
func NewServer(cfg Config, deps Dependencies) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("build web handler: %w", err)
	}
	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logging.OrDefault(deps.Logger),
	}, nil
}

// ListenAndServe runs the server until ctx is canceled, then shuts it down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the server on listener until ctx is canceled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if ctx == nil {
		ctx = context.Background()
	}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()
	s.logger.Info("web server listening", "addr", listener.Addr().String())

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown web server: %w", err)
		}
		if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web: %w", err)
	}
}
