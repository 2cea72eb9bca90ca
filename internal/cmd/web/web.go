// Package web parses web command configuration and runs the Atrium web
// process: the auth backend, its session janitor and the HTTP server.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/atrium/internal/platform/cmd"
	"github.com/louisbranch/atrium/internal/platform/logging"
	"github.com/louisbranch/atrium/internal/platform/storage/sqlitedb"
	authapp "github.com/louisbranch/atrium/internal/services/auth/app"
	"github.com/louisbranch/atrium/internal/services/auth/password"
	"github.com/louisbranch/atrium/internal/services/auth/sessiontoken"
	"github.com/louisbranch/atrium/internal/services/auth/storage"
	authredis "github.com/louisbranch/atrium/internal/services/auth/storage/redis"
	authsqlite "github.com/louisbranch/atrium/internal/services/auth/storage/sqlite"
	"github.com/louisbranch/atrium/internal/services/auth/user"
	"github.com/louisbranch/atrium/internal/services/web"
	"github.com/louisbranch/atrium/internal/services/web/integration/authgateway"
	"github.com/louisbranch/atrium/internal/services/web/platform/requestmeta"
)

// devSecret signs session tokens when running with ATRIUM_DEV=true and no
// explicit secret.
const devSecret = "atrium-development-secret-do-not-deploy"

// Config holds web command configuration.
type Config struct {
	HTTPAddr            string        `env:"ATRIUM_WEB_HTTP_ADDR" envDefault:"localhost:3000"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	AuthSecret          string        `env:"ATRIUM_AUTH_SECRET"`
	Dev                 bool          `env:"ATRIUM_DEV" envDefault:"false"`
	SessionTTL          time.Duration `env:"ATRIUM_AUTH_SESSION_TTL" envDefault:"168h"`
	PasswordMinLength   int           `env:"ATRIUM_AUTH_PASSWORD_MIN_LENGTH" envDefault:"6"`
	PasswordMaxLength   int           `env:"ATRIUM_AUTH_PASSWORD_MAX_LENGTH" envDefault:"128"`
	BcryptCost          int           `env:"ATRIUM_AUTH_BCRYPT_COST" envDefault:"10"`
	RedisURL            string        `env:"ATRIUM_REDIS_URL"`
	TrustForwardedProto bool          `env:"ATRIUM_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string        `env:"ATRIUM_LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"ATRIUM_LOG_FORMAT" envDefault:"json"`
	JanitorInterval     time.Duration `env:"ATRIUM_AUTH_JANITOR_INTERVAL" envDefault:"10m"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "SQLite database location")
	fs.StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Optional redis:// URL for the session cache")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "Allow development defaults such as the built-in session secret")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto and X-Forwarded-For")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (json, text)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) resolve() error {
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	if strings.TrimSpace(cfg.AuthSecret) == "" {
		if !cfg.Dev {
			return errors.New("ATRIUM_AUTH_SECRET is required outside development")
		}
		cfg.AuthSecret = devSecret
	}
	if len(cfg.AuthSecret) < sessiontoken.MinSecretLength {
		return fmt.Errorf("ATRIUM_AUTH_SECRET must be at least %d bytes", sessiontoken.MinSecretLength)
	}
	if cfg.PasswordMinLength <= 0 || cfg.PasswordMaxLength < cfg.PasswordMinLength {
		return fmt.Errorf("invalid password length bounds %d..%d", cfg.PasswordMinLength, cfg.PasswordMaxLength)
	}
	return nil
}

// Run starts the web runtime and blocks until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.Install(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With("service", entrypoint.ServiceWeb)
	return entrypoint.RunWithTelemetryAndOptions(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		return serve(ctx, cfg, logger)
	})
}

func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	connector := sqlitedb.NewConnector(cfg.DatabaseURL)
	defer func() {
		if err := connector.Close(); err != nil {
			logger.Error("close database", "error", err)
		}
	}()
	db, err := connector.Open(ctx)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	store, err := authsqlite.New(ctx, db)
	if err != nil {
		return fmt.Errorf("open auth store: %w", err)
	}

	var cache storage.SessionCache
	if redisURL := strings.TrimSpace(cfg.RedisURL); redisURL != "" {
		client, err := authredis.Dial(ctx, redisURL)
		if err != nil {
			return fmt.Errorf("connect session cache: %w", err)
		}
		defer client.Close()
		cache = authredis.NewCache(client, "")
		logger.Info("session cache enabled")
	}

	hasher, err := password.NewHasher(cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("init password hasher: %w", err)
	}
	tokens, err := sessiontoken.NewSigner([]byte(cfg.AuthSecret), nil)
	if err != nil {
		return fmt.Errorf("init session signer: %w", err)
	}
	service, err := authapp.NewService(authapp.Options{
		Users:      store,
		Sessions:   store,
		Cache:      cache,
		Hasher:     hasher,
		Tokens:     tokens,
		SessionTTL: cfg.SessionTTL,
		PasswordPolicy: user.PasswordPolicy{
			MinLength: cfg.PasswordMinLength,
			MaxLength: cfg.PasswordMaxLength,
		},
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("init auth service: %w", err)
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()
	go service.RunSessionJanitor(janitorCtx, cfg.JanitorInterval)

	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Policy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
	}, web.Dependencies{
		Backend: authgateway.New(service, tokens),
		Logger:  logger,
		Health:  db.PingContext,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	return server.ListenAndServe(ctx)
}
