// Package authsecret generates session signing secrets for ATRIUM_AUTH_SECRET.
package authsecret

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/atrium/internal/services/auth/sessiontoken"
)

// EnvKey is the variable the generated secret is written for.
const EnvKey = "ATRIUM_AUTH_SECRET"

// Config holds configuration for secret generation.
type Config struct {
	Bytes int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: 32}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run generates the secret and writes it to out as an env assignment. The
// hex encoding must reach sessiontoken.MinSecretLength characters.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if cfg.Bytes*2 < sessiontoken.MinSecretLength {
		return fmt.Errorf("bytes must be at least %d", sessiontoken.MinSecretLength/2)
	}
	if out == nil {
		return errors.New("output is required")
	}
	if reader == nil {
		reader = rand.Reader
	}

	buf := make([]byte, cfg.Bytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return fmt.Errorf("generate random bytes: %w", err)
	}
	_, err := fmt.Fprintf(out, "%s=%s\n", EnvKey, hex.EncodeToString(buf))
	return err
}
