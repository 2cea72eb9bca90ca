package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"ATRIUM_TEST_PORT" envDefault:"123"`
}

type requiredEnvTestConfig struct {
	DatabaseURL string `env:"ATRIUM_TEST_DATABASE_URL,required,notEmpty"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ATRIUM_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvRequiredMissing(t *testing.T) {
	var cfg requiredEnvTestConfig

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error for missing required variable")
	}
	if !strings.Contains(err.Error(), "ATRIUM_TEST_DATABASE_URL") {
		t.Fatalf("expected variable name in error, got %v", err)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "ATRIUM_TEST_DOTENV_NEW=from-file\nATRIUM_TEST_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ATRIUM_TEST_DOTENV_SET", "from-env")
	t.Setenv("ATRIUM_TEST_DOTENV_NEW", "")
	if err := os.Unsetenv("ATRIUM_TEST_DOTENV_NEW"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("ATRIUM_TEST_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("ATRIUM_TEST_DOTENV_NEW = %q, want %q", got, "from-file")
	}
	if got := os.Getenv("ATRIUM_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("ATRIUM_TEST_DOTENV_SET = %q, want %q", got, "from-env")
	}
}
