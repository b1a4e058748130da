package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "DB_PATH", "AUTH_TOKEN_TTL", "AUTH_COOKIE_SECURE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Fatalf("expected default addr 0.0.0.0:8080, got %q", cfg.Server.Addr())
	}
	if cfg.Database.Path != "data/nestling.db" {
		t.Fatalf("expected default db path, got %q", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTL != 720*time.Hour {
		t.Fatalf("expected default token ttl 720h, got %v", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.CookieSecure {
		t.Fatalf("expected cookie secure off by default")
	}
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/nestling-test.db")
	t.Setenv("AUTH_TOKEN_TTL", "24h")
	t.Setenv("AUTH_COOKIE_SECURE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Fatalf("expected configured addr, got %q", cfg.Server.Addr())
	}
	if cfg.Database.Path != "/tmp/nestling-test.db" {
		t.Fatalf("expected configured db path, got %q", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %v", cfg.Auth.TokenTTL)
	}
	if !cfg.Auth.CookieSecure {
		t.Fatalf("expected cookie secure enabled")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}
