package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.DSN != "" {
		t.Fatalf("expected empty dsn by default, got %q", cfg.Database.DSN)
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("expected redis ttl 10m, got %s", cfg.Redis.TTL)
	}
	if cfg.Auth.BaseURL != "" || cfg.Auth.Timeout != 5*time.Second {
		t.Fatalf("unexpected auth defaults %+v", cfg.Auth)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Addr())
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("server:\n  port: 9090\nlog:\n  level: debug\n  format: json\nredis:\n  enabled: true\n  addr: cache:6379\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CATTERY_DATABASE_DSN", "postgres://u:p@db:5432/cattery")
	t.Setenv("CATTERY_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("expected port from file, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("expected env to override file, got %q", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Log.Format)
	}
	if cfg.Database.DSN != "postgres://u:p@db:5432/cattery" {
		t.Fatalf("expected dsn from env, got %q", cfg.Database.DSN)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "cache:6379" {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("CATTERY_SERVER_PORT", "-1")
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for negative port")
	}
}
