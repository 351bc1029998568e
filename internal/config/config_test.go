package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "hem")
	t.Setenv("DB_NAME", "heminfotech")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.DB.MaxOpenConns != 10 {
		t.Fatalf("expected pool of 10, got %d", cfg.DB.MaxOpenConns)
	}
	if cfg.Auth.JWTExpiry != 24*time.Hour {
		t.Fatalf("expected 24h expiry, got %s", cfg.Auth.JWTExpiry)
	}
	if cfg.Redis.Enabled() || cfg.S3.Enabled() {
		t.Fatal("redis and s3 must be disabled without a host/bucket")
	}
	if !cfg.Document.Enabled || cfg.Document.Locale != "en" {
		t.Fatalf("unexpected document config: %+v", cfg.Document)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("DOCUMENT_CACHE_TTL", "30m")
	t.Setenv("DOCUMENT_ENABLED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", " crm.example.com , ,localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DB.MaxOpenConns != 4 {
		t.Fatalf("expected 4, got %d", cfg.DB.MaxOpenConns)
	}
	if !cfg.Redis.Enabled() || cfg.Redis.TTL != 30*time.Minute {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Document.Enabled {
		t.Fatal("document rendering should be disabled")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "crm.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing database", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("DB_USER", "")
		t.Setenv("DB_NAME", "")
		t.Setenv("JWT_SECRET", "secret")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("bad duration", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DOCUMENT_CACHE_TTL", "soon")
		if _, err := Load(); err == nil {
			t.Fatal("expected error")
		}
	})
}
