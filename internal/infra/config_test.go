package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TUZI_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("TUZI_BASE_URL", "")
	t.Setenv("TUZI_MODEL", "")
	t.Setenv("DB_MAX_CONNS", "")
	t.Setenv("DB_MIN_CONNS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.TuziBaseURL != "https://api.tu-zi.com/v1" {
		t.Fatalf("TuziBaseURL = %q", cfg.TuziBaseURL)
	}
	if cfg.TuziModel != "gemini-3-pro-image-preview" {
		t.Fatalf("TuziModel = %q", cfg.TuziModel)
	}
	if cfg.UpstreamTimeout != 90*time.Second {
		t.Fatalf("UpstreamTimeout = %v", cfg.UpstreamTimeout)
	}
	if cfg.DBMaxConns != 8 || cfg.DBMinConns != 1 {
		t.Fatalf("pool sizing = %d/%d, want 8/1", cfg.DBMaxConns, cfg.DBMinConns)
	}
}

func TestLoadConfigHonorsPoolSizing(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TUZI_API_KEY", "sk-test")
	t.Setenv("DB_MAX_CONNS", "20")
	t.Setenv("DB_MIN_CONNS", "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DBMaxConns != 20 {
		t.Fatalf("DBMaxConns = %d, want 20", cfg.DBMaxConns)
	}
	if cfg.DBMinConns != 4 {
		t.Fatalf("DBMinConns = %d, want 4", cfg.DBMinConns)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TUZI_API_KEY", "sk-test")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestLoadConfigRequiresAPIKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TUZI_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing TUZI_API_KEY")
	}
}

func TestLoadConfigHonorsTimeoutOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("TUZI_API_KEY", "sk-test")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "30")
	t.Setenv("HTTP_WRITE_TIMEOUT_SECONDS", "45")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.UpstreamTimeout != 30*time.Second {
		t.Fatalf("UpstreamTimeout = %v, want 30s", cfg.UpstreamTimeout)
	}
	if cfg.HTTPWriteTimeout != 45*time.Second {
		t.Fatalf("HTTPWriteTimeout = %v, want 45s", cfg.HTTPWriteTimeout)
	}
}
