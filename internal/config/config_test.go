package config

import (
	"testing"
)

func TestLoad_DefaultsApplied(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/herdwell_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.PredictAPIURL != "http://localhost:8000" {
		t.Errorf("expected default inference URL, got %q", cfg.PredictAPIURL)
	}
	if cfg.PredictTimeout != 15 {
		t.Errorf("expected default timeout 15, got %d", cfg.PredictTimeout)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error without DATABASE_URL")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/herdwell_test")
	t.Setenv("PORT", "9999")
	t.Setenv("PREDICT_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "9999" || cfg.PredictTimeout != 30 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestValidate_ProductionNeedsAuth(t *testing.T) {
	cfg := &Config{Env: "production", PredictAPIURL: "http://ml:8000", PredictTimeout: 15}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error without auth configuration")
	}
	cfg.JWTSecret = "secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("HMAC secret should satisfy auth: %v", err)
	}
}

func TestValidate_PredictSettings(t *testing.T) {
	cfg := &Config{Env: "development", PredictTimeout: 15}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without inference URL")
	}
	cfg = &Config{Env: "development", PredictAPIURL: "http://ml:8000", PredictTimeout: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero timeout")
	}
}
