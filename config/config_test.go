package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Database.DatabaseName != "studyhub" {
		t.Errorf("expected default database name, got %q", cfg.Database.DatabaseName)
	}
	if cfg.JWTExpiration != time.Hour {
		t.Errorf("expected 1h access token lifetime, got %v", cfg.JWTExpiration)
	}
	if cfg.RefreshExpiry != 7*24*time.Hour {
		t.Errorf("expected 7d refresh lifetime, got %v", cfg.RefreshExpiry)
	}
	if cfg.AuthMode != AuthEnforced {
		t.Error("auth must be enforced by default")
	}
	if len(cfg.AllowedOrigins) == 0 {
		t.Error("expected default allowed origins")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_EXPIRATION_TIME", "120")
	t.Setenv("ALLOWED_ORIGINS", "https://studyhub.example.com,https://beta.example.com")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.JWTExpiration != 2*time.Minute {
		t.Errorf("expected 2m access token lifetime, got %v", cfg.JWTExpiration)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://studyhub.example.com" {
		t.Errorf("origins not parsed, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadBypassFlag(t *testing.T) {
	t.Setenv("DISABLE_AUTH", "true")

	cfg := Load()
	if cfg.AuthMode != AuthBypassed {
		t.Error("expected bypass mode when DISABLE_AUTH is set")
	}
}

func TestIsProduction(t *testing.T) {
	if (&Config{Env: "development"}).IsProduction() {
		t.Error("development flagged as production")
	}
	if !(&Config{Env: "production"}).IsProduction() {
		t.Error("production not detected")
	}
}
