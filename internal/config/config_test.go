package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	cfg := Load()
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "snaplearn" {
		t.Errorf("expected default database name, got %q", cfg.DatabaseName)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "snaplearn_test")

	cfg := Load()
	if cfg.Port != "9001" {
		t.Errorf("expected port 9001, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "mongodb://localhost:27017" {
		t.Errorf("unexpected database URL %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "snaplearn_test" {
		t.Errorf("unexpected database name %q", cfg.DatabaseName)
	}
}
