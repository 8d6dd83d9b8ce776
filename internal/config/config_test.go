package config

import (
	"testing"
	"time"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig()

	if cfg.Storage.Driver != StorageDriverLocal && cfg.Storage.Driver != StorageDriverMinio {
		t.Errorf("unexpected storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Document.LabelColumns <= 0 || cfg.Document.LabelRows <= 0 {
		t.Errorf("label grid must be positive, got %dx%d", cfg.Document.LabelColumns, cfg.Document.LabelRows)
	}
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("ENV", "Production")
	t.Setenv("STORAGE_DRIVER", "MINIO")
	t.Setenv("AUTH_ACCESS_TOKEN_TTL", "10m")
	t.Setenv("DOCUMENT_PUBLIC_URL", "https://dipii.example.com/")

	cfg := GetConfig()

	if !cfg.IsProduction() {
		t.Errorf("expected production config")
	}
	if cfg.Storage.Driver != StorageDriverMinio {
		t.Errorf("Storage.Driver = %q, want %q", cfg.Storage.Driver, StorageDriverMinio)
	}
	if cfg.Auth.AccessTokenTTL != 10*time.Minute {
		t.Errorf("AccessTokenTTL = %v, want 10m", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Document.PublicURL != "https://dipii.example.com" {
		t.Errorf("PublicURL = %q, trailing slash should be trimmed", cfg.Document.PublicURL)
	}
}
