package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected server defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("session ttl = %v", cfg.SessionTTL)
	}
	if cfg.DemoPassword != "password123" || !cfg.SeedDemoData || cfg.SuggestionCount != 3 {
		t.Errorf("unexpected demo defaults: %+v", cfg)
	}
	if cfg.Storage.Driver != StorageRedis || cfg.Storage.KeyPrefix != "familyHub_" {
		t.Errorf("unexpected storage defaults: %+v", cfg.Storage)
	}
	if cfg.Mongo.Database != "family_hub" || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected backend defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if !cfg.Development() {
		t.Error("development is the default environment")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":     "s3cret",
		"ENV":            "production",
		"STORAGE_DRIVER": "memory",
		"SESSION_TTL":    "90m",
		"SEED_DEMO_DATA": "false",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Development() || cfg.Storage.Driver != StorageMemory || cfg.SessionTTL != 90*time.Minute || cfg.SeedDemoData {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORAGE_DRIVER": "sqlite",
	}))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"JWT_SECRET", "STORAGE_DRIVER"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
