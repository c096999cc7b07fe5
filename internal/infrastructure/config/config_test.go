package config

import (
	"context"
	"testing"
)

func TestLoad_MissingJWTSecretIsFatal(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(context.Background()); err != ErrMissingJWTSecret {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "super secret signing key")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Port)
	}
	if cfg.Mongo.Database != "identity" {
		t.Fatalf("unexpected default database: %s", cfg.Mongo.Database)
	}
	if cfg.JWTSecret != "super secret signing key" {
		t.Fatalf("secret not loaded")
	}
}
