package config

import (
	"reflect"
	"testing"
)

func TestLoadBuildsURLFromPSQLVariables(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("CORS_ALLOWED_ORIGINS", "*")
	t.Setenv("PSQL_HOST", "db")
	t.Setenv("PSQL_PORT", "5433")
	t.Setenv("PSQL_USER", "fyyur")
	t.Setenv("PSQL_PASSWORD", "secret")
	t.Setenv("PSQL_DB_NAME", "bookings")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.StoreBackend != StorePostgres {
		t.Fatalf("expected postgres backend, got %q", cfg.StoreBackend)
	}
	want := "postgres://fyyur:secret@db:5433/bookings?sslmode=disable"
	if cfg.DatabaseURL != want {
		t.Fatalf("expected %q, got %q", want, cfg.DatabaseURL)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadDatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h:1/x")
	t.Setenv("STORE_BACKEND", "Memory")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()

	if cfg.DatabaseURL != "postgres://u:p@h:1/x" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.StoreBackend != StoreMemory {
		t.Fatalf("expected memory backend, got %q", cfg.StoreBackend)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}
