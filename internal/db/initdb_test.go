package db

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestExtractDBName(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/fyyur?sslmode=disable": "fyyur",
		"postgresql://localhost/bookings":                     "bookings",
		"host=localhost user=u dbname=shows sslmode=disable":  "shows",
	}
	for conn, want := range cases {
		got, err := extractDBName(conn)
		if err != nil {
			t.Fatalf("extractDBName(%q): %v", conn, err)
		}
		if got != want {
			t.Fatalf("extractDBName(%q) = %q, want %q", conn, got, want)
		}
	}

	if _, err := extractDBName("host=localhost user=u"); err == nil {
		t.Fatalf("expected error for connection string without dbname")
	}
	if _, err := extractDBName("postgres://localhost"); err == nil {
		t.Fatalf("expected error for URL without database")
	}
}

func TestReplaceDBName(t *testing.T) {
	got, err := replaceDBName("postgres://u:p@localhost:5432/fyyur?sslmode=disable", "postgres")
	if err != nil {
		t.Fatalf("replaceDBName: %v", err)
	}
	if got != "postgres://u:p@localhost:5432/postgres?sslmode=disable" {
		t.Fatalf("unexpected url %q", got)
	}

	got, err = replaceDBName("host=localhost dbname=fyyur", "postgres")
	if err != nil {
		t.Fatalf("replaceDBName: %v", err)
	}
	if got != "host=localhost dbname=postgres" {
		t.Fatalf("unexpected dsn %q", got)
	}
}

func TestEnsureDatabaseCreatesMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM pg_database WHERE datname = \$1\)`).
		WithArgs("fyyur").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`CREATE DATABASE "fyyur"`).WillReturnResult(sqlmock.NewResult(0, 0))

	if err := ensureDatabase(context.Background(), db, "fyyur"); err != nil {
		t.Fatalf("ensureDatabase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestEnsureDatabaseSkipsExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("fyyur").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	if err := ensureDatabase(context.Background(), db, "fyyur"); err != nil {
		t.Fatalf("ensureDatabase: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
