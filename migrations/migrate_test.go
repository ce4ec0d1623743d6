package migrations

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil, "pgx")
	if err == nil {
		t.Fatal("expected an error for nil db, got nil")
	}
	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected `db is nil` error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error creating mock database: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "bogus-dialect")
	if err == nil {
		t.Fatal("expected an error for unknown dialect, got nil")
	}
	if !strings.Contains(err.Error(), "migration error setting dialect") {
		t.Errorf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_BrokenConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error creating mock database: %v", err)
	}
	mock.ExpectClose()
	if err = db.Close(); err != nil {
		t.Fatalf("error closing mock database: %v", err)
	}

	err = Migrate(db, "sqlite3")
	if err == nil {
		t.Fatal("expected an error for a closed connection, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}
