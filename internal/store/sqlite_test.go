package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("could not create store: %s", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore(t *testing.T) {
	s := newTestSQLiteStore(t)

	t.Run("missing key reads as empty", func(t *testing.T) {
		value, err := s.Get("absent")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != "" {
			t.Errorf("expected empty value, got %s", value)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := s.Set("auth_token", "token-1"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		value, err := s.Get("auth_token")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != "token-1" {
			t.Errorf("expected token-1, got %s", value)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := s.Set("auth_token", "token-2"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		value, err := s.Get("auth_token")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != "token-2" {
			t.Errorf("expected token-2, got %s", value)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := s.Delete("auth_token"); err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		value, err := s.Get("auth_token")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if value != "" {
			t.Errorf("expected empty value after delete, got %s", value)
		}
	})

	t.Run("delete missing key", func(t *testing.T) {
		if err := s.Delete("never-set"); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	})
}

func TestSQLiteStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("could not create store: %s", err)
	}
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	reopened, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("could not reopen store: %s", err)
	}
	defer reopened.Close()

	value, err := reopened.Get("theme")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if value != "dark" {
		t.Errorf("expected dark, got %s", value)
	}
}

func TestSQLiteStoreErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("could not create sqlmock: %s", err)
	}
	s := NewSQLiteStoreFromDB(db)
	defer s.Close()

	dbErr := errors.New("disk I/O error")

	t.Run("get failure", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM kv").WillReturnError(dbErr)
		if _, err := s.Get("auth_token"); !errors.Is(err, dbErr) {
			t.Errorf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("set failure", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO kv").WillReturnError(dbErr)
		if err := s.Set("auth_token", "token"); !errors.Is(err, dbErr) {
			t.Errorf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("delete failure", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM kv").WillReturnError(dbErr)
		if err := s.Delete("auth_token"); !errors.Is(err, dbErr) {
			t.Errorf("expected wrapped db error, got %v", err)
		}
	})

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %s", err)
	}
}
