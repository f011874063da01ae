package testutil

import (
	"path/filepath"
	"testing"

	"nextstep-go/internal/nextstep"
	"nextstep-go/internal/store"
)

// NewTestStore creates a SQLite-backed store in a temp directory with
// the schema applied. It is closed automatically when the test completes.
func NewTestStore(t *testing.T) nextstep.Store {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})

	return s
}

// FaultyStore wraps a Store and fails selected operations.
type FaultyStore struct {
	nextstep.Store

	GetErr    error
	SetErr    error
	DeleteErr error
}

func (s *FaultyStore) Get(key string) (string, error) {
	if s.GetErr != nil {
		return "", s.GetErr
	}
	return s.Store.Get(key)
}

func (s *FaultyStore) Set(key, value string) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	return s.Store.Set(key, value)
}

func (s *FaultyStore) Delete(key string) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	return s.Store.Delete(key)
}
