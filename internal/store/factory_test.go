package store

import (
	"os"
	"path/filepath"
	"testing"

	"nextstep-go/internal/config"
)

func TestNewStoreFromConfig(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		dataDir := filepath.Join(t.TempDir(), "data")
		s, err := NewStoreFromConfig(config.StoreConfig{Type: "sqlite", DataDir: dataDir})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		defer s.Close()

		if _, ok := s.(*SQLiteStore); !ok {
			t.Errorf("expected *SQLiteStore, got %T", s)
		}
		if _, err := os.Stat(filepath.Join(dataDir, storeFilename)); err != nil {
			t.Errorf("expected store file to exist: %s", err)
		}
	})

	t.Run("sqlite without data_dir", func(t *testing.T) {
		if _, err := NewStoreFromConfig(config.StoreConfig{Type: "sqlite"}); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("memory", func(t *testing.T) {
		s, err := NewStoreFromConfig(config.StoreConfig{Type: "memory"})
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		defer s.Close()

		if _, ok := s.(*MemoryStore); !ok {
			t.Errorf("expected *MemoryStore, got %T", s)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		if _, err := NewStoreFromConfig(config.StoreConfig{Type: "redis"}); err == nil {
			t.Error("expected an error")
		}
	})
}
