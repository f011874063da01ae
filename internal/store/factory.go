package store

import (
	"fmt"
	"os"
	"path/filepath"

	"nextstep-go/internal/config"
	"nextstep-go/internal/nextstep"
)

const storeFilename = "nextstep.db"

// NewStoreFromConfig builds a Store from its configuration.
func NewStoreFromConfig(cfg config.StoreConfig) (nextstep.Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("sqlite store requires a data_dir")
		}
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		return NewSQLiteStore(filepath.Join(cfg.DataDir, storeFilename))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store type: %s", cfg.Type)
	}
}
