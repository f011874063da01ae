package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - NEXTSTEP_CONFIG_PATH: config file location (default: ~/.config/nextstep.toml)
//   - NEXTSTEP_HOME: base directory for nextstep data (default: ~/.local/share/nextstep)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
		"data_dir":    filepath.Join(baseDir, "data"),
	}, nil
}

// getConfigPath returns the config file path, checking NEXTSTEP_CONFIG_PATH env var first,
// then falling back to the default ~/.config/nextstep.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("NEXTSTEP_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "nextstep.toml"), nil
}

// getBaseDir returns the base directory for nextstep data, checking NEXTSTEP_HOME env var first,
// then falling back to the XDG default ~/.local/share/nextstep.
func getBaseDir() (string, error) {
	if path := os.Getenv("NEXTSTEP_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "nextstep"), nil
}
