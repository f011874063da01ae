package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for nextstep.
type Config struct {
	BaseDir  string         `toml:"base_dir"`
	LogDir   string         `toml:"log_dir"`
	API      APIConfig      `toml:"api"`
	Identity IdentityConfig `toml:"identity"`
	Store    StoreConfig    `toml:"store"`
	Upload   UploadConfig   `toml:"upload"`
}

// APIConfig holds settings for the NextStep backend API.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// TimeoutMS is the per-request timeout in milliseconds. Defaults to 10000.
	TimeoutMS int64 `toml:"timeout_ms"`
	// RetryDelayMS is the fixed delay before the single transient-failure
	// replay at the client layer. Defaults to 3000.
	RetryDelayMS int64 `toml:"retry_delay_ms"`
}

// IdentityConfig holds settings for the external identity provider.
type IdentityConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
}

// StoreConfig represents configuration for the local key-value store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type StoreConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// UploadConfig holds settings for the resume upload orchestrator.
type UploadConfig struct {
	// MaxAttempts bounds the retry loop. Defaults to 3.
	MaxAttempts int `toml:"max_attempts"`
	// AttemptTimeoutMS caps a single upload attempt. Defaults to 60000.
	AttemptTimeoutMS int64 `toml:"attempt_timeout_ms"`
}

// NewConfig creates a new Config with the provided values and default settings.
func NewConfig(apiBaseURL, baseDir string) *Config {
	return &Config{
		BaseDir: baseDir,
		LogDir:  filepath.Join(baseDir, "log"),
		API: APIConfig{
			BaseURL:      apiBaseURL,
			TimeoutMS:    10000,
			RetryDelayMS: 3000,
		},
		Identity: IdentityConfig{
			BaseURL: "https://identitytoolkit.googleapis.com",
		},
		Store: StoreConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "data"),
		},
		Upload: UploadConfig{
			MaxAttempts:      3,
			AttemptTimeoutMS: 60000,
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// applyDefaults fills zero-valued timing and retry knobs so a hand-edited
// config file can omit them.
func (c *Config) applyDefaults() {
	if c.API.TimeoutMS <= 0 {
		c.API.TimeoutMS = 10000
	}
	if c.API.RetryDelayMS <= 0 {
		c.API.RetryDelayMS = 3000
	}
	if c.Upload.MaxAttempts <= 0 {
		c.Upload.MaxAttempts = 3
	}
	if c.Upload.AttemptTimeoutMS <= 0 {
		c.Upload.AttemptTimeoutMS = 60000
	}
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
