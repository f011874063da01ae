package app

import (
	"fmt"
	"os"
	"time"

	"nextstep-go/internal/api"
	"nextstep-go/internal/config"
	"nextstep-go/internal/identity"
	"nextstep-go/internal/nextstep"
	"nextstep-go/internal/store"
)

// App is the application layer between the CLI and the service.
// It constructs all dependencies from config and manages the store
// and log file lifecycle on Close.
type App struct {
	cfg     *config.Config
	store   nextstep.Store
	service *nextstep.Service
	logFile *os.File
}

// storeTokenSource reads the bearer token from the local store.
type storeTokenSource struct {
	store nextstep.Store
}

func (s *storeTokenSource) Token() (string, error) {
	return s.store.Get(nextstep.KeyAuthToken)
}

// NewApp creates a fully wired App from the given config.
// operation identifies the CLI command being run (e.g. "Login", "UploadResume");
// it tags every log line written during the run.
// The caller must call Close when done.
func NewApp(cfg *config.Config, operation string) (*App, error) {
	st, err := store.NewStoreFromConfig(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	backend, err := api.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutMS)*time.Millisecond,
		time.Duration(cfg.API.RetryDelayMS)*time.Millisecond,
		&storeTokenSource{store: st},
	)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating api client: %w", err)
	}

	idp, err := identity.NewClient(
		cfg.Identity.BaseURL,
		cfg.Identity.APIKey,
		time.Duration(cfg.API.TimeoutMS)*time.Millisecond,
	)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating identity client: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z") + "-" + operation
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := nextstep.NewService(backend, st, idp, &slogAdapter{l: logger}, nextstep.RealClock{}, nextstep.UUIDGenerator{}, nil)
	svc.SetUploadPolicy(
		time.Duration(cfg.Upload.AttemptTimeoutMS)*time.Millisecond,
		0,
	)

	return &App{
		cfg:     cfg,
		store:   st,
		service: svc,
		logFile: logFile,
	}, nil
}

// Service returns the wired service layer.
func (a *App) Service() *nextstep.Service {
	return a.service
}

// Config returns the active configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// UploadMaxAttempts returns the configured retry bound for resume uploads.
func (a *App) UploadMaxAttempts() int {
	return a.cfg.Upload.MaxAttempts
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
