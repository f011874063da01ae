package nextstep

import (
	"context"
	"sync"
	"time"

	"nextstep-go/internal/api"
)

// Backend is the NextStep remote API as consumed by the service layer.
// *api.Client is the real implementation.
type Backend interface {
	// Profile operations

	CompleteProfile(ctx context.Context, req api.CompleteProfileRequest) (*api.Profile, error)
	Profile(ctx context.Context) (*api.Profile, error)
	UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*api.Profile, error)
	DeleteProfile(ctx context.Context) error

	// Dashboard returns nil without error when the backend has no data yet.
	Dashboard(ctx context.Context) (*api.Dashboard, error)

	// Journey operations

	// ActiveJourney returns nil without error when no journey is active.
	ActiveJourney(ctx context.Context) (*api.Journey, error)
	GenerateJourney(ctx context.Context, desiredJob string) (*api.Journey, error)
	UpdateStepProgress(ctx context.Context, stepID string, done bool) (*api.Journey, error)

	// Chat operations

	SendChat(ctx context.Context, message, conversationID string) (*api.ChatReply, error)
	ChatHistory(ctx context.Context, conversationID string) (*api.ChatHistory, error)

	// Resume operations

	UploadResume(ctx context.Context, file api.UploadFile) (*api.ResumeUploadResult, error)
	ResumeAnalysis(ctx context.Context, userID string) (*api.AnalysisEnvelope, error)
}

// Credentials is the session handed back by the identity provider.
type Credentials struct {
	Token  string
	UserID string
	Email  string
}

// IdentityProvider is the external authentication service.
// All account lifecycle (expiry, revocation) is its concern; the client
// only mirrors the current token into the Store.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
	SignUp(ctx context.Context, email, password string) (*Credentials, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// Service is the orchestration layer that coordinates the backend API,
// the identity provider and local storage to perform the high-level
// operations needed by the CLI.
type Service struct {
	backend  Backend
	store    Store
	identity IdentityProvider
	logger   Logger
	clock    Clock
	idgen    IDGenerator
	sleep    SleepFunc

	// Upload retry policy. Overridable in tests.
	uploadAttemptTimeout time.Duration
	uploadBackoffBase    time.Duration

	// Journey reconciliation state. journeyMu serializes RefreshJourney
	// so the counter's read-increment-persist sequence cannot interleave;
	// a concurrent refresh queues behind the in-flight one.
	journeyMu sync.Mutex
	journey   *api.Journey
}

// NewService creates a Service with the provided dependencies.
// A nil sleep uses real delays.
func NewService(backend Backend, store Store, identity IdentityProvider, logger Logger, clock Clock, idgen IDGenerator, sleep SleepFunc) *Service {
	if sleep == nil {
		sleep = SleepCtx
	}
	return &Service{
		backend:              backend,
		store:                store,
		identity:             identity,
		logger:               logger,
		clock:                clock,
		idgen:                idgen,
		sleep:                sleep,
		uploadAttemptTimeout: 60 * time.Second,
		uploadBackoffBase:    time.Second,
	}
}

// SetUploadPolicy overrides the per-attempt timeout and the backoff base
// delay. Zero values keep the current settings.
func (s *Service) SetUploadPolicy(attemptTimeout, backoffBase time.Duration) {
	if attemptTimeout > 0 {
		s.uploadAttemptTimeout = attemptTimeout
	}
	if backoffBase > 0 {
		s.uploadBackoffBase = backoffBase
	}
}

// Profile returns the authenticated user's profile.
func (s *Service) Profile(ctx context.Context) (*api.Profile, error) {
	return s.backend.Profile(ctx)
}

// UpdateProfile validates and saves the editable profile fields.
func (s *Service) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*api.Profile, error) {
	req.Name = trimmed(req.Name)
	req.Email = trimmed(req.Email)
	req.CurrentJob = trimmed(req.CurrentJob)
	if req.Name == "" || req.Email == "" {
		return nil, &ValidationError{Field: "name/email", Reason: "name and email are required"}
	}
	return s.backend.UpdateProfile(ctx, req)
}

// DeleteProfile removes the account's backend data and clears all local
// state tied to it.
func (s *Service) DeleteProfile(ctx context.Context) error {
	if err := s.backend.DeleteProfile(ctx); err != nil {
		return err
	}
	s.Logout()
	return nil
}

// Dashboard returns the aggregate dashboard, or nil when the backend has
// no data for this user yet.
func (s *Service) Dashboard(ctx context.Context) (*api.Dashboard, error) {
	return s.backend.Dashboard(ctx)
}
