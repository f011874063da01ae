package nextstep

import (
	"context"
	"fmt"
	"strings"

	"nextstep-go/internal/api"
)

// ValidationError marks input rejected client-side, before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func trimmed(s string) string { return strings.TrimSpace(s) }

// Login authenticates against the identity provider and mirrors the
// returned token into local storage so subsequent API calls carry it.
func (s *Service) Login(ctx context.Context, email, password string) (*Credentials, error) {
	email = trimmed(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "credentials", Reason: "email and password are required"}
	}

	creds, err := s.identity.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.storeToken(creds.Token)
	s.logger.Info("signed in", "email", creds.Email)
	return creds, nil
}

// Register creates a new account with the identity provider and mirrors
// the returned token into local storage.
func (s *Service) Register(ctx context.Context, email, password string) (*Credentials, error) {
	email = trimmed(email)
	if email == "" || password == "" {
		return nil, &ValidationError{Field: "credentials", Reason: "email and password are required"}
	}

	creds, err := s.identity.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.storeToken(creds.Token)
	s.logger.Info("account registered", "email", creds.Email)
	return creds, nil
}

// ResetPassword asks the identity provider to e-mail a password reset link.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	email = trimmed(email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "email is required"}
	}
	return s.identity.SendPasswordReset(ctx, email)
}

// Logout clears the stored token and the cached journey snapshot.
// The identity provider owns the session itself; locally there is nothing
// else to tear down.
func (s *Service) Logout() {
	if err := s.store.Delete(KeyAuthToken); err != nil {
		s.logger.Warn("clearing stored token failed", "error", err)
	}
	s.journeyMu.Lock()
	s.journey = nil
	s.journeyMu.Unlock()
	s.logger.Info("signed out")
}

// CompleteProfile finishes registration. Name and current job are trimmed
// and required; validation failures never reach the network.
func (s *Service) CompleteProfile(ctx context.Context, name, currentJob string) (*api.Profile, error) {
	name = trimmed(name)
	currentJob = trimmed(currentJob)
	if name == "" {
		return nil, &ValidationError{Field: "name", Reason: "name is required"}
	}
	if currentJob == "" {
		return nil, &ValidationError{Field: "currentJob", Reason: "current job is required"}
	}
	return s.backend.CompleteProfile(ctx, api.CompleteProfileRequest{
		Name:       name,
		CurrentJob: currentJob,
	})
}

// storeToken mirrors the identity token into durable storage, best-effort.
func (s *Service) storeToken(token string) {
	if err := s.store.Set(KeyAuthToken, token); err != nil {
		s.logger.Warn("persisting token failed", "error", err)
	}
}
