package nextstep

import (
	"context"

	"nextstep-go/internal/api"
)

// HasResume reports whether the backend holds an analyzed resume for the
// authenticated user. The backend exposes no dedicated endpoint for this;
// a 200 from the analysis lookup is the signal. Every failure along the
// way, 404 included, means "no resume"; this never returns a hard error.
func (s *Service) HasResume(ctx context.Context) bool {
	profile, err := s.backend.Profile(ctx)
	if err != nil || profile == nil || profile.UserID == "" {
		return false
	}
	envelope, err := s.backend.ResumeAnalysis(ctx, profile.UserID)
	if err != nil {
		return false
	}
	return envelope != nil
}

// SuggestedCareers returns career suggestions from the stored resume
// analysis. Missing analysis or any fetch failure yields an empty slice.
func (s *Service) SuggestedCareers(ctx context.Context) []api.CareerSuggestion {
	profile, err := s.backend.Profile(ctx)
	if err != nil || profile == nil || profile.UserID == "" {
		return nil
	}

	envelope, err := s.backend.ResumeAnalysis(ctx, profile.UserID)
	if err != nil || envelope == nil {
		return nil
	}

	summary := envelope.Summary
	if envelope.ResumeAnalysis != nil && envelope.ResumeAnalysis.Summary != nil {
		summary = envelope.ResumeAnalysis.Summary
	}
	if summary == nil {
		return nil
	}
	return summary.SuggestedCareers
}
