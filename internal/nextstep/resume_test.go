package nextstep_test

import (
	"context"
	"errors"
	"testing"

	"nextstep-go/internal/api"
	"nextstep-go/internal/testutil"
)

func TestHasResume(t *testing.T) {
	profile := &api.Profile{UserID: "u1", Name: "Ana"}

	t.Run("analysis exists", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		backend.ProfileFn = func(ctx context.Context) (*api.Profile, error) { return profile, nil }
		backend.ResumeAnalysisFn = func(ctx context.Context, userID string) (*api.AnalysisEnvelope, error) {
			if userID != "u1" {
				t.Errorf("userID = %q, want u1", userID)
			}
			return &api.AnalysisEnvelope{}, nil
		}
		svc := newTestService(backend, nil, nil)

		if !svc.HasResume(context.Background()) {
			t.Error("HasResume() = false, want true")
		}
	})

	t.Run("analysis lookup fails", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		backend.ProfileFn = func(ctx context.Context) (*api.Profile, error) { return profile, nil }
		backend.ResumeAnalysisFn = func(ctx context.Context, userID string) (*api.AnalysisEnvelope, error) {
			return nil, &api.HTTPError{StatusCode: 404}
		}
		svc := newTestService(backend, nil, nil)

		if svc.HasResume(context.Background()) {
			t.Error("HasResume() = true, want false")
		}
	})

	t.Run("profile fetch fails", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		backend.ProfileFn = func(ctx context.Context) (*api.Profile, error) {
			return nil, errors.New("boom")
		}
		svc := newTestService(backend, nil, nil)

		if svc.HasResume(context.Background()) {
			t.Error("HasResume() = true, want false")
		}
		if got := backend.Calls("ResumeAnalysis"); got != 0 {
			t.Errorf("ResumeAnalysis reached the backend %d times", got)
		}
	})
}

func TestSuggestedCareers(t *testing.T) {
	profile := &api.Profile{UserID: "u1"}
	nested := []api.CareerSuggestion{{Title: "Data Engineer", Match: "86%"}}
	topLevel := []api.CareerSuggestion{{Title: "Product Manager", Match: "74%"}}

	t.Run("prefers the summary nested in the analysis", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		backend.ProfileFn = func(ctx context.Context) (*api.Profile, error) { return profile, nil }
		backend.ResumeAnalysisFn = func(ctx context.Context, userID string) (*api.AnalysisEnvelope, error) {
			return &api.AnalysisEnvelope{
				ResumeAnalysis: &api.ResumeAnalysis{
					Summary: &api.AnalysisSummary{SuggestedCareers: nested},
				},
				Summary: &api.AnalysisSummary{SuggestedCareers: topLevel},
			}, nil
		}
		svc := newTestService(backend, nil, nil)

		got := svc.SuggestedCareers(context.Background())
		if len(got) != 1 || got[0].Title != "Data Engineer" {
			t.Errorf("SuggestedCareers() = %v, want the nested summary", got)
		}
	})

	t.Run("falls back to the top-level summary", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		backend.ProfileFn = func(ctx context.Context) (*api.Profile, error) { return profile, nil }
		backend.ResumeAnalysisFn = func(ctx context.Context, userID string) (*api.AnalysisEnvelope, error) {
			return &api.AnalysisEnvelope{Summary: &api.AnalysisSummary{SuggestedCareers: topLevel}}, nil
		}
		svc := newTestService(backend, nil, nil)

		got := svc.SuggestedCareers(context.Background())
		if len(got) != 1 || got[0].Title != "Product Manager" {
			t.Errorf("SuggestedCareers() = %v, want the top-level summary", got)
		}
	})

	t.Run("no summary means no suggestions", func(t *testing.T) {
		backend := testutil.NewMockBackend()
		backend.ProfileFn = func(ctx context.Context) (*api.Profile, error) { return profile, nil }
		backend.ResumeAnalysisFn = func(ctx context.Context, userID string) (*api.AnalysisEnvelope, error) {
			return &api.AnalysisEnvelope{}, nil
		}
		svc := newTestService(backend, nil, nil)

		if got := svc.SuggestedCareers(context.Background()); got != nil {
			t.Errorf("SuggestedCareers() = %v, want nil", got)
		}
	})
}
