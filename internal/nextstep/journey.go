package nextstep

import (
	"context"
	"strconv"
	"strings"

	"nextstep-go/internal/api"
)

// RefreshJourney fetches the active journey, diffs it against the
// previously held snapshot to detect an implicit completion transition,
// and bumps the persisted completion counter when one is found.
//
// The backend emits no discrete "journey completed" event, so completion
// is inferred by comparing successive polls. Refreshes are serialized:
// a concurrent call waits for the in-flight one, keeping the counter's
// read-increment-persist sequence atomic.
//
// Fetch failures other than "no active journey" degrade to a nil snapshot
// and are logged, never returned.
func (s *Service) RefreshJourney(ctx context.Context) *api.Journey {
	s.journeyMu.Lock()
	defer s.journeyMu.Unlock()

	snapshot, err := s.backend.ActiveJourney(ctx)
	if err != nil {
		s.logger.Warn("journey refresh failed", "error", err)
		s.journey = nil
		return nil
	}

	if journeyCompleted(s.journey, snapshot) {
		s.incrementCompleted()
	}

	s.journey = snapshot
	return snapshot
}

// Journey returns the snapshot held by the last refresh, or nil.
func (s *Service) Journey() *api.Journey {
	s.journeyMu.Lock()
	defer s.journeyMu.Unlock()
	return s.journey
}

// ClearJourney drops the cached snapshot without touching the counter.
func (s *Service) ClearJourney() {
	s.journeyMu.Lock()
	s.journey = nil
	s.journeyMu.Unlock()
}

// CompletedJourneys returns the persisted completion counter.
// A missing or malformed stored value counts as zero.
func (s *Service) CompletedJourneys() int {
	raw, err := s.store.Get(KeyCompletedJourneys)
	if err != nil {
		s.logger.Warn("reading completed-journey counter failed", "error", err)
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// GenerateJourney builds a new journey toward the desired job and caches
// the result as the current snapshot.
func (s *Service) GenerateJourney(ctx context.Context, desiredJob string) (*api.Journey, error) {
	desiredJob = trimmed(desiredJob)
	if desiredJob == "" {
		return nil, &ValidationError{Field: "desiredJob", Reason: "desired job is required"}
	}

	journey, err := s.backend.GenerateJourney(ctx, desiredJob)
	if err != nil {
		return nil, err
	}

	s.journeyMu.Lock()
	s.journey = journey
	s.journeyMu.Unlock()
	return journey, nil
}

// UpdateStep marks a journey step done or not done.
func (s *Service) UpdateStep(ctx context.Context, stepID string, done bool) (*api.Journey, error) {
	if stepID == "" {
		return nil, &ValidationError{Field: "stepId", Reason: "step id is required"}
	}
	return s.backend.UpdateStepProgress(ctx, stepID, done)
}

// incrementCompleted performs the read-increment-persist of the counter.
// Callers must hold journeyMu. Storage failures are best-effort.
func (s *Service) incrementCompleted() {
	count := s.CompletedJourneys() + 1
	if err := s.store.Set(KeyCompletedJourneys, strconv.Itoa(count)); err != nil {
		s.logger.Warn("persisting completed-journey counter failed", "error", err)
		return
	}
	s.logger.Info("journey completed", "total", count)
}

// journeyCompleted decides whether the transition from prev to next means
// a journey finished. Rules are evaluated in order; first hit wins:
//
//  1. the new status says "completed" (case-insensitive);
//  2. a fully progressed journey disappeared;
//  3. a fully progressed journey was reset to zero;
//  4. a different journey replaced one that had made progress.
//
// Rule 4 cannot distinguish "old journey completed, new one started" from
// "old journey abandoned, new one started"; the counter accepts that
// false positive.
func journeyCompleted(prev, next *api.Journey) bool {
	if next != nil && strings.EqualFold(next.Status, "completed") {
		return true
	}
	if prev == nil {
		return false
	}
	if next == nil {
		return prev.OverallProgress >= 100
	}
	if prev.OverallProgress >= 100 && next.OverallProgress == 0 {
		return true
	}
	if prev.JourneyID != "" && next.JourneyID != "" &&
		prev.JourneyID != next.JourneyID && prev.OverallProgress > 0 {
		return true
	}
	return false
}
