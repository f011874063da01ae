package testutil

import (
	"context"
	"fmt"
	"sync"

	"nextstep-go/internal/api"
	"nextstep-go/internal/nextstep"
)

// MockBackend implements nextstep.Backend with per-operation function
// fields. Unset operations fail, so tests only wire what they exercise.
// Call counts are recorded for every operation.
type MockBackend struct {
	mu    sync.Mutex
	calls map[string]int

	CompleteProfileFn    func(ctx context.Context, req api.CompleteProfileRequest) (*api.Profile, error)
	ProfileFn            func(ctx context.Context) (*api.Profile, error)
	UpdateProfileFn      func(ctx context.Context, req api.ProfileUpdateRequest) (*api.Profile, error)
	DeleteProfileFn      func(ctx context.Context) error
	DashboardFn          func(ctx context.Context) (*api.Dashboard, error)
	ActiveJourneyFn      func(ctx context.Context) (*api.Journey, error)
	GenerateJourneyFn    func(ctx context.Context, desiredJob string) (*api.Journey, error)
	UpdateStepProgressFn func(ctx context.Context, stepID string, done bool) (*api.Journey, error)
	SendChatFn           func(ctx context.Context, message, conversationID string) (*api.ChatReply, error)
	ChatHistoryFn        func(ctx context.Context, conversationID string) (*api.ChatHistory, error)
	UploadResumeFn       func(ctx context.Context, file api.UploadFile) (*api.ResumeUploadResult, error)
	ResumeAnalysisFn     func(ctx context.Context, userID string) (*api.AnalysisEnvelope, error)
}

func NewMockBackend() *MockBackend {
	return &MockBackend{calls: make(map[string]int)}
}

// Calls returns how many times the named operation was invoked.
func (m *MockBackend) Calls(op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[op]
}

func (m *MockBackend) record(op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[op]++
}

func (m *MockBackend) CompleteProfile(ctx context.Context, req api.CompleteProfileRequest) (*api.Profile, error) {
	m.record("CompleteProfile")
	if m.CompleteProfileFn == nil {
		return nil, fmt.Errorf("unexpected call to CompleteProfile")
	}
	return m.CompleteProfileFn(ctx, req)
}

func (m *MockBackend) Profile(ctx context.Context) (*api.Profile, error) {
	m.record("Profile")
	if m.ProfileFn == nil {
		return nil, fmt.Errorf("unexpected call to Profile")
	}
	return m.ProfileFn(ctx)
}

func (m *MockBackend) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*api.Profile, error) {
	m.record("UpdateProfile")
	if m.UpdateProfileFn == nil {
		return nil, fmt.Errorf("unexpected call to UpdateProfile")
	}
	return m.UpdateProfileFn(ctx, req)
}

func (m *MockBackend) DeleteProfile(ctx context.Context) error {
	m.record("DeleteProfile")
	if m.DeleteProfileFn == nil {
		return fmt.Errorf("unexpected call to DeleteProfile")
	}
	return m.DeleteProfileFn(ctx)
}

func (m *MockBackend) Dashboard(ctx context.Context) (*api.Dashboard, error) {
	m.record("Dashboard")
	if m.DashboardFn == nil {
		return nil, fmt.Errorf("unexpected call to Dashboard")
	}
	return m.DashboardFn(ctx)
}

func (m *MockBackend) ActiveJourney(ctx context.Context) (*api.Journey, error) {
	m.record("ActiveJourney")
	if m.ActiveJourneyFn == nil {
		return nil, fmt.Errorf("unexpected call to ActiveJourney")
	}
	return m.ActiveJourneyFn(ctx)
}

func (m *MockBackend) GenerateJourney(ctx context.Context, desiredJob string) (*api.Journey, error) {
	m.record("GenerateJourney")
	if m.GenerateJourneyFn == nil {
		return nil, fmt.Errorf("unexpected call to GenerateJourney")
	}
	return m.GenerateJourneyFn(ctx, desiredJob)
}

func (m *MockBackend) UpdateStepProgress(ctx context.Context, stepID string, done bool) (*api.Journey, error) {
	m.record("UpdateStepProgress")
	if m.UpdateStepProgressFn == nil {
		return nil, fmt.Errorf("unexpected call to UpdateStepProgress")
	}
	return m.UpdateStepProgressFn(ctx, stepID, done)
}

func (m *MockBackend) SendChat(ctx context.Context, message, conversationID string) (*api.ChatReply, error) {
	m.record("SendChat")
	if m.SendChatFn == nil {
		return nil, fmt.Errorf("unexpected call to SendChat")
	}
	return m.SendChatFn(ctx, message, conversationID)
}

func (m *MockBackend) ChatHistory(ctx context.Context, conversationID string) (*api.ChatHistory, error) {
	m.record("ChatHistory")
	if m.ChatHistoryFn == nil {
		return nil, fmt.Errorf("unexpected call to ChatHistory")
	}
	return m.ChatHistoryFn(ctx, conversationID)
}

func (m *MockBackend) UploadResume(ctx context.Context, file api.UploadFile) (*api.ResumeUploadResult, error) {
	m.record("UploadResume")
	if m.UploadResumeFn == nil {
		return nil, fmt.Errorf("unexpected call to UploadResume")
	}
	return m.UploadResumeFn(ctx, file)
}

func (m *MockBackend) ResumeAnalysis(ctx context.Context, userID string) (*api.AnalysisEnvelope, error) {
	m.record("ResumeAnalysis")
	if m.ResumeAnalysisFn == nil {
		return nil, fmt.Errorf("unexpected call to ResumeAnalysis")
	}
	return m.ResumeAnalysisFn(ctx, userID)
}

// Compile-time check
var _ nextstep.Backend = (*MockBackend)(nil)
