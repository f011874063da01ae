package api

import "io"

// Profile is the authenticated user's profile as returned by the backend.
type Profile struct {
	UserID         string        `json:"userId"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	CurrentJob     string        `json:"currentJob"`
	ProfilePicture string        `json:"profilePicture"`
	CreatedAt      string        `json:"createdAt"`
	Stats          *ProfileStats `json:"stats"`
}

// ProfileStats is the aggregate block embedded in a profile.
type ProfileStats struct {
	TotalJourneys     int     `json:"totalJourneys"`
	CompletedJourneys int     `json:"completedJourneys"`
	TotalSkills       int     `json:"totalSkills"`
	AverageProgress   float64 `json:"averageProgress"`
}

// CompleteProfileRequest is the body for POST /auth/complete-profile.
type CompleteProfileRequest struct {
	Name       string `json:"name"`
	CurrentJob string `json:"currentJob"`
}

// ProfileUpdateRequest is the body for PUT /profile.
type ProfileUpdateRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	CurrentJob string `json:"currentJob"`
}

// Dashboard is the aggregate view returned by GET /dashboard.
type Dashboard struct {
	User           DashboardUser   `json:"user"`
	NextStep       *DashboardStep  `json:"nextStep"`
	Skills         []Skill         `json:"skills"`
	Trends         []Trend         `json:"trends"`
	SuggestedPaths []SuggestedPath `json:"suggestedPaths"`
}

type DashboardUser struct {
	Name       string `json:"name"`
	CurrentJob string `json:"currentJob"`
	DesiredJob string `json:"desiredJob"`
}

type DashboardStep struct {
	Title     string `json:"title"`
	Objective string `json:"objective"`
	Progress  bool   `json:"progress"`
}

type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Progress int    `json:"progress"`
}

type Trend struct {
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

type SuggestedPath struct {
	Title string `json:"title"`
	Match string `json:"match"`
}

// Journey is the active career journey snapshot returned by
// GET /journeys/active. The status field is free-form; "completed"
// (any case) marks a finished journey.
type Journey struct {
	JourneyID       string        `json:"journeyId"`
	DesiredJob      string        `json:"desiredJob"`
	TotalSteps      int           `json:"totalSteps"`
	CompletedSteps  int           `json:"completedSteps"`
	EstimatedTime   string        `json:"estimatedTime"`
	OverallProgress int           `json:"overallProgress"`
	Status          string        `json:"status"`
	NextStep        *JourneyStep  `json:"nextStep"`
	Steps           []JourneyStep `json:"steps"`
	Insights        []Insight     `json:"insights"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

type JourneyStep struct {
	StepID        string `json:"stepId"`
	Title         string `json:"title"`
	Objective     string `json:"objective"`
	Resources     string `json:"resources"`
	EstimatedTime string `json:"estimatedTime"`
	Status        string `json:"status"`
}

type Insight struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// ChatReply is the backend's answer to a sent chat message.
type ChatReply struct {
	ConversationID string `json:"conversationId"`
	Message        string `json:"message"`
	Reply          string `json:"reply"`
}

// ChatHistory is the transcript of one conversation.
type ChatHistory struct {
	ConversationID string         `json:"conversationId"`
	Messages       []ChatHistoryEntry `json:"messages"`
}

type ChatHistoryEntry struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// UploadFile describes a local file to send to POST /resume/upload.
// Open is called once per upload attempt so retries read from the start.
type UploadFile struct {
	Open     func() (io.ReadCloser, error)
	Name     string
	MimeType string
}

// ResumeUploadResult is the response to a successful resume upload.
type ResumeUploadResult struct {
	AnalysisID     string          `json:"analysisId"`
	Message        string          `json:"message"`
	ResumeAnalysis *ResumeAnalysis `json:"resumeAnalysis"`
}

// ResumeAnalysis is the stored analysis of an uploaded resume.
type ResumeAnalysis struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	TextExtract string           `json:"textExtract"`
	Skills      []string         `json:"skills"`
	Gaps        []string         `json:"gaps"`
	CreatedAt   string           `json:"createdAt"`
	Summary     *AnalysisSummary `json:"summary"`
}

// AnalysisEnvelope is the response shape of GET /resume/analysis/{userId}.
// The summary appears either nested under resumeAnalysis or at the top level.
type AnalysisEnvelope struct {
	ResumeAnalysis *ResumeAnalysis  `json:"resumeAnalysis"`
	Summary        *AnalysisSummary `json:"summary"`
}

type AnalysisSummary struct {
	SuggestedCareers []CareerSuggestion `json:"suggestedCareers"`
	NextMilestone    string             `json:"nextMilestone"`
}

type CareerSuggestion struct {
	Title  string `json:"title"`
	Match  string `json:"match"`
	Reason string `json:"reason"`
}
