package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ActiveJourney returns the user's current journey snapshot.
// A 404 response means no active journey and maps to (nil, nil).
func (c *Client) ActiveJourney(ctx context.Context) (*Journey, error) {
	var journey Journey
	if err := c.do(ctx, http.MethodGet, "/journeys/active", nil, &journey); err != nil {
		if IsStatus(err, http.StatusNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching active journey: %w", err)
	}
	return &journey, nil
}

// GenerateJourney asks the backend to build a new journey toward the
// desired job. This is a long-running AI call on the backend side.
func (c *Client) GenerateJourney(ctx context.Context, desiredJob string) (*Journey, error) {
	body := map[string]string{"desiredJob": desiredJob}
	var journey Journey
	if err := c.do(ctx, http.MethodPost, "/journeys/generate", body, &journey); err != nil {
		return nil, fmt.Errorf("generating journey: %w", err)
	}
	return &journey, nil
}

// UpdateStepProgress marks a journey step as done or not done.
func (c *Client) UpdateStepProgress(ctx context.Context, stepID string, done bool) (*Journey, error) {
	body := map[string]bool{"progress": done}
	path := "/journeys/steps/" + url.PathEscape(stepID) + "/progress"
	var journey Journey
	if err := c.do(ctx, http.MethodPatch, path, body, &journey); err != nil {
		return nil, fmt.Errorf("updating step progress: %w", err)
	}
	return &journey, nil
}
