package api

import (
	"context"
	"fmt"
	"net/http"
)

// CompleteProfile finishes registration by attaching name and current job
// to the freshly created account.
func (c *Client) CompleteProfile(ctx context.Context, req CompleteProfileRequest) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/auth/complete-profile", req, &profile); err != nil {
		return nil, fmt.Errorf("completing profile: %w", err)
	}
	return &profile, nil
}

// Profile returns the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &profile); err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile replaces the user's editable profile fields.
func (c *Client) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPut, "/profile", req, &profile); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return &profile, nil
}

// DeleteProfile permanently deletes the user's account data on the backend.
func (c *Client) DeleteProfile(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/profile", nil, nil); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}
