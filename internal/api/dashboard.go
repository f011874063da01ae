package api

import (
	"context"
	"fmt"
	"net/http"
)

// Dashboard returns the aggregate dashboard view.
// A 400 response means the backend has no dashboard data for this user yet
// (no journey, no resume); that maps to (nil, nil) rather than an error.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var dash Dashboard
	if err := c.do(ctx, http.MethodGet, "/dashboard", nil, &dash); err != nil {
		if IsStatus(err, http.StatusBadRequest) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching dashboard: %w", err)
	}
	return &dash, nil
}
