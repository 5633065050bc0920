package gateway

import (
	"context"
	"fmt"
)

// StatsClient reads aggregate booking statistics for the admin dashboard.
type StatsClient interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type HTTPStatsClient struct {
	baseClient
}

// GetDashboardStats fetches the aggregate snapshot. Idempotent read, so
// the shared retry budget applies.
func (c *HTTPStatsClient) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	endpoint := c.url("/stats/dashboard")

	if err := c.http.GetJSON(ctx, endpoint, nil, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	return &stats, nil
}
