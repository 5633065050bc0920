package stats

import (
	"context"
	"fmt"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/constants"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/cache"
)

// Service serves the admin dashboard snapshot. Reads hit the cached
// snapshot kept warm by the Poller; a cold cache falls through to the
// backend directly.
type Service interface {
	GetDashboardStats(ctx context.Context) (*gateway.DashboardStats, error)

	// Refresh fetches a fresh snapshot from the backend and caches it.
	Refresh(ctx context.Context) (*gateway.DashboardStats, error)

	// SetCacheService injects the cache service dependency.
	SetCacheService(cacheService cache.Service)
}

type service struct {
	client       gateway.StatsClient
	cacheService cache.Service
}

func NewService(client gateway.StatsClient) Service {
	return &service{client: client}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetDashboardStats(ctx context.Context) (*gateway.DashboardStats, error) {
	if s.cacheService != nil {
		var cached gateway.DashboardStats
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_DASHBOARD_STATS, &cached); err == nil {
			return &cached, nil
		}
	}
	return s.Refresh(ctx)
}

func (s *service) Refresh(ctx context.Context) (*gateway.DashboardStats, error) {
	stats, err := s.client.GetDashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, constants.CACHE_KEY_DASHBOARD_STATS, stats, constants.TTL_DASHBOARD_STATS); err != nil {
			return stats, nil
		}
	}
	return stats, nil
}
