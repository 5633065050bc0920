package catalog

import (
	"context"
	"fmt"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/constants"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/cache"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

type Service interface {
	// GetUnitSeats returns the read-only seat snapshot for one transport
	// unit, fetched from the backend once per page view.
	GetUnitSeats(ctx context.Context, unitID string) (*gateway.UnitSeats, error)

	// LookupSeat resolves a seat number against a unit's snapshot.
	LookupSeat(ctx context.Context, unitID, seatNumber string) (*gateway.Seat, error)

	// Invalidate drops a unit's cached snapshot so the next read sees
	// fresh occupancy.
	Invalidate(ctx context.Context, unitID string)

	// SetCacheService injects the cache service dependency.
	SetCacheService(cacheService cache.Service)
}

type service struct {
	client       gateway.CatalogClient
	cacheService cache.Service
}

func NewService(client gateway.CatalogClient) Service {
	return &service{client: client}
}

// SetCacheService enables short-lived snapshot caching. Without it every
// call goes straight to the backend.
func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetUnitSeats(ctx context.Context, unitID string) (*gateway.UnitSeats, error) {
	if unitID == "" {
		return nil, fmt.Errorf("unit ID is required")
	}

	cacheKey := constants.BuildCatalogUnitKey(unitID)
	if s.cacheService != nil {
		var cached gateway.UnitSeats
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			logger.GetDefault().Debug("cache hit for seat catalog", "unit_id", unitID)
			return &cached, nil
		}
	}

	unit, err := s.client.GetUnitSeats(ctx, unitID)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, unit, constants.TTL_CATALOG_SNAPSHOT); err != nil {
			logger.GetDefault().Debug("failed to cache seat catalog", "unit_id", unitID, "error", err)
		}
	}

	return unit, nil
}

func (s *service) Invalidate(ctx context.Context, unitID string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, constants.BuildCatalogUnitKey(unitID)); err != nil {
		logger.GetDefault().Debug("failed to invalidate seat catalog", "unit_id", unitID, "error", err)
	}
}

func (s *service) LookupSeat(ctx context.Context, unitID, seatNumber string) (*gateway.Seat, error) {
	unit, err := s.GetUnitSeats(ctx, unitID)
	if err != nil {
		return nil, err
	}

	for i := range unit.Seats {
		if unit.Seats[i].SeatNumber == seatNumber {
			return &unit.Seats[i], nil
		}
	}

	return nil, fmt.Errorf("seat %s not found in unit %s", seatNumber, unitID)
}
