package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/gateway"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/constants"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/cache"
)

// ErrNotFound is returned when a hand-off entry is missing or expired.
var ErrNotFound = errors.New("relay entry not found")

// Handoff is the page-to-page relay record written at the end of a
// successful checkout so the post-redirect confirmation page can render
// ticket details without re-fetching. Disposable by design: adjacent
// flows overwrite or clear it.
type Handoff struct {
	UnitID        string                        `json:"unit_id"`
	BookingID     string                        `json:"booking_id"`
	Reservations  []gateway.ReserveSeatResponse `json:"reservations"`
	SeatNumbers   []string                      `json:"seat_numbers"`
	Email         string                        `json:"email"`
	TransactionID string                        `json:"transaction_id"`
	TotalCost     float64                       `json:"total_cost"`
	CreatedAt     time.Time                     `json:"created_at"`
}

// Store is the short-lived server-side session store standing in for the
// SPA's local-storage relay.
type Store interface {
	SaveHandoff(ctx context.Context, sessionID string, h Handoff) error
	LoadHandoff(ctx context.Context, sessionID string) (*Handoff, error)
	ClearHandoff(ctx context.Context, sessionID string) error

	SaveUnitSelection(ctx context.Context, sessionID, unitID string) error
	LoadUnitSelection(ctx context.Context, sessionID string) (string, error)
}

type store struct {
	cache cache.Service
	ttl   time.Duration
}

func NewStore(cacheService cache.Service, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = constants.TTL_RELAY
	}
	return &store{cache: cacheService, ttl: ttl}
}

func (s *store) SaveHandoff(ctx context.Context, sessionID string, h Handoff) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	key := constants.BuildRelayKey(sessionID, "handoff")
	if err := s.cache.Set(ctx, key, h, s.ttl); err != nil {
		return fmt.Errorf("failed to save checkout handoff: %w", err)
	}
	return nil
}

func (s *store) LoadHandoff(ctx context.Context, sessionID string) (*Handoff, error) {
	key := constants.BuildRelayKey(sessionID, "handoff")

	var h Handoff
	if err := s.cache.Get(ctx, key, &h); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load checkout handoff: %w", err)
	}
	return &h, nil
}

func (s *store) ClearHandoff(ctx context.Context, sessionID string) error {
	key := constants.BuildRelayKey(sessionID, "handoff")
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to clear checkout handoff: %w", err)
	}
	return nil
}

func (s *store) SaveUnitSelection(ctx context.Context, sessionID, unitID string) error {
	key := constants.BuildRelayKey(sessionID, "unit")
	if err := s.cache.Set(ctx, key, unitID, s.ttl); err != nil {
		return fmt.Errorf("failed to save unit selection: %w", err)
	}
	return nil
}

func (s *store) LoadUnitSelection(ctx context.Context, sessionID string) (string, error) {
	key := constants.BuildRelayKey(sessionID, "unit")

	var unitID string
	if err := s.cache.Get(ctx, key, &unitID); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load unit selection: %w", err)
	}
	return unitID, nil
}
