package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/catalog"
)

// Summary is the selection view the SPA renders next to the seat grid.
type Summary struct {
	UnitID    string   `json:"unit_id"`
	Seats     []string `json:"seats"`
	TotalCost float64  `json:"total_cost"`
}

type Service interface {
	// Toggle flips one seat for the session against the unit's current
	// catalog snapshot and returns the updated summary.
	Toggle(ctx context.Context, sessionID, unitID, seatNumber string) (*Summary, error)

	// Get returns the session's current selection for a unit, resetting
	// it first if the unit identity changed since the last interaction.
	Get(ctx context.Context, sessionID, unitID string) (*Summary, error)

	// Clear empties the session's selection.
	Clear(ctx context.Context, sessionID string) error

	// Current returns the raw state for checkout, without resets.
	Current(ctx context.Context, sessionID string) (*State, error)
}

type service struct {
	repo           Repository
	catalogService catalog.Service
}

func NewService(repo Repository, catalogService catalog.Service) Service {
	return &service{
		repo:           repo,
		catalogService: catalogService,
	}
}

func (s *service) Toggle(ctx context.Context, sessionID, unitID, seatNumber string) (*Summary, error) {
	if seatNumber == "" {
		return nil, fmt.Errorf("seat number is required")
	}

	unit, err := s.catalogService.GetUnitSeats(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seat catalog: %w", err)
	}

	state, err := s.loadOrCreate(ctx, sessionID, unitID)
	if err != nil {
		return nil, err
	}

	state.ResetIfUnitChanged(unitID)
	state.Toggle(unit, seatNumber)

	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	return &Summary{
		UnitID:    state.UnitID,
		Seats:     state.Seats,
		TotalCost: state.Total(unit),
	}, nil
}

func (s *service) Get(ctx context.Context, sessionID, unitID string) (*Summary, error) {
	unit, err := s.catalogService.GetUnitSeats(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve seat catalog: %w", err)
	}

	state, err := s.loadOrCreate(ctx, sessionID, unitID)
	if err != nil {
		return nil, err
	}

	if state.ResetIfUnitChanged(unitID) {
		if err := s.repo.Save(ctx, sessionID, state); err != nil {
			return nil, err
		}
	}

	return &Summary{
		UnitID:    state.UnitID,
		Seats:     state.Seats,
		TotalCost: state.Total(unit),
	}, nil
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	return s.repo.Delete(ctx, sessionID)
}

func (s *service) Current(ctx context.Context, sessionID string) (*State, error) {
	state, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewState(""), nil
		}
		return nil, err
	}
	return state, nil
}

func (s *service) loadOrCreate(ctx context.Context, sessionID, unitID string) (*State, error) {
	state, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NewState(unitID), nil
		}
		return nil, err
	}
	return state, nil
}
