package selection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/internal/shared/constants"
	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/cache"
)

// ErrNotFound is returned when a session has no stored selection.
var ErrNotFound = errors.New("selection not found")

// Repository persists per-session selection state.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*State, error)
	Save(ctx context.Context, sessionID string, state *State) error
	Delete(ctx context.Context, sessionID string) error
}

type redisRepository struct {
	cache cache.Service
	ttl   time.Duration
}

func NewRepository(cacheService cache.Service, ttl time.Duration) Repository {
	if ttl <= 0 {
		ttl = constants.TTL_SELECTION
	}
	return &redisRepository{cache: cacheService, ttl: ttl}
}

func (r *redisRepository) Get(ctx context.Context, sessionID string) (*State, error) {
	var state State
	if err := r.cache.Get(ctx, constants.BuildSelectionKey(sessionID), &state); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load selection state: %w", err)
	}
	return &state, nil
}

func (r *redisRepository) Save(ctx context.Context, sessionID string, state *State) error {
	if err := r.cache.Set(ctx, constants.BuildSelectionKey(sessionID), state, r.ttl); err != nil {
		return fmt.Errorf("failed to save selection state: %w", err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.cache.Delete(ctx, constants.BuildSelectionKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete selection state: %w", err)
	}
	return nil
}

// memoryRepository backs tests and redis-less local runs.
type memoryRepository struct {
	mu     sync.RWMutex
	states map[string]*State
}

func NewMemoryRepository() Repository {
	return &memoryRepository{states: make(map[string]*State)}
}

func (r *memoryRepository) Get(ctx context.Context, sessionID string) (*State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[sessionID]
	if !ok {
		return nil, ErrNotFound
	}

	clone := *state
	clone.Seats = append([]string{}, state.Seats...)
	return &clone, nil
}

func (r *memoryRepository) Save(ctx context.Context, sessionID string, state *State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *state
	clone.Seats = append([]string{}, state.Seats...)
	r.states[sessionID] = &clone
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.states, sessionID)
	return nil
}
