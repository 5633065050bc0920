package relay

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a map-backed Store for tests and redis-less local runs.
// Entries never expire; callers that care about TTL use the redis store.
type MemoryStore struct {
	mu        sync.RWMutex
	handoffs  map[string]Handoff
	unitByKey map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		handoffs:  make(map[string]Handoff),
		unitByKey: make(map[string]string),
	}
}

func (s *MemoryStore) SaveHandoff(ctx context.Context, sessionID string, h Handoff) error {
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.handoffs[sessionID] = h
	return nil
}

func (s *MemoryStore) LoadHandoff(ctx context.Context, sessionID string) (*Handoff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.handoffs[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (s *MemoryStore) ClearHandoff(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.handoffs, sessionID)
	return nil
}

func (s *MemoryStore) SaveUnitSelection(ctx context.Context, sessionID, unitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitByKey[sessionID] = unitID
	return nil
}

func (s *MemoryStore) LoadUnitSelection(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unitID, ok := s.unitByKey[sessionID]
	if !ok {
		return "", ErrNotFound
	}
	return unitID, nil
}
