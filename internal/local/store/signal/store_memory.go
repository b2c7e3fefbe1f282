package signal

import (
	"context"
	"sync"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

// InMemoryStore keeps signals per project in insertion order.
type InMemoryStore struct {
	mu      sync.RWMutex
	signals map[id.ProjectID][]models.LocalSignal
}

// NewInMemory constructs an empty in-memory signal store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		signals: make(map[id.ProjectID][]models.LocalSignal),
	}
}

func (s *InMemoryStore) Create(_ context.Context, signal *models.LocalSignal) error {
	if signal == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signals[signal.ProjectID] = append(s.signals[signal.ProjectID], *signal)
	return nil
}

func (s *InMemoryStore) ListByProject(_ context.Context, projectID id.ProjectID) ([]models.LocalSignal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.signals[projectID]
	out := make([]models.LocalSignal, len(stored))
	copy(out, stored)
	return out, nil
}
