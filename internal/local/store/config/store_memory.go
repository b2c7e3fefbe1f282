package config

import (
	"context"
	"sync"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	"beacon/pkg/platform/sentinel"
)

// InMemoryStore keeps one local config per project.
type InMemoryStore struct {
	mu      sync.RWMutex
	configs map[id.ProjectID]models.LocalConfig
}

// NewInMemory constructs an empty in-memory config store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		configs: make(map[id.ProjectID]models.LocalConfig),
	}
}

// FindByProject returns sentinel.ErrNotFound when nothing has been declared.
func (s *InMemoryStore) FindByProject(_ context.Context, projectID id.ProjectID) (*models.LocalConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[projectID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &cfg, nil
}

func (s *InMemoryStore) Upsert(_ context.Context, cfg *models.LocalConfig) error {
	if cfg == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.ProjectID] = *cfg
	return nil
}
