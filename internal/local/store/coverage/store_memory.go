package coverage

import (
	"context"
	"sync"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	"beacon/pkg/platform/sentinel"
)

// InMemoryStore keeps the latest coverage record per project.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[id.ProjectID]models.CoverageRecord
}

// NewInMemory constructs an empty in-memory coverage store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		records: make(map[id.ProjectID]models.CoverageRecord),
	}
}

// FindLatest returns sentinel.ErrNotFound when nothing is cached.
func (s *InMemoryStore) FindLatest(_ context.Context, projectID id.ProjectID) (*models.CoverageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[projectID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return cloneRecord(&rec), nil
}

// Save overwrites the project's record; concurrent writers resolve last-write-wins.
func (s *InMemoryStore) Save(_ context.Context, record *models.CoverageRecord) error {
	if record == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id.ProjectID(record.ProjectID)] = *cloneRecord(record)
	return nil
}

func (s *InMemoryStore) DeleteByProject(_ context.Context, projectID id.ProjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, projectID)
	return nil
}

func cloneRecord(rec *models.CoverageRecord) *models.CoverageRecord {
	out := *rec
	out.ApplicabilityReasons = append([]string(nil), rec.ApplicabilityReasons...)
	out.SignalCounts = make(map[string]int, len(rec.SignalCounts))
	for k, v := range rec.SignalCounts {
		out.SignalCounts[k] = v
	}
	return &out
}
