package signal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

type SignalStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func (s *SignalStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func TestSignalStoreSuite(t *testing.T) {
	suite.Run(t, new(SignalStoreSuite))
}

func newSignal(project id.ProjectID, t models.SignalType) *models.LocalSignal {
	now := time.Now()
	return &models.LocalSignal{
		ID:         id.NewSignalID(),
		ProjectID:  project,
		SignalType: t,
		Label:      "label",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *SignalStoreSuite) TestListByProject() {
	ctx := context.Background()

	s.Run("empty project returns empty list", func() {
		signals, err := s.store.ListByProject(ctx, "nobody")
		s.Require().NoError(err)
		s.Empty(signals)
	})

	s.Run("returns signals in insertion order scoped to project", func() {
		first := newSignal("proj-a", models.SignalLocationPresence)
		second := newSignal("proj-a", models.SignalLocationPresence)
		other := newSignal("proj-b", models.SignalLocalTrustSignals)
		s.Require().NoError(s.store.Create(ctx, first))
		s.Require().NoError(s.store.Create(ctx, second))
		s.Require().NoError(s.store.Create(ctx, other))

		signals, err := s.store.ListByProject(ctx, "proj-a")
		s.Require().NoError(err)
		s.Require().Len(signals, 2)
		s.Equal(first.ID, signals[0].ID)
		s.Equal(second.ID, signals[1].ID)
	})

	s.Run("returned slice is a copy", func() {
		s.Require().NoError(s.store.Create(ctx, newSignal("proj-c", models.SignalLocationPresence)))
		signals, err := s.store.ListByProject(ctx, "proj-c")
		s.Require().NoError(err)
		signals[0].Label = "mutated"

		again, err := s.store.ListByProject(ctx, "proj-c")
		s.Require().NoError(err)
		s.Equal("label", again[0].Label)
	})
}
