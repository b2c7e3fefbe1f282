//go:build integration

package signal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"beacon/internal/local/models"
	"beacon/internal/local/store/migrations"
	"beacon/internal/local/store/signal"
	id "beacon/pkg/domain"
	"beacon/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *signal.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.Require().NoError(migrations.Apply(context.Background(), s.postgres.DB))
	s.store = signal.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "local_signals"))
}

func (s *PostgresStoreSuite) TestCreateAndList() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	url := "https://example.com/stores/boulder"

	first := &models.LocalSignal{
		ID:          id.NewSignalID(),
		ProjectID:   "proj-sig",
		SignalType:  models.SignalLocationPresence,
		Label:       "Boulder store",
		Description: "Pearl Street",
		URL:         &url,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	second := &models.LocalSignal{
		ID:         id.NewSignalID(),
		ProjectID:  "proj-sig",
		SignalType: "store_hours",
		Label:      "Hours",
		CreatedAt:  now.Add(time.Second),
		UpdatedAt:  now.Add(time.Second),
	}
	s.Require().NoError(s.store.Create(ctx, first))
	s.Require().NoError(s.store.Create(ctx, second))

	signals, err := s.store.ListByProject(ctx, "proj-sig")
	s.Require().NoError(err)
	s.Require().Len(signals, 2)
	s.Equal(first.ID, signals[0].ID)
	s.Require().NotNil(signals[0].URL)
	s.Equal(url, *signals[0].URL)
	s.Nil(signals[0].Evidence)
	s.Equal(models.SignalType("store_hours"), signals[1].SignalType)
}
