//go:build integration

package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"beacon/internal/local/models"
	"beacon/internal/local/store/config"
	"beacon/internal/local/store/migrations"
	"beacon/pkg/platform/sentinel"
	"beacon/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *config.PostgresStore
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
	s.store = config.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "local_configs"))
}

func (s *PostgresStoreSuite) TestUpsert() {
	ctx := context.Background()

	_, err := s.store.FindByProject(ctx, "proj-cfg")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	area := "Front Range"
	s.Require().NoError(s.store.Upsert(ctx, &models.LocalConfig{
		ProjectID:              "proj-cfg",
		HasPhysicalLocation:    true,
		ServiceAreaDescription: &area,
		UpdatedAt:              time.Now().UTC(),
	}))
	s.Require().NoError(s.store.Upsert(ctx, &models.LocalConfig{
		ProjectID: "proj-cfg",
		Enabled:   true,
		UpdatedAt: time.Now().UTC(),
	}))

	cfg, err := s.store.FindByProject(ctx, "proj-cfg")
	s.Require().NoError(err)
	s.False(cfg.HasPhysicalLocation)
	s.True(cfg.Enabled)
	s.Nil(cfg.ServiceAreaDescription)
}
