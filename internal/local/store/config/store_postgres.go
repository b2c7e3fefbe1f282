package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	"beacon/pkg/platform/sentinel"
)

// PostgresStore persists local configs in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed config store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByProject(ctx context.Context, projectID id.ProjectID) (*models.LocalConfig, error) {
	query := `
		SELECT project_id, has_physical_location, enabled, service_area_description, updated_at
		FROM local_configs
		WHERE project_id = $1
	`
	var (
		project     string
		serviceArea sql.NullString
		cfg         models.LocalConfig
	)
	err := s.db.QueryRowContext(ctx, query, projectID.String()).
		Scan(&project, &cfg.HasPhysicalLocation, &cfg.Enabled, &serviceArea, &cfg.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find local config: %w", err)
	}
	cfg.ProjectID = id.ProjectID(project)
	if serviceArea.Valid {
		v := serviceArea.String
		cfg.ServiceAreaDescription = &v
	}
	return &cfg, nil
}

func (s *PostgresStore) Upsert(ctx context.Context, cfg *models.LocalConfig) error {
	if cfg == nil {
		return fmt.Errorf("local config is required")
	}
	query := `
		INSERT INTO local_configs (project_id, has_physical_location, enabled, service_area_description, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (project_id) DO UPDATE SET
			has_physical_location = EXCLUDED.has_physical_location,
			enabled = EXCLUDED.enabled,
			service_area_description = EXCLUDED.service_area_description,
			updated_at = EXCLUDED.updated_at
	`
	var serviceArea sql.NullString
	if cfg.ServiceAreaDescription != nil {
		serviceArea = sql.NullString{String: *cfg.ServiceAreaDescription, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, query,
		cfg.ProjectID.String(),
		cfg.HasPhysicalLocation,
		cfg.Enabled,
		serviceArea,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert local config: %w", err)
	}
	return nil
}
