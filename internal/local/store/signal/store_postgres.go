package signal

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

// PostgresStore persists local signals in PostgreSQL.
// This store is pure I/O; validation belongs in the service.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed signal store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, signal *models.LocalSignal) error {
	if signal == nil {
		return fmt.Errorf("local signal is required")
	}
	query := `
		INSERT INTO local_signals (id, project_id, signal_type, label, description, url, evidence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(signal.ID),
		signal.ProjectID.String(),
		string(signal.SignalType),
		signal.Label,
		signal.Description,
		nullString(signal.URL),
		nullString(signal.Evidence),
		signal.CreatedAt,
		signal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create local signal: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByProject(ctx context.Context, projectID id.ProjectID) ([]models.LocalSignal, error) {
	query := `
		SELECT id, project_id, signal_type, label, description, url, evidence, created_at, updated_at
		FROM local_signals
		WHERE project_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, projectID.String())
	if err != nil {
		return nil, fmt.Errorf("list local signals: %w", err)
	}
	defer rows.Close()

	signals := []models.LocalSignal{}
	for rows.Next() {
		var (
			signalID   uuid.UUID
			project    string
			signalType string
			url        sql.NullString
			evidence   sql.NullString
			signal     models.LocalSignal
		)
		if err := rows.Scan(&signalID, &project, &signalType, &signal.Label, &signal.Description,
			&url, &evidence, &signal.CreatedAt, &signal.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan local signal: %w", err)
		}
		signal.ID = id.SignalID(signalID)
		signal.ProjectID = id.ProjectID(project)
		// Unknown types are kept as-is; the scorer ignores them.
		signal.SignalType = models.SignalType(signalType)
		signal.URL = stringPtr(url)
		signal.Evidence = stringPtr(evidence)
		signals = append(signals, signal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate local signals: %w", err)
	}
	return signals, nil
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
