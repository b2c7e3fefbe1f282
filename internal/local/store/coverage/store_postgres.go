package coverage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"beacon/internal/local/metrics"
	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	"beacon/pkg/platform/sentinel"
)

// PostgresStore persists coverage snapshots in PostgreSQL.
//
// Rows are history: Save appends and FindLatest reads the newest computed_at.
// DeleteByProject drops the whole history so no older row can resurface after
// an invalidation.
type PostgresStore struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

// NewPostgres constructs a PostgreSQL-backed coverage store. metrics may be nil.
func NewPostgres(db *sql.DB, m *metrics.Metrics) *PostgresStore {
	return &PostgresStore{db: db, metrics: m}
}

func (s *PostgresStore) FindLatest(ctx context.Context, projectID id.ProjectID) (*models.CoverageRecord, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveCacheLookup("postgres", time.Since(start)) }()

	query := `
		SELECT project_id, applicability_status, applicability_reasons, score, status,
		       signal_counts, missing_local_signals_count, computed_at
		FROM local_coverage
		WHERE project_id = $1
		ORDER BY computed_at DESC, id DESC
		LIMIT 1
	`
	var (
		rec       models.CoverageRecord
		reasons   pq.StringArray
		countsRaw []byte
	)
	err := s.db.QueryRowContext(ctx, query, projectID.String()).Scan(
		&rec.ProjectID,
		&rec.ApplicabilityStatus,
		&reasons,
		&rec.Score,
		&rec.Status,
		&countsRaw,
		&rec.MissingLocalSignalsCount,
		&rec.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find latest coverage: %w", err)
	}
	rec.ApplicabilityReasons = []string(reasons)
	rec.SignalCounts = map[string]int{}
	if len(countsRaw) > 0 {
		if err := json.Unmarshal(countsRaw, &rec.SignalCounts); err != nil {
			return nil, fmt.Errorf("decode coverage signal counts: %w", err)
		}
	}
	return &rec, nil
}

func (s *PostgresStore) Save(ctx context.Context, record *models.CoverageRecord) error {
	if record == nil {
		return fmt.Errorf("coverage record is required")
	}
	counts, err := json.Marshal(record.SignalCounts)
	if err != nil {
		return fmt.Errorf("encode coverage signal counts: %w", err)
	}
	reasons := record.ApplicabilityReasons
	if reasons == nil {
		reasons = []string{}
	}
	query := `
		INSERT INTO local_coverage (project_id, applicability_status, applicability_reasons, score, status,
		                            signal_counts, missing_local_signals_count, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ProjectID,
		record.ApplicabilityStatus,
		pq.Array(reasons),
		record.Score,
		record.Status,
		counts,
		record.MissingLocalSignalsCount,
		record.ComputedAt,
	)
	if err != nil {
		return fmt.Errorf("save coverage: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteByProject(ctx context.Context, projectID id.ProjectID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_coverage WHERE project_id = $1`, projectID.String())
	if err != nil {
		return fmt.Errorf("delete coverage: %w", err)
	}
	return nil
}
