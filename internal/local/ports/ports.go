// Package ports defines the persistence and delivery collaborators the local
// coverage service depends on.
package ports

import (
	"context"
	"log/slog"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	"beacon/pkg/requestcontext"
)

// SignalStore persists local signals.
type SignalStore interface {
	// Create stores a new signal.
	Create(ctx context.Context, signal *models.LocalSignal) error

	// ListByProject returns every signal for a project, oldest first.
	ListByProject(ctx context.Context, projectID id.ProjectID) ([]models.LocalSignal, error)
}

// ConfigStore persists per-project local configuration.
type ConfigStore interface {
	// FindByProject returns sentinel.ErrNotFound when no config has been declared.
	FindByProject(ctx context.Context, projectID id.ProjectID) (*models.LocalConfig, error)

	// Upsert creates or replaces the project's config.
	Upsert(ctx context.Context, cfg *models.LocalConfig) error
}

// CoverageStore persists computed scorecards.
type CoverageStore interface {
	// FindLatest returns the most recent record, or sentinel.ErrNotFound.
	FindLatest(ctx context.Context, projectID id.ProjectID) (*models.CoverageRecord, error)

	// Save upserts the project's record.
	Save(ctx context.Context, record *models.CoverageRecord) error

	// DeleteByProject removes every record for the project.
	DeleteByProject(ctx context.Context, projectID id.ProjectID) error
}

// IssuePublisher hands synthesized issues to the issue-tracking pipeline.
type IssuePublisher interface {
	Publish(ctx context.Context, issues []models.Issue) error
}

// LogAudit logs a state-changing event with the standard audit fields.
func LogAudit(ctx context.Context, logger *slog.Logger, event string, attrs ...any) {
	if logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attrs = append(attrs, "request_id", requestID)
	}
	args := append(attrs, "event", event, "log_type", "audit")
	logger.InfoContext(ctx, event, args...)
}
