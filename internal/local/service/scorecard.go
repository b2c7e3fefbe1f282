package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"beacon/internal/local/engine"
	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
	"beacon/pkg/platform/sentinel"
	"beacon/pkg/requestcontext"
)

// DetermineApplicability classifies the project from its declared config.
// A project with no config is unknown, not an error.
func (s *Service) DetermineApplicability(ctx context.Context, projectID id.ProjectID) (models.Applicability, error) {
	if err := requireProjectID(projectID); err != nil {
		return models.Applicability{}, err
	}
	cfg, err := s.loadConfig(ctx, projectID)
	if err != nil {
		return models.Applicability{}, err
	}
	return engine.ClassifyApplicability(cfg), nil
}

// ComputeProjectScorecard always recomputes from config and signals, then
// persists the snapshot. A failed save fails the call.
func (s *Service) ComputeProjectScorecard(ctx context.Context, projectID id.ProjectID) (*models.Scorecard, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "local.ComputeProjectScorecard",
		trace.WithAttributes(attribute.String("project_id", projectID.String())))
	defer span.End()

	start := time.Now()
	cfg, err := s.loadConfig(ctx, projectID)
	if err != nil {
		return nil, failSpan(span, err)
	}
	app := engine.ClassifyApplicability(cfg)

	signals, err := s.signals.ListByProject(ctx, projectID)
	if err != nil {
		return nil, failSpan(span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list local signals"))
	}

	sc := engine.BuildScorecard(projectID, app, signals, requestcontext.Now(ctx))
	if err := s.coverage.Save(ctx, models.NewCoverageRecord(sc)); err != nil {
		return nil, failSpan(span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save local coverage"))
	}

	s.metrics.ObserveCompute(time.Since(start), string(app.Status), sc.Score)
	span.SetAttributes(
		attribute.String("applicability", string(app.Status)),
		attribute.Int("signal_count", len(signals)),
	)
	if sc.Score != nil {
		span.SetAttributes(attribute.Int("score", *sc.Score))
	}
	return sc, nil
}

// GetProjectScorecard returns the cached snapshot, computing and persisting one
// on a miss. It is the only read path that computes.
func (s *Service) GetProjectScorecard(ctx context.Context, projectID id.ProjectID) (*models.Scorecard, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "local.GetProjectScorecard",
		trace.WithAttributes(attribute.String("project_id", projectID.String())))
	defer span.End()

	cached, err := s.readCache(ctx, projectID)
	if err != nil {
		return nil, failSpan(span, err)
	}
	if cached != nil {
		span.SetAttributes(attribute.Bool("cache_hit", true))
		return cached, nil
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	sc, err := s.ComputeProjectScorecard(ctx, projectID)
	if err != nil {
		return nil, failSpan(span, err)
	}
	return sc, nil
}

// GetCachedProjectScorecard returns the cached snapshot or nil when there is none.
// It never computes.
func (s *Service) GetCachedProjectScorecard(ctx context.Context, projectID id.ProjectID) (*models.Scorecard, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	return s.readCache(ctx, projectID)
}

// InvalidateCoverage drops every cached snapshot for the project.
func (s *Service) InvalidateCoverage(ctx context.Context, projectID id.ProjectID) error {
	if err := requireProjectID(projectID); err != nil {
		return err
	}
	if err := s.invalidate(ctx, projectID, triggerManual); err != nil {
		return err
	}
	s.logAudit(ctx, "local_coverage_invalidated",
		"project_id", projectID.String(),
		"trigger", triggerManual)
	return nil
}

// GenerateGaps diffs the scorecard against the weight table.
func (s *Service) GenerateGaps(sc *models.Scorecard) []models.Gap {
	gaps := engine.GenerateGaps(sc)
	for _, g := range gaps {
		s.metrics.IncrementGap(string(g.GapType), string(g.Severity))
	}
	return gaps
}

func (s *Service) invalidate(ctx context.Context, projectID id.ProjectID, trigger string) error {
	if err := s.coverage.DeleteByProject(ctx, projectID); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to invalidate local coverage")
	}
	s.metrics.IncrementInvalidation(trigger)
	return nil
}

func (s *Service) loadConfig(ctx context.Context, projectID id.ProjectID) (*models.LocalConfig, error) {
	cfg, err := s.configs.FindByProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load local config")
	}
	return cfg, nil
}

// readCache returns nil on a miss. Snapshots whose status disagrees with their
// reasons, or applicable snapshots without a score, count as misses.
func (s *Service) readCache(ctx context.Context, projectID id.ProjectID) (*models.Scorecard, error) {
	rec, err := s.coverage.FindLatest(ctx, projectID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.metrics.RecordCacheMiss()
			return nil, nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read local coverage")
	}

	sc := rec.ToScorecard()
	if !consistent(sc) {
		s.logWarn(ctx, "discarding inconsistent local coverage snapshot",
			"project_id", projectID.String(),
			"applicability", string(sc.ApplicabilityStatus))
		s.metrics.RecordCacheMiss()
		return nil, nil
	}
	s.metrics.RecordCacheHit()
	return sc, nil
}

func consistent(sc *models.Scorecard) bool {
	if sc.IsApplicable() != engine.IsLocalApplicableFromReasons(sc.ApplicabilityReasons) {
		return false
	}
	if sc.IsApplicable() && sc.Score == nil {
		return false
	}
	return true
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
