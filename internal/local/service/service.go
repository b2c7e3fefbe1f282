// Package service orchestrates the local coverage pipeline: it loads declared
// config and signals, runs the pure engine, and keeps the coverage cache honest.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"

	"beacon/internal/local/metrics"
	"beacon/internal/local/ports"
	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
)

//go:generate mockgen -source=../ports/ports.go -destination=mocks/ports_mock.go -package=mocks

const defaultBulkConcurrency = 8

var tracer = otel.Tracer("beacon/internal/local/service")

// Invalidation triggers, used as metric labels and audit context.
const (
	triggerSignalAdded   = "signal_added"
	triggerConfigUpdated = "config_updated"
	triggerManual        = "manual"
)

// Service is the entry point for applicability, scoring, gaps and issues.
//
// Concurrent GetProjectScorecard calls for one project may each compute and save;
// the last write wins. An InvalidateCoverage racing an in-flight compute can let
// that compute write back a snapshot taken before the mutation. Callers that need
// strict freshness re-read after their mutation returns.
type Service struct {
	signals         ports.SignalStore
	configs         ports.ConfigStore
	coverage        ports.CoverageStore
	publisher       ports.IssuePublisher
	logger          *slog.Logger
	metrics         *metrics.Metrics
	bulkConcurrency int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithIssuePublisher makes BuildLocalIssuesForProject hand its issues to p.
func WithIssuePublisher(p ports.IssuePublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithBulkConcurrency bounds the fan-out of BuildLocalIssuesForProjects.
func WithBulkConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.bulkConcurrency = n
		}
	}
}

// New constructs a Service. All three stores are required.
func New(signals ports.SignalStore, configs ports.ConfigStore, coverage ports.CoverageStore, opts ...Option) (*Service, error) {
	if signals == nil || configs == nil || coverage == nil {
		return nil, errors.New("signal, config and coverage stores are required")
	}
	s := &Service{
		signals:         signals,
		configs:         configs,
		coverage:        coverage,
		bulkConcurrency: defaultBulkConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func requireProjectID(projectID id.ProjectID) error {
	if projectID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "project_id is required")
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, event string, attrs ...any) {
	ports.LogAudit(ctx, s.logger, event, attrs...)
}

func (s *Service) logWarn(ctx context.Context, msg string, attrs ...any) {
	if s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, msg, attrs...)
}
