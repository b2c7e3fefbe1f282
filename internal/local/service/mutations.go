package service

import (
	"context"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
	"beacon/pkg/requestcontext"
)

// AddSignal records a signal and invalidates the project's cached coverage.
func (s *Service) AddSignal(ctx context.Context, req *models.AddSignalRequest) (*models.LocalSignal, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	signal, err := models.NewLocalSignal(id.NewSignalID(), req, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.signals.Create(ctx, signal); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create local signal")
	}
	if err := s.invalidate(ctx, signal.ProjectID, triggerSignalAdded); err != nil {
		return nil, err
	}

	s.logAudit(ctx, "local_signal_added",
		"project_id", signal.ProjectID.String(),
		"signal_id", signal.ID.String(),
		"signal_type", string(signal.SignalType))
	return signal, nil
}

// UpdateProjectLocalConfig merges the patch into the project's config, creating
// it when absent, and invalidates cached coverage.
func (s *Service) UpdateProjectLocalConfig(ctx context.Context, projectID id.ProjectID, patch *models.LocalConfigPatch) (*models.LocalConfig, error) {
	if err := requireProjectID(projectID); err != nil {
		return nil, err
	}
	if patch == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "config patch is required")
	}

	cfg, err := s.loadConfig(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = &models.LocalConfig{ProjectID: projectID}
	}
	patch.Apply(cfg, requestcontext.Now(ctx))

	if err := s.configs.Upsert(ctx, cfg); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save local config")
	}
	if err := s.invalidate(ctx, projectID, triggerConfigUpdated); err != nil {
		return nil, err
	}

	s.logAudit(ctx, "local_config_updated",
		"project_id", projectID.String(),
		"has_physical_location", cfg.HasPhysicalLocation,
		"enabled", cfg.Enabled)
	return cfg, nil
}
