package models

import (
	"time"

	id "beacon/pkg/domain"
)

// LocalConfig is the merchant-declared local setup for a project.
// A project without a LocalConfig is in the "unknown" applicability state.
type LocalConfig struct {
	ProjectID              id.ProjectID `json:"project_id"`
	HasPhysicalLocation    bool         `json:"has_physical_location"`
	Enabled                bool         `json:"enabled"`
	ServiceAreaDescription *string      `json:"service_area_description,omitempty"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

// LocalConfigPatch is a partial update; nil fields keep their current value.
type LocalConfigPatch struct {
	HasPhysicalLocation    *bool   `json:"has_physical_location,omitempty"`
	Enabled                *bool   `json:"enabled,omitempty"`
	ServiceAreaDescription *string `json:"service_area_description,omitempty"`
}

// Apply merges the patch onto cfg. An empty service area description clears it.
func (p *LocalConfigPatch) Apply(cfg *LocalConfig, now time.Time) {
	if p == nil || cfg == nil {
		return
	}
	if p.HasPhysicalLocation != nil {
		cfg.HasPhysicalLocation = *p.HasPhysicalLocation
	}
	if p.Enabled != nil {
		cfg.Enabled = *p.Enabled
	}
	if p.ServiceAreaDescription != nil {
		cfg.ServiceAreaDescription = trimOptional(p.ServiceAreaDescription)
	}
	cfg.UpdatedAt = now
}
