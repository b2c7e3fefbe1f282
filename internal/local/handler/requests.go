package handler

import (
	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

// AddSignalRequest is the body of POST /projects/{projectID}/local/signals.
type AddSignalRequest struct {
	SignalType  string  `json:"signal_type"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	URL         *string `json:"url,omitempty"`
	Evidence    *string `json:"evidence,omitempty"`
}

func (r *AddSignalRequest) toModel(projectID id.ProjectID) *models.AddSignalRequest {
	return &models.AddSignalRequest{
		ProjectID:   projectID,
		SignalType:  r.SignalType,
		Label:       r.Label,
		Description: r.Description,
		URL:         r.URL,
		Evidence:    r.Evidence,
	}
}

// UpdateConfigRequest is the body of PATCH /projects/{projectID}/local/config.
// Omitted fields keep their value; an empty service_area_description clears it.
type UpdateConfigRequest struct {
	HasPhysicalLocation    *bool   `json:"has_physical_location,omitempty"`
	Enabled                *bool   `json:"enabled,omitempty"`
	ServiceAreaDescription *string `json:"service_area_description,omitempty"`
}

func (r *UpdateConfigRequest) toPatch() *models.LocalConfigPatch {
	return &models.LocalConfigPatch{
		HasPhysicalLocation:    r.HasPhysicalLocation,
		Enabled:                r.Enabled,
		ServiceAreaDescription: r.ServiceAreaDescription,
	}
}
