package models

import (
	id "beacon/pkg/domain"
)

// PillarLocalDiscovery is the issue pillar every local coverage issue belongs to.
const PillarLocalDiscovery = "local_discovery"

// ActionabilityManual marks issues that need a human to fix.
const ActionabilityManual = "manual"

// ProjectScopeSegment stands in for the product segment of a fix-work key when an
// issue targets the whole project.
const ProjectScopeSegment = "project"

// IssueTarget scopes issue synthesis. A nil ProductID targets the project.
// FocusKey and DraftType disambiguate several possible fixes for the same gap
// (for example a city slug and a content template); blanks fall back to defaults.
type IssueTarget struct {
	ProductID *id.ProductID `json:"product_id,omitempty"`
	FocusKey  string        `json:"focus_key,omitempty"`
	DraftType string        `json:"draft_type,omitempty"`
}

// Issue is a downstream record for the issue-tracking pipeline.
type Issue struct {
	PillarID                  string                `json:"pillar_id"`
	ProjectID                 id.ProjectID          `json:"project_id"`
	ProductID                 *id.ProductID         `json:"product_id,omitempty"`
	LocalSignalType           SignalType            `json:"local_signal_type"`
	LocalGapType              GapType               `json:"local_gap_type"`
	LocalApplicabilityStatus  ApplicabilityStatus   `json:"local_applicability_status"`
	LocalApplicabilityReasons []ApplicabilityReason `json:"local_applicability_reasons"`
	Severity                  Severity              `json:"severity"`
	Actionability             string                `json:"actionability"`
	RecommendedAction         string                `json:"recommended_action"`
	WhyItMatters              string                `json:"why_it_matters"`
	FixWorkKey                string                `json:"fix_work_key"`
}
