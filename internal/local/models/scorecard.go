package models

import (
	"time"

	id "beacon/pkg/domain"
)

// CoverageStatus is the band a coverage score falls into.
type CoverageStatus string

const (
	CoverageWeak             CoverageStatus = "weak"
	CoverageNeedsImprovement CoverageStatus = "needs_improvement"
	CoverageStrong           CoverageStatus = "strong"
)

// Band lower edges. A score equal to an edge belongs to the higher band.
const (
	NeedsImprovementMinScore = 40
	StrongMinScore           = 70
)

// CoverageStatusFromScore maps a 0–100 score to its band.
func CoverageStatusFromScore(score int) CoverageStatus {
	switch {
	case score >= StrongMinScore:
		return CoverageStrong
	case score >= NeedsImprovementMinScore:
		return CoverageNeedsImprovement
	default:
		return CoverageWeak
	}
}

// SignalCounts maps each known signal type to the number of signals of that type.
type SignalCounts map[SignalType]int

// Scorecard is a point-in-time coverage snapshot for a project.
//
// Score and Status are nil when the project is not applicable: "not scored" is
// distinct from "scored zero" and carries no penalty.
type Scorecard struct {
	ProjectID                id.ProjectID          `json:"project_id"`
	ApplicabilityStatus      ApplicabilityStatus   `json:"applicability_status"`
	ApplicabilityReasons     []ApplicabilityReason `json:"applicability_reasons"`
	Score                    *int                  `json:"score,omitempty"`
	Status                   *CoverageStatus       `json:"status,omitempty"`
	SignalCounts             SignalCounts          `json:"signal_counts"`
	MissingLocalSignalsCount int                   `json:"missing_local_signals_count"`
	ComputedAt               time.Time             `json:"computed_at"`
}

// IsApplicable reports whether the snapshot was scored.
func (s *Scorecard) IsApplicable() bool {
	return s != nil && s.ApplicabilityStatus == ApplicabilityApplicable
}

// Applicability returns the classifier output captured in the snapshot.
func (s *Scorecard) Applicability() Applicability {
	return Applicability{Status: s.ApplicabilityStatus, Reasons: s.ApplicabilityReasons}
}
