package models

import (
	"time"

	id "beacon/pkg/domain"
)

// Stored sentinels for unscored snapshots. They never leave the store layer:
// ToScorecard maps them back to nil.
const (
	NotScoredSentinel       = -1
	NotScoredStatusSentinel = "not_scored"
)

// CoverageRecord is the persisted form of a Scorecard.
type CoverageRecord struct {
	ProjectID                string         `json:"project_id"`
	ApplicabilityStatus      string         `json:"applicability_status"`
	ApplicabilityReasons     []string       `json:"applicability_reasons"`
	Score                    int            `json:"score"`
	Status                   string         `json:"status"`
	SignalCounts             map[string]int `json:"signal_counts"`
	MissingLocalSignalsCount int            `json:"missing_local_signals_count"`
	ComputedAt               time.Time      `json:"computed_at"`
}

// NewCoverageRecord flattens a scorecard for storage.
func NewCoverageRecord(sc *Scorecard) *CoverageRecord {
	rec := &CoverageRecord{
		ProjectID:                sc.ProjectID.String(),
		ApplicabilityStatus:      string(sc.ApplicabilityStatus),
		ApplicabilityReasons:     make([]string, 0, len(sc.ApplicabilityReasons)),
		Score:                    NotScoredSentinel,
		Status:                   NotScoredStatusSentinel,
		SignalCounts:             make(map[string]int, len(sc.SignalCounts)),
		MissingLocalSignalsCount: sc.MissingLocalSignalsCount,
		ComputedAt:               sc.ComputedAt,
	}
	for _, r := range sc.ApplicabilityReasons {
		rec.ApplicabilityReasons = append(rec.ApplicabilityReasons, string(r))
	}
	if sc.Score != nil {
		rec.Score = *sc.Score
	}
	if sc.Status != nil {
		rec.Status = string(*sc.Status)
	}
	for t, n := range sc.SignalCounts {
		rec.SignalCounts[string(t)] = n
	}
	return rec
}

// ToScorecard translates a stored record into the public shape.
// Sentinel and out-of-range scores come back as nil, and counts are restricted to
// known signal types with missing types filled as zero.
func (r *CoverageRecord) ToScorecard() *Scorecard {
	sc := &Scorecard{
		ProjectID:                id.ProjectID(r.ProjectID),
		ApplicabilityStatus:      ApplicabilityStatus(r.ApplicabilityStatus),
		ApplicabilityReasons:     make([]ApplicabilityReason, 0, len(r.ApplicabilityReasons)),
		SignalCounts:             make(SignalCounts, len(SignalTypes)),
		MissingLocalSignalsCount: r.MissingLocalSignalsCount,
		ComputedAt:               r.ComputedAt,
	}
	if !sc.ApplicabilityStatus.IsValid() {
		sc.ApplicabilityStatus = ApplicabilityUnknown
	}
	for _, reason := range r.ApplicabilityReasons {
		sc.ApplicabilityReasons = append(sc.ApplicabilityReasons, ApplicabilityReason(reason))
	}
	for _, t := range SignalTypes {
		sc.SignalCounts[t] = r.SignalCounts[string(t)]
	}
	if r.Score >= 0 && r.Score <= 100 && r.Status != NotScoredStatusSentinel && r.Status != "" {
		score := r.Score
		status := CoverageStatus(r.Status)
		sc.Score = &score
		sc.Status = &status
	}
	return sc
}
