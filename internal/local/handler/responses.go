package handler

import (
	"time"

	"beacon/internal/local/models"
)

// ScorecardResponse is the HTTP shape of a coverage snapshot. Score and status
// are omitted, not zero, for projects that are not scored.
type ScorecardResponse struct {
	ProjectID                string         `json:"project_id"`
	ApplicabilityStatus      string         `json:"applicability_status"`
	ApplicabilityReasons     []string       `json:"applicability_reasons"`
	Score                    *int           `json:"score,omitempty"`
	Status                   *string        `json:"status,omitempty"`
	SignalCounts             map[string]int `json:"signal_counts"`
	MissingLocalSignalsCount int            `json:"missing_local_signals_count"`
	ComputedAt               time.Time      `json:"computed_at"`
}

func FromScorecard(sc *models.Scorecard) *ScorecardResponse {
	resp := &ScorecardResponse{
		ProjectID:                sc.ProjectID.String(),
		ApplicabilityStatus:      string(sc.ApplicabilityStatus),
		ApplicabilityReasons:     reasonStrings(sc.ApplicabilityReasons),
		Score:                    sc.Score,
		SignalCounts:             make(map[string]int, len(sc.SignalCounts)),
		MissingLocalSignalsCount: sc.MissingLocalSignalsCount,
		ComputedAt:               sc.ComputedAt,
	}
	if sc.Status != nil {
		status := string(*sc.Status)
		resp.Status = &status
	}
	for t, n := range sc.SignalCounts {
		resp.SignalCounts[string(t)] = n
	}
	return resp
}

// GapsResponse lists gaps alongside the applicability they were derived under.
type GapsResponse struct {
	ProjectID           string       `json:"project_id"`
	ApplicabilityStatus string       `json:"applicability_status"`
	Gaps                []models.Gap `json:"gaps"`
}

type IssuesResponse struct {
	ProjectID string         `json:"project_id"`
	ReadOnly  bool           `json:"read_only"`
	Issues    []models.Issue `json:"issues"`
}

func reasonStrings(reasons []models.ApplicabilityReason) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, string(r))
	}
	return out
}
