package engine

import (
	"math"
	"time"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

const (
	// maxBonusSignals caps how many extra signals of one type earn a bonus.
	maxBonusSignals = 2
	// bonusFraction is the share of a type's weight each extra signal earns.
	bonusFraction = 0.25
)

// Coverage is the scorer output.
type Coverage struct {
	Score                    *int
	Status                   *models.CoverageStatus
	SignalCounts             models.SignalCounts
	MissingLocalSignalsCount int
}

// CountSignals tallies signals per known type. Every known type is present in the
// result; signals with unknown types are skipped.
func CountSignals(signals []models.LocalSignal) models.SignalCounts {
	counts := make(models.SignalCounts, len(models.SignalTypes))
	for _, t := range models.SignalTypes {
		counts[t] = 0
	}
	for _, s := range signals {
		if !s.SignalType.IsValid() {
			continue
		}
		counts[s.SignalType]++
	}
	return counts
}

// ScoreCoverage computes the weighted score for a project's signals.
// Non-applicable projects get counts only: no score, no status, nothing missing.
func ScoreCoverage(app models.Applicability, signals []models.LocalSignal) Coverage {
	counts := CountSignals(signals)
	if !app.IsApplicable() {
		return Coverage{SignalCounts: counts}
	}

	score := WeightedScore(counts)
	status := models.CoverageStatusFromScore(score)
	return Coverage{
		Score:                    &score,
		Status:                   &status,
		SignalCounts:             counts,
		MissingLocalSignalsCount: MissingCriticalSignals(counts),
	}
}

// WeightedScore returns round(100 * earned / total). Additional signals of a type
// add a diminishing bonus of a quarter of its weight each, for at most two extras.
// Rounding happens once, on the final percentage.
func WeightedScore(counts models.SignalCounts) int {
	total := float64(models.TotalWeight())
	if total <= 0 {
		return 0
	}

	earned := 0.0
	for _, t := range models.SignalTypes {
		earned += earnedWeight(t.Weight(), counts[t])
	}

	score := int(math.Round(100 * earned / total))
	return clampScore(score)
}

func earnedWeight(weight, count int) float64 {
	if count < 1 {
		return 0
	}
	extras := min(count-1, maxBonusSignals)
	return float64(weight) + float64(extras)*bonusFraction*float64(weight)
}

func clampScore(score int) int {
	return max(0, min(score, 100))
}

// MissingCriticalSignals counts the high-weight types with no signals. Lower
// weighted types still produce gaps but are not counted here.
func MissingCriticalSignals(counts models.SignalCounts) int {
	missing := 0
	for _, t := range models.SignalTypes {
		if t.Weight() >= models.CriticalWeightThreshold && counts[t] == 0 {
			missing++
		}
	}
	return missing
}

// BuildScorecard assembles a snapshot from classifier and scorer output.
func BuildScorecard(projectID id.ProjectID, app models.Applicability, signals []models.LocalSignal, computedAt time.Time) *models.Scorecard {
	cov := ScoreCoverage(app, signals)
	reasons := make([]models.ApplicabilityReason, len(app.Reasons))
	copy(reasons, app.Reasons)
	return &models.Scorecard{
		ProjectID:                projectID,
		ApplicabilityStatus:      app.Status,
		ApplicabilityReasons:     reasons,
		Score:                    cov.Score,
		Status:                   cov.Status,
		SignalCounts:             cov.SignalCounts,
		MissingLocalSignalsCount: cov.MissingLocalSignalsCount,
		ComputedAt:               computedAt,
	}
}
