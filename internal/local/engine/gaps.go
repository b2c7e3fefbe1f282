package engine

import "beacon/internal/local/models"

var gapTypeBySignal = map[models.SignalType]models.GapType{
	models.SignalLocationPresence:     models.GapMissingLocationContent,
	models.SignalLocalIntentCoverage:  models.GapMissingLocalIntentCoverage,
	models.SignalLocalTrustSignals:    models.GapMissingLocalTrustSignal,
	models.SignalLocalSchemaReadiness: models.GapUnclearServiceArea,
}

// GetLocalGapTypeForMissingSignal returns the gap raised when a signal type has no
// signals. ok is false for unknown signal types.
func GetLocalGapTypeForMissingSignal(t models.SignalType) (gapType models.GapType, ok bool) {
	gapType, ok = gapTypeBySignal[t]
	return gapType, ok
}

// GenerateGaps diffs a scorecard's counts against the weight table, in priority
// order. Non-applicable scorecards have no gaps.
func GenerateGaps(sc *models.Scorecard) []models.Gap {
	gaps := []models.Gap{}
	if !sc.IsApplicable() {
		return gaps
	}

	for _, t := range models.SignalTypes {
		if sc.SignalCounts[t] > 0 {
			continue
		}
		gapType, ok := GetLocalGapTypeForMissingSignal(t)
		if !ok {
			continue
		}
		gaps = append(gaps, models.Gap{
			SignalType: t,
			GapType:    gapType,
			Severity:   GapSeverity(t, gapType),
		})
	}
	return gaps
}

// GapSeverity ranks a gap. High-weight signal types are critical. Location content
// and service area gaps raised from any signal type other than location_presence
// are always warnings, whatever the weight says.
func GapSeverity(t models.SignalType, gapType models.GapType) models.Severity {
	severity := models.SeverityWarning
	if t.Weight() >= models.CriticalWeightThreshold {
		severity = models.SeverityCritical
	}

	if (gapType == models.GapMissingLocationContent || gapType == models.GapUnclearServiceArea) &&
		t != models.SignalLocationPresence {
		severity = models.SeverityWarning
	}
	return severity
}
