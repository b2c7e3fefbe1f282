package models

// GapType names a coverage gap.
type GapType string

const (
	GapMissingLocationContent     GapType = "missing_location_content"
	GapMissingLocalIntentCoverage GapType = "missing_local_intent_coverage"
	GapMissingLocalTrustSignal    GapType = "missing_local_trust_signal"
	GapUnclearServiceArea         GapType = "unclear_service_area"
)

// Severity ranks a gap.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Gap is a detected absence of a signal type. Gaps are recomputed from a
// Scorecard whenever needed and never stored.
type Gap struct {
	SignalType SignalType `json:"signal_type"`
	GapType    GapType    `json:"gap_type"`
	Severity   Severity   `json:"severity"`
}
