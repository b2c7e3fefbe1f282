package models

import (
	"strings"
	"time"

	id "beacon/pkg/domain"
	dErrors "beacon/pkg/domain-errors"
)

// SignalType is a kind of local presence evidence.
type SignalType string

const (
	SignalLocationPresence     SignalType = "location_presence"
	SignalLocalIntentCoverage  SignalType = "local_intent_coverage"
	SignalLocalTrustSignals    SignalType = "local_trust_signals"
	SignalLocalSchemaReadiness SignalType = "local_schema_readiness"
)

// SignalTypes lists the known signal types in priority order.
// Every listing of signal types (scoring, gaps, counts) iterates this slice.
var SignalTypes = []SignalType{
	SignalLocationPresence,
	SignalLocalIntentCoverage,
	SignalLocalTrustSignals,
	SignalLocalSchemaReadiness,
}

var signalWeights = map[SignalType]int{
	SignalLocationPresence:     10,
	SignalLocalIntentCoverage:  9,
	SignalLocalTrustSignals:    7,
	SignalLocalSchemaReadiness: 6,
}

// CriticalWeightThreshold marks the signal types whose absence is critical and
// counts toward MissingLocalSignalsCount.
const CriticalWeightThreshold = 8

// Weight returns the static importance weight, or 0 for unknown types.
func (t SignalType) Weight() int {
	return signalWeights[t]
}

// IsValid reports whether t is one of the known signal types.
func (t SignalType) IsValid() bool {
	_, ok := signalWeights[t]
	return ok
}

func (t SignalType) String() string {
	return string(t)
}

// TotalWeight is the sum of all signal weights.
func TotalWeight() int {
	total := 0
	for _, t := range SignalTypes {
		total += t.Weight()
	}
	return total
}

// ParseSignalType validates a signal type coming in from callers.
func ParseSignalType(s string) (SignalType, error) {
	t := SignalType(strings.TrimSpace(s))
	if t == "" {
		return "", dErrors.New(dErrors.CodeValidation, "signal_type is required")
	}
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "unknown signal_type: "+string(t))
	}
	return t, nil
}

// LocalSignal is one piece of evidence that a project has local relevance.
// Signals are append-only: they are created and (externally) deleted, never updated.
type LocalSignal struct {
	ID          id.SignalID  `json:"id"`
	ProjectID   id.ProjectID `json:"project_id"`
	SignalType  SignalType   `json:"signal_type"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	URL         *string      `json:"url,omitempty"`
	Evidence    *string      `json:"evidence,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// AddSignalRequest carries the caller input for recording a signal.
type AddSignalRequest struct {
	ProjectID   id.ProjectID `json:"project_id"`
	SignalType  string       `json:"signal_type"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	URL         *string      `json:"url,omitempty"`
	Evidence    *string      `json:"evidence,omitempty"`
}

// Normalize trims free-text fields and drops blank optionals.
func (r *AddSignalRequest) Normalize() {
	if r == nil {
		return
	}
	r.ProjectID = id.ProjectID(strings.TrimSpace(string(r.ProjectID)))
	r.SignalType = strings.TrimSpace(r.SignalType)
	r.Label = strings.TrimSpace(r.Label)
	r.Description = strings.TrimSpace(r.Description)
	r.URL = trimOptional(r.URL)
	r.Evidence = trimOptional(r.Evidence)
}

// Validate checks required fields. Call Normalize first.
func (r *AddSignalRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.ProjectID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "project_id is required")
	}
	if _, err := ParseSignalType(r.SignalType); err != nil {
		return err
	}
	if r.Label == "" {
		return dErrors.New(dErrors.CodeValidation, "label is required")
	}
	return nil
}

// NewLocalSignal builds a signal from a validated request.
func NewLocalSignal(signalID id.SignalID, req *AddSignalRequest, now time.Time) (*LocalSignal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &LocalSignal{
		ID:          signalID,
		ProjectID:   req.ProjectID,
		SignalType:  SignalType(req.SignalType),
		Label:       req.Label,
		Description: req.Description,
		URL:         req.URL,
		Evidence:    req.Evidence,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
