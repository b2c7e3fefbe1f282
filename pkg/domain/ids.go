// Package domain holds identifier primitives shared across modules.
//
// Project and product identifiers are owned by the catalog that calls into this
// module, so they are opaque non-empty strings here. Signal identifiers are minted
// locally and are UUIDs.
package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	dErrors "beacon/pkg/domain-errors"
)

// ProjectID identifies a merchant project.
type ProjectID string

// ProductID identifies a product inside a project.
type ProductID string

// SignalID identifies a stored local signal.
type SignalID uuid.UUID

// ParseProjectID trims and validates a project identifier.
func ParseProjectID(s string) (ProjectID, error) {
	v, err := parseOpaque(s, "project_id")
	if err != nil {
		return "", err
	}
	return ProjectID(v), nil
}

// ParseProductID trims and validates a product identifier.
func ParseProductID(s string) (ProductID, error) {
	v, err := parseOpaque(s, "product_id")
	if err != nil {
		return "", err
	}
	return ProductID(v), nil
}

func parseOpaque(s, field string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, field+" is required")
	}
	if !utf8.ValidString(v) {
		return "", dErrors.New(dErrors.CodeInvalidInput, field+" must be valid UTF-8")
	}
	return v, nil
}

func (id ProjectID) String() string { return string(id) }
func (id ProjectID) IsNil() bool    { return id == "" }

func (id ProductID) String() string { return string(id) }
func (id ProductID) IsNil() bool    { return id == "" }

// NewSignalID mints a random signal identifier.
func NewSignalID() SignalID {
	return SignalID(uuid.New())
}

// ParseSignalID parses a non-nil UUID.
func ParseSignalID(s string) (SignalID, error) {
	if s == "" {
		return SignalID{}, dErrors.New(dErrors.CodeInvalidInput, "signal_id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return SignalID{}, dErrors.New(dErrors.CodeInvalidInput, "invalid signal_id")
	}
	if u == uuid.Nil {
		return SignalID{}, dErrors.New(dErrors.CodeInvalidInput, "signal_id cannot be nil")
	}
	return SignalID(u), nil
}

func (id SignalID) String() string { return uuid.UUID(id).String() }
func (id SignalID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id SignalID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *SignalID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return err
	}
	*id = SignalID(u)
	return nil
}
