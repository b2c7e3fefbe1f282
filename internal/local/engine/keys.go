package engine

import (
	"strings"

	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

const fixWorkKeyPrefix = "local-fix"

// ComputeLocalFixWorkKey builds the dedup key for fix work:
//
//	local-fix:{projectId}:{productId|project}:{gapType}:{signalType}:{focusKey}:{draftType}
//
// The key is plain string formatting over its inputs so that retries and
// re-syncs of the same gap collapse onto one piece of work.
func ComputeLocalFixWorkKey(
	projectID id.ProjectID,
	productID *id.ProductID,
	gapType models.GapType,
	signalType models.SignalType,
	focusKey string,
	draftType string,
) string {
	scope := models.ProjectScopeSegment
	if productID != nil {
		scope = productID.String()
	}
	return strings.Join([]string{
		fixWorkKeyPrefix,
		projectID.String(),
		scope,
		string(gapType),
		string(signalType),
		focusKey,
		draftType,
	}, ":")
}
