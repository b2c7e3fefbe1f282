package engine

import (
	"beacon/internal/local/models"
	id "beacon/pkg/domain"
)

type gapCopy struct {
	recommendedAction string
	whyItMatters      string
	defaultDraftType  string
}

var issueCopy = map[models.GapType]gapCopy{
	models.GapMissingLocationContent: {
		recommendedAction: "Publish a location page with the store address, opening hours and directions for each physical location.",
		whyItMatters:      "Shoppers and search engines look for a concrete place before they visit. Without location content the store is invisible to nearby searches.",
		defaultDraftType:  "location_page",
	},
	models.GapMissingLocalIntentCoverage: {
		recommendedAction: "Add content that targets the cities or neighborhoods you serve, such as a city section on key product pages.",
		whyItMatters:      "Local-intent queries name a place. Pages that never mention the places you serve rarely rank for them.",
		defaultDraftType:  "city_section",
	},
	models.GapMissingLocalTrustSignal: {
		recommendedAction: "Surface local trust signals such as reviews from local customers, community involvement or local certifications.",
		whyItMatters:      "Local trust signals help nearby shoppers choose you over a competitor down the street.",
		defaultDraftType:  "trust_block",
	},
	models.GapUnclearServiceArea: {
		recommendedAction: "Describe the service area explicitly and add LocalBusiness structured data with address and area served.",
		whyItMatters:      "Structured, explicit service areas let search engines match the business to the right local searches.",
		defaultDraftType:  "service_area_block",
	},
}

// DefaultFocusKey is used when a caller does not narrow an issue to a focus.
const DefaultFocusKey = "project"

// DefaultDraftType returns the content template suggested for a gap type.
func DefaultDraftType(gapType models.GapType) string {
	return issueCopy[gapType].defaultDraftType
}

// BuildIssues synthesizes one issue per gap. Issues inherit the scorecard's
// applicability so downstream consumers can explain why they were raised.
func BuildIssues(sc *models.Scorecard, gaps []models.Gap, target models.IssueTarget) []models.Issue {
	issues := make([]models.Issue, 0, len(gaps))
	if sc == nil {
		return issues
	}

	focusKey := target.FocusKey
	if focusKey == "" {
		focusKey = DefaultFocusKey
	}

	var productID *id.ProductID
	if target.ProductID != nil {
		p := *target.ProductID
		productID = &p
	}

	for _, gap := range gaps {
		c := issueCopy[gap.GapType]
		draftType := target.DraftType
		if draftType == "" {
			draftType = c.defaultDraftType
		}

		reasons := make([]models.ApplicabilityReason, len(sc.ApplicabilityReasons))
		copy(reasons, sc.ApplicabilityReasons)

		issues = append(issues, models.Issue{
			PillarID:                  models.PillarLocalDiscovery,
			ProjectID:                 sc.ProjectID,
			ProductID:                 productID,
			LocalSignalType:           gap.SignalType,
			LocalGapType:              gap.GapType,
			LocalApplicabilityStatus:  sc.ApplicabilityStatus,
			LocalApplicabilityReasons: reasons,
			Severity:                  gap.Severity,
			Actionability:             models.ActionabilityManual,
			RecommendedAction:         c.recommendedAction,
			WhyItMatters:              c.whyItMatters,
			FixWorkKey: ComputeLocalFixWorkKey(
				sc.ProjectID, productID, gap.GapType, gap.SignalType, focusKey, draftType,
			),
		})
	}
	return issues
}
