package engine

import "beacon/internal/local/models"

// ClassifyApplicability decides whether local scoring applies from the declared
// config. A nil config is a valid input meaning nothing has been declared.
// Rule priority (first match wins):
//  1. No config: unknown
//  2. Declared physical location: applicable
//  3. Manual override enabled: applicable
//  4. Otherwise: not applicable (global-only)
func ClassifyApplicability(cfg *models.LocalConfig) models.Applicability {
	// Rule 1: nothing declared
	if cfg == nil {
		return models.Applicability{
			Status:  models.ApplicabilityUnknown,
			Reasons: []models.ApplicabilityReason{models.ReasonNoLocalIndicators},
		}
	}

	// Rule 2: physical presence; the override is recorded alongside when set
	if cfg.HasPhysicalLocation {
		reasons := []models.ApplicabilityReason{models.ReasonMerchantDeclaredPhysicalPresence}
		if cfg.Enabled {
			reasons = append(reasons, models.ReasonManualOverrideEnabled)
		}
		return models.Applicability{Status: models.ApplicabilityApplicable, Reasons: reasons}
	}

	// Rule 3: manual override
	if cfg.Enabled {
		return models.Applicability{
			Status:  models.ApplicabilityApplicable,
			Reasons: []models.ApplicabilityReason{models.ReasonManualOverrideEnabled},
		}
	}

	return models.Applicability{
		Status:  models.ApplicabilityNotApplicable,
		Reasons: []models.ApplicabilityReason{models.ReasonGlobalOnlyConfig},
	}
}

// IsLocalApplicableFromReasons reports whether any reason implies applicability.
// An empty list is not applicable. Also used to sanity-check cached snapshots.
func IsLocalApplicableFromReasons(reasons []models.ApplicabilityReason) bool {
	for _, r := range reasons {
		if r.ImpliesApplicable() {
			return true
		}
	}
	return false
}
