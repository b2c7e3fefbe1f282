package models

// ApplicabilityStatus says whether local scoring applies to a project.
type ApplicabilityStatus string

const (
	ApplicabilityApplicable    ApplicabilityStatus = "applicable"
	ApplicabilityNotApplicable ApplicabilityStatus = "not_applicable"
	ApplicabilityUnknown       ApplicabilityStatus = "unknown"
)

// IsValid checks if the status is one of the supported enum values.
func (s ApplicabilityStatus) IsValid() bool {
	switch s {
	case ApplicabilityApplicable, ApplicabilityNotApplicable, ApplicabilityUnknown:
		return true
	}
	return false
}

// ApplicabilityReason explains an applicability status.
type ApplicabilityReason string

const (
	ReasonMerchantDeclaredPhysicalPresence ApplicabilityReason = "merchant_declared_physical_presence"
	ReasonLocalIntentProductCategory       ApplicabilityReason = "local_intent_product_category"
	ReasonContentMentionsRegions           ApplicabilityReason = "content_mentions_regions"
	ReasonManualOverrideEnabled            ApplicabilityReason = "manual_override_enabled"

	ReasonNoLocalIndicators ApplicabilityReason = "no_local_indicators"
	ReasonGlobalOnlyConfig  ApplicabilityReason = "global_only_config"
)

// ImpliesApplicable reports whether the reason on its own makes a project applicable.
func (r ApplicabilityReason) ImpliesApplicable() bool {
	switch r {
	case ReasonMerchantDeclaredPhysicalPresence,
		ReasonLocalIntentProductCategory,
		ReasonContentMentionsRegions,
		ReasonManualOverrideEnabled:
		return true
	}
	return false
}

// Applicability is the classifier output.
type Applicability struct {
	Status  ApplicabilityStatus   `json:"status"`
	Reasons []ApplicabilityReason `json:"reasons"`
}

// IsApplicable reports whether local scoring applies.
func (a Applicability) IsApplicable() bool {
	return a.Status == ApplicabilityApplicable
}
