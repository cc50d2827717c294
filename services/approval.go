package services

// ApprovalTrigger names the specific policy clause that escalated a
// quotation, so the pending queue can show reviewers why it is there.
type ApprovalTrigger string

const (
	TriggerPackageAddOn     ApprovalTrigger = "package_add_on"
	TriggerCustomizedHeader ApprovalTrigger = "customized_header"
	TriggerCustomTerms      ApprovalTrigger = "custom_terms"
	TriggerDiscount         ApprovalTrigger = "discount_above_threshold"
)

// ApprovalInput carries everything the policy needs for one quotation.
type ApprovalInput struct {
	Headers                  []ExpandedHeader
	CustomTermsCount         int
	EffectiveDiscountPercent float64
	ApproverThresholdPercent float64
}

// ApprovalVerdict is the policy decision plus the triggers that fired.
type ApprovalVerdict struct {
	RequiresApproval bool              `json:"requiresApproval"`
	Triggers         []ApprovalTrigger `json:"triggers,omitempty"`
}

// RequiresApprovalForPackages reports whether any package header carries an
// add-on: a service outside the package's core hierarchy. Core services on
// their own never escalate a package.
func RequiresApprovalForPackages(headers []ExpandedHeader) bool {
	for _, header := range headers {
		if header.Kind != HeaderPackage {
			continue
		}
		for _, svc := range header.Services {
			if svc.AddOn {
				return true
			}
		}
	}
	return false
}

// RequiresApprovalForCustomizedHeaders reports whether any customized header
// resolved at least one service.
func RequiresApprovalForCustomizedHeaders(headers []ExpandedHeader) bool {
	for _, header := range headers {
		if header.Kind == HeaderCustomized && len(header.Services) > 0 {
			return true
		}
	}
	return false
}

// EffectiveDiscountPercent normalizes a quotation's discount for threshold
// comparison: the explicit percent when positive, otherwise derived from the
// discount amount against the pre-discount total, otherwise zero.
func EffectiveDiscountPercent(discountPercent, discountAmount, totalAmount float64) float64 {
	if discountPercent > 0 {
		return discountPercent
	}
	if totalAmount != 0 && discountAmount != 0 {
		return discountAmount / (totalAmount + discountAmount) * 100
	}
	return 0
}

// EvaluateApproval applies the four escalation triggers. Any single trigger
// is sufficient; all that fire are reported.
func EvaluateApproval(in ApprovalInput) ApprovalVerdict {
	var verdict ApprovalVerdict

	if RequiresApprovalForPackages(in.Headers) {
		verdict.Triggers = append(verdict.Triggers, TriggerPackageAddOn)
	}
	if RequiresApprovalForCustomizedHeaders(in.Headers) {
		verdict.Triggers = append(verdict.Triggers, TriggerCustomizedHeader)
	}
	if in.CustomTermsCount > 0 {
		verdict.Triggers = append(verdict.Triggers, TriggerCustomTerms)
	}
	if in.EffectiveDiscountPercent > in.ApproverThresholdPercent {
		verdict.Triggers = append(verdict.Triggers, TriggerDiscount)
	}

	verdict.RequiresApproval = len(verdict.Triggers) > 0
	return verdict
}
