package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
)

// DPAEligibilityChecker evaluates the fixed ordered rule chain for deferred
// payment agreements. Each rule either rejects with a specific named reason
// or the chain proceeds; the first failing rule decides the rejection.
type DPAEligibilityChecker struct{}

// NewDPAEligibilityChecker creates a new checker.
func NewDPAEligibilityChecker() *DPAEligibilityChecker {
	return &DPAEligibilityChecker{}
}

type dpaRule struct {
	name   string
	reason domain.DPARejectionReason
	met    bool
	detail string
}

// Check runs the rule chain against the property and capital facts.
func (c *DPAEligibilityChecker) Check(profile domain.FinancialProfile, th domain.Thresholds) *domain.DPAEligibilityResult {
	p := profile.Property

	rules := []dpaRule{
		{
			name:   "owns_property",
			reason: domain.DPAReasonNoProperty,
			met:    p != nil,
			detail: "a deferred payment agreement is secured against a property",
		},
		{
			name:   "property_is_main_residence",
			reason: domain.DPAReasonNotMainResidence,
			met:    p != nil && p.IsMainResidence,
			detail: "only a main residence can secure a deferral",
		},
		{
			name:   "property_value_above_upper_limit",
			reason: domain.DPAReasonValueBelowThreshold,
			met:    p != nil && p.Value.GreaterThan(th.UpperCapitalLimit),
			detail: fmt.Sprintf("property value must exceed the upper capital limit (%s) for deferral to be needed", formatGBP(th.UpperCapitalLimit)),
		},
		{
			name:   "capital_excluding_property_within_limit",
			reason: domain.DPAReasonSelfFundingCapital,
			met:    profile.CapitalAssets.LessThanOrEqual(th.UpperCapitalLimit),
			detail: "capital excluding the property already exceeds the upper limit: self-funding regardless of the property",
		},
		{
			name:   "no_qualifying_relative_resident",
			reason: domain.DPAReasonQualifyingRelative,
			met:    p != nil && !p.HasQualifyingRelative,
			detail: "a resident qualifying relative means the property is already disregarded, so no deferral is needed",
		},
		{
			name:   "permanent_non_respite_care",
			reason: domain.DPAReasonNonPermanentCare,
			met:    profile.IsPermanent && profile.CareType != domain.CareTypeRespite,
			detail: "deferred payments only apply to permanent, non-respite placements",
		},
	}

	criteria := make([]domain.DPACriterion, 0, len(rules))
	var firstFailed *dpaRule
	for i := range rules {
		criteria = append(criteria, domain.DPACriterion{Name: rules[i].name, Met: rules[i].met})
		if !rules[i].met && firstFailed == nil {
			firstFailed = &rules[i]
		}
	}

	if firstFailed != nil {
		result := &domain.DPAEligibilityResult{
			IsEligible:      false,
			RejectionReason: firstFailed.reason,
			CriteriaMet:     criteria,
			MaximumLoan:     decimal.Zero,
			EquityBuffer:    decimal.Zero,
			Reasoning:       fmt.Sprintf("Not eligible for a deferred payment agreement: %s.", firstFailed.detail),
		}
		// A resident qualifying relative is not an error state: the property
		// is already protected from the means test.
		if firstFailed.reason == domain.DPAReasonQualifyingRelative {
			result.PropertyDisregarded = true
		}
		return result
	}

	loan := p.Value.Mul(th.DPALoanToValue)
	buffer := p.Value.Sub(loan)
	return &domain.DPAEligibilityResult{
		IsEligible:   true,
		CriteriaMet:  criteria,
		MaximumLoan:  loan,
		EquityBuffer: buffer,
		Reasoning: strings.Join([]string{
			"Eligible for a deferred payment agreement.",
			fmt.Sprintf("Maximum deferrable amount %s against a property value of %s,", formatGBP(loan), formatGBP(p.Value)),
			fmt.Sprintf("retaining an equity buffer of %s.", formatGBP(buffer)),
		}, " "),
	}
}
