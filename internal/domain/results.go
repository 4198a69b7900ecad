package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CHCBand is the threshold category derived from raw domain counts.
type CHCBand string

const (
	BandVeryHigh CHCBand = "very_high"
	BandHigh     CHCBand = "high"
	BandModerate CHCBand = "moderate"
	BandLow      CHCBand = "low"
)

// DomainScore records the points one domain contributed to the CHC base score.
type DomainScore struct {
	Domain CareDomain `json:"domain"`
	Level  CareLevel  `json:"level"`
	Points int        `json:"points"`
}

// AppliedBonus records one bonus modifier that fired during CHC scoring.
type AppliedBonus struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Detail string `json:"detail"`
}

// CHCEligibilityResult is the outcome of Continuing Healthcare scoring.
// Probability is capped below 100: the engine never claims certainty.
type CHCEligibilityResult struct {
	ProbabilityPercent int            `json:"probability_percent"`
	IsLikelyEligible   bool           `json:"is_likely_eligible"`
	Band               CHCBand        `json:"threshold_category"`
	Reasoning          string         `json:"reasoning"`
	DomainScores       []DomainScore  `json:"domain_scores"`
	AppliedBonuses     []AppliedBonus `json:"applied_bonuses"`
}

// FundingCategory is the local-authority means test outcome.
type FundingCategory string

const (
	FundingFullSupport    FundingCategory = "full_support"
	FundingPartialSupport FundingCategory = "partial_support"
	FundingSelfFunding    FundingCategory = "self_funding"
)

// PropertyTreatment records how the property-disposition rules handled a
// property during capital assessment.
type PropertyTreatment string

const (
	PropertyNotOwned          PropertyTreatment = "not_owned"
	PropertyDisregarded       PropertyTreatment = "disregarded"
	PropertyIncludedInCapital PropertyTreatment = "included"
)

// LASupportResult is the outcome of the local-authority means test.
type LASupportResult struct {
	FundingCategory    FundingCategory   `json:"funding_category"`
	CapitalAssessed    decimal.Decimal   `json:"capital_assessed"`
	TariffIncome       decimal.Decimal   `json:"tariff_income"`
	WeeklyContribution decimal.Decimal   `json:"weekly_contribution"`
	PropertyTreatment  PropertyTreatment `json:"property_treatment"`
	Reasoning          string            `json:"reasoning"`
}

// DPARejectionReason names the rule that stopped the deferred payment chain.
type DPARejectionReason string

const (
	DPAReasonNone                DPARejectionReason = ""
	DPAReasonNoProperty          DPARejectionReason = "no_property"
	DPAReasonNotMainResidence    DPARejectionReason = "not_main_residence"
	DPAReasonValueBelowThreshold DPARejectionReason = "value_below_threshold"
	DPAReasonSelfFundingCapital  DPARejectionReason = "self_funding_without_property"
	DPAReasonQualifyingRelative  DPARejectionReason = "qualifying_relative_resident"
	DPAReasonNonPermanentCare    DPARejectionReason = "non_permanent_care"
)

// DPACriterion records one rule of the deferred payment chain and whether it
// was satisfied.
type DPACriterion struct {
	Name string `json:"name"`
	Met  bool   `json:"met"`
}

// DPAEligibilityResult is the outcome of the deferred payment rule chain.
// Every rejection carries a distinct named reason.
type DPAEligibilityResult struct {
	IsEligible          bool               `json:"is_eligible"`
	RejectionReason     DPARejectionReason `json:"rejection_reason,omitempty"`
	PropertyDisregarded bool               `json:"property_disregarded"`
	CriteriaMet         []DPACriterion     `json:"criteria_met"`
	MaximumLoan         decimal.Decimal    `json:"maximum_loan"`
	EquityBuffer        decimal.Decimal    `json:"equity_buffer"`
	Reasoning           string             `json:"reasoning"`
}

// SavingsResult projects the savings implied by the funding outcomes against
// a weekly care-cost benchmark.
type SavingsResult struct {
	WeeklyCareCost decimal.Decimal `json:"weekly_care_cost"`
	UsedFallback   bool            `json:"used_fallback_benchmark"`
	Weekly         decimal.Decimal `json:"weekly"`
	Annual         decimal.Decimal `json:"annual"`
	FiveYear       decimal.Decimal `json:"five_year"`
	Lifetime       decimal.Decimal `json:"lifetime"`
	Reasoning      string          `json:"reasoning"`
}

// FundingEligibilityResult aggregates the four calculator outcomes for one
// request. It is the only externally visible artifact of an invocation.
type FundingEligibilityResult struct {
	CHC           CHCEligibilityResult `json:"chc"`
	LASupport     LASupportResult      `json:"la_support"`
	DPA           DPAEligibilityResult `json:"dpa"`
	Savings       SavingsResult        `json:"savings"`
	ThresholdYear string               `json:"threshold_year"`
	CalculatedAt  time.Time            `json:"calculated_at"`
}
