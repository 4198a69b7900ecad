package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Thresholds is the immutable set of annual financial constants for one
// charging year. Exactly one record is current at any calculation time;
// selection is by effective-date range and a loaded record is never edited.
type Thresholds struct {
	Year          string    `yaml:"year" json:"year"`
	EffectiveFrom time.Time `yaml:"effective_from" json:"effective_from"`
	EffectiveTo   time.Time `yaml:"effective_to" json:"effective_to"`

	LowerCapitalLimit         decimal.Decimal `yaml:"lower_capital_limit" json:"lower_capital_limit"`
	UpperCapitalLimit         decimal.Decimal `yaml:"upper_capital_limit" json:"upper_capital_limit"`
	PersonalExpensesAllowance decimal.Decimal `yaml:"personal_expenses_allowance" json:"personal_expenses_allowance"`
	MinimumIncomeGuarantee    MinimumIncomeGuarantee `yaml:"minimum_income_guarantee" json:"minimum_income_guarantee"`

	// TariffRate is the weekly income assumed per TariffBand (or part
	// thereof) of capital held between the lower and upper limits.
	TariffRate decimal.Decimal `yaml:"tariff_rate" json:"tariff_rate"`
	TariffBand decimal.Decimal `yaml:"tariff_band" json:"tariff_band"`

	// PropertyDisregardWeeks is the admission window during which a main
	// residence is disregarded from capital for a new permanent placement.
	PropertyDisregardWeeks int `yaml:"property_disregard_weeks" json:"property_disregard_weeks"`

	// DPALoanToValue is the fraction of property value a deferred payment
	// agreement may secure; the remainder is the equity buffer.
	DPALoanToValue decimal.Decimal `yaml:"dpa_loan_to_value" json:"dpa_loan_to_value"`

	// NationalAverageCareCosts is the fallback weekly benchmark per care
	// setting, used when a request supplies no benchmark of its own.
	NationalAverageCareCosts map[CareType]decimal.Decimal `yaml:"national_average_care_costs" json:"national_average_care_costs"`
}

// MinimumIncomeGuarantee holds the protected weekly income amounts.
type MinimumIncomeGuarantee struct {
	Single decimal.Decimal `yaml:"single" json:"single"`
	Couple decimal.Decimal `yaml:"couple" json:"couple"`
}

// Covers reports whether this record is effective on the given date.
func (t Thresholds) Covers(at time.Time) bool {
	return !at.Before(t.EffectiveFrom) && !at.After(t.EffectiveTo)
}

// MIGFor returns the applicable minimum income guarantee.
func (t Thresholds) MIGFor(hasPartner bool) decimal.Decimal {
	if hasPartner {
		return t.MinimumIncomeGuarantee.Couple
	}
	return t.MinimumIncomeGuarantee.Single
}

// BenchmarkFor returns the national-average weekly cost for a care setting.
func (t Thresholds) BenchmarkFor(ct CareType) (decimal.Decimal, bool) {
	cost, ok := t.NationalAverageCareCosts[ct]
	return cost, ok
}
