package config

import (
	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
	"github.com/carefund/carecalc/pkg/dateutil"
)

var decimalOne = decimal.NewFromInt(1)

// DefaultThresholds returns the built-in England threshold records, used when
// no thresholds file is supplied. Figures are per charging year; a new year
// is added here (or in a thresholds file) rather than edited in place.
func DefaultThresholds() []domain.Thresholds {
	return []domain.Thresholds{
		{
			Year:                      "2024/25",
			EffectiveFrom:             dateutil.Date(2024, 4, 1),
			EffectiveTo:               dateutil.Date(2025, 3, 31),
			LowerCapitalLimit:         decimal.NewFromInt(14250),
			UpperCapitalLimit:         decimal.NewFromInt(23250),
			PersonalExpensesAllowance: decimal.NewFromFloat(28.96),
			MinimumIncomeGuarantee: domain.MinimumIncomeGuarantee{
				Single: decimal.NewFromFloat(219.05),
				Couple: decimal.NewFromFloat(334.60),
			},
			TariffRate:             decimalOne,
			TariffBand:             decimal.NewFromInt(250),
			PropertyDisregardWeeks: 12,
			DPALoanToValue:         decimal.NewFromFloat(0.90),
			NationalAverageCareCosts: map[domain.CareType]decimal.Decimal{
				domain.CareTypeResidential:         decimal.NewFromInt(1050),
				domain.CareTypeNursing:             decimal.NewFromInt(1280),
				domain.CareTypeResidentialDementia: decimal.NewFromInt(1150),
				domain.CareTypeNursingDementia:     decimal.NewFromInt(1380),
				domain.CareTypeRespite:             decimal.NewFromInt(1100),
			},
		},
		{
			Year:                      "2025/26",
			EffectiveFrom:             dateutil.Date(2025, 4, 1),
			EffectiveTo:               dateutil.Date(2026, 3, 31),
			LowerCapitalLimit:         decimal.NewFromInt(14250),
			UpperCapitalLimit:         decimal.NewFromInt(23250),
			PersonalExpensesAllowance: decimal.NewFromFloat(30.15),
			MinimumIncomeGuarantee: domain.MinimumIncomeGuarantee{
				Single: decimal.NewFromFloat(228.70),
				Couple: decimal.NewFromFloat(349.45),
			},
			TariffRate:             decimalOne,
			TariffBand:             decimal.NewFromInt(250),
			PropertyDisregardWeeks: 12,
			DPALoanToValue:         decimal.NewFromFloat(0.90),
			NationalAverageCareCosts: map[domain.CareType]decimal.Decimal{
				domain.CareTypeResidential:         decimal.NewFromInt(1100),
				domain.CareTypeNursing:             decimal.NewFromInt(1340),
				domain.CareTypeResidentialDementia: decimal.NewFromInt(1200),
				domain.CareTypeNursingDementia:     decimal.NewFromInt(1450),
				domain.CareTypeRespite:             decimal.NewFromInt(1150),
			},
		},
	}
}

// DefaultDisregardRules returns the built-in disregard catalog entries.
// Treatment follows the charging regulations: mandatory full disregards apply
// automatically, discretionary ones only on explicit override, and partial
// categories stay assessable until disability-related expenditure is
// supplied.
func DefaultDisregardRules() []domain.DisregardRule {
	return []domain.DisregardRule{
		// Asset side.
		{Category: "personal_possessions", Kind: domain.DisregardAsset, Treatment: domain.TreatmentFull,
			Description: "Personal possessions not purchased to avoid charges"},
		{Category: "personal_injury_trust", Kind: domain.DisregardAsset, Treatment: domain.TreatmentFull,
			Description: "Capital held in a personal injury trust"},
		{Category: "life_insurance_surrender_value", Kind: domain.DisregardAsset, Treatment: domain.TreatmentFull,
			Description: "Surrender value of life insurance policies"},
		{Category: "property_sale_proceeds", Kind: domain.DisregardAsset, Treatment: domain.TreatmentTemporary, DurationWeeks: 26,
			Description: "Proceeds of sale intended for a replacement home"},
		{Category: "business_assets", Kind: domain.DisregardAsset, Treatment: domain.TreatmentTemporary, DurationWeeks: 26,
			Description: "Business assets while reasonable steps are taken to sell"},
		{Category: "charitable_lump_sum", Kind: domain.DisregardAsset, Treatment: domain.TreatmentFull, Discretionary: true,
			Description: "Ex-gratia charitable lump sums, at local authority discretion"},

		// Income side.
		{Category: "earnings", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull,
			Description: "Earnings from current employment"},
		{Category: "dla_mobility", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull,
			Description: "Disability Living Allowance mobility component"},
		{Category: "pip_mobility", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull,
			Description: "Personal Independence Payment mobility component"},
		{Category: "winter_fuel_payment", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull,
			Description: "Winter fuel and cold weather payments"},
		{Category: "christmas_bonus", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull,
			Description: "DWP Christmas bonus"},
		{Category: "war_disablement_pension", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull, Discretionary: true,
			Description: "War disablement pension, at local authority discretion"},
		{Category: "attendance_allowance", Kind: domain.DisregardIncome, Treatment: domain.TreatmentPartial,
			Description: "Attendance Allowance, assessable unless disability-related expenditure applies"},
		{Category: "pip_daily_living", Kind: domain.DisregardIncome, Treatment: domain.TreatmentPartial,
			Description: "PIP daily living component, assessable unless disability-related expenditure applies"},
		{Category: "dla_care", Kind: domain.DisregardIncome, Treatment: domain.TreatmentPartial,
			Description: "DLA care component, assessable unless disability-related expenditure applies"},
		{Category: "savings_credit", Kind: domain.DisregardIncome, Treatment: domain.TreatmentPartial,
			Description: "Pension credit savings credit, partially disregarded"},
		{Category: "state_pension", Kind: domain.DisregardIncome, Treatment: domain.TreatmentNone,
			Description: "State pension is fully assessable"},
		{Category: "occupational_pension", Kind: domain.DisregardIncome, Treatment: domain.TreatmentNone,
			Description: "Occupational pensions are fully assessable"},
	}
}

// DefaultCatalog builds the built-in disregard catalog.
func DefaultCatalog() *domain.DisregardCatalog {
	catalog, err := domain.NewDisregardCatalog(DefaultDisregardRules())
	if err != nil {
		panic("built-in disregard catalog is invalid: " + err.Error())
	}
	return catalog
}

// DefaultRegistry builds a registry from the built-in records.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(DefaultThresholds(), DefaultCatalog())
	if err != nil {
		panic("built-in threshold records are invalid: " + err.Error())
	}
	return registry
}
