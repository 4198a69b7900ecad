package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carefund/carecalc/internal/domain"
	"github.com/carefund/carecalc/pkg/dateutil"
)

// testThresholds mirrors the 2025/26 England figures.
func testThresholds() domain.Thresholds {
	return domain.Thresholds{
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
		TariffRate:             decimal.NewFromInt(1),
		TariffBand:             decimal.NewFromInt(250),
		PropertyDisregardWeeks: 12,
		DPALoanToValue:         decimal.NewFromFloat(0.90),
		NationalAverageCareCosts: map[domain.CareType]decimal.Decimal{
			domain.CareTypeResidential: decimal.NewFromInt(1100),
			domain.CareTypeNursing:     decimal.NewFromInt(1340),
		},
	}
}

func testCatalog(t *testing.T) *domain.DisregardCatalog {
	t.Helper()
	catalog, err := domain.NewDisregardCatalog([]domain.DisregardRule{
		{Category: "personal_possessions", Kind: domain.DisregardAsset, Treatment: domain.TreatmentFull},
		{Category: "property_sale_proceeds", Kind: domain.DisregardAsset, Treatment: domain.TreatmentTemporary, DurationWeeks: 26},
		{Category: "charitable_lump_sum", Kind: domain.DisregardAsset, Treatment: domain.TreatmentFull, Discretionary: true},
		{Category: "dla_mobility", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull},
		{Category: "attendance_allowance", Kind: domain.DisregardIncome, Treatment: domain.TreatmentPartial},
		{Category: "state_pension", Kind: domain.DisregardIncome, Treatment: domain.TreatmentNone},
		{Category: "war_disablement_pension", Kind: domain.DisregardIncome, Treatment: domain.TreatmentFull, Discretionary: true},
	})
	require.NoError(t, err)
	return catalog
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCapitalAssessment(t *testing.T) {
	ca := NewCapitalAssessment(testCatalog(t))
	th := testThresholds()

	tests := []struct {
		name         string
		capital      string
		disregards   map[string]decimal.Decimal
		wantAdjusted string
		wantTariff   string
		wantCategory domain.FundingCategory
	}{
		{
			name:         "disregards applied before categorisation",
			capital:      "50000",
			disregards:   map[string]decimal.Decimal{"personal_possessions": money("5000")},
			wantAdjusted: "45000",
			wantTariff:   "0",
			wantCategory: domain.FundingSelfFunding,
		},
		{
			name:         "capital exactly at the lower limit is full support",
			capital:      "14250",
			wantAdjusted: "14250",
			wantTariff:   "0",
			wantCategory: domain.FundingFullSupport,
		},
		{
			name:         "a penny over the lower limit is partial support",
			capital:      "14250.01",
			wantAdjusted: "14250.01",
			wantTariff:   "1",
			wantCategory: domain.FundingPartialSupport,
		},
		{
			name:         "capital exactly at the upper limit is partial support",
			capital:      "23250",
			wantAdjusted: "23250",
			wantTariff:   "36",
			wantCategory: domain.FundingPartialSupport,
		},
		{
			name:         "a penny over the upper limit is self-funding",
			capital:      "23250.01",
			wantAdjusted: "23250.01",
			wantTariff:   "0",
			wantCategory: domain.FundingSelfFunding,
		},
		{
			name:         "tariff rounds partial bands up",
			capital:      "14600",
			wantAdjusted: "14600",
			wantTariff:   "2", // £350 excess spans two £250 bands
			wantCategory: domain.FundingPartialSupport,
		},
		{
			name:         "disregards cannot drive capital negative",
			capital:      "3000",
			disregards:   map[string]decimal.Decimal{"personal_possessions": money("5000")},
			wantAdjusted: "0",
			wantTariff:   "0",
			wantCategory: domain.FundingFullSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.FinancialProfile{
				CapitalAssets: money(tt.capital),
				CareType:      domain.CareTypeResidential,
				IsPermanent:   true,
			}
			out, err := ca.Assess(profile, domain.DisregardSelection{Assets: tt.disregards}, th)
			require.NoError(t, err)
			assert.True(t, out.AdjustedCapital.Equal(money(tt.wantAdjusted)),
				"adjusted capital = %s, want %s", out.AdjustedCapital, tt.wantAdjusted)
			assert.True(t, out.TariffIncome.Equal(money(tt.wantTariff)),
				"tariff = %s, want %s", out.TariffIncome, tt.wantTariff)
			assert.Equal(t, tt.wantCategory, out.FundingCategory)
			assert.NotEmpty(t, out.Reasoning)
		})
	}
}

func TestCapitalAssessmentDiscretionaryDisregards(t *testing.T) {
	ca := NewCapitalAssessment(testCatalog(t))
	th := testThresholds()
	profile := domain.FinancialProfile{
		CapitalAssets: money("20000"),
		CareType:      domain.CareTypeResidential,
		IsPermanent:   true,
	}
	sel := domain.DisregardSelection{
		Assets: map[string]decimal.Decimal{"charitable_lump_sum": money("6000")},
	}

	out, err := ca.Assess(profile, sel, th)
	require.NoError(t, err)
	assert.True(t, out.AdjustedCapital.Equal(money("20000")), "discretionary disregard applied without override")
	require.Len(t, out.Disregards, 1)
	assert.False(t, out.Disregards[0].Applied)

	sel.ApplyDiscretionary = map[string]bool{"charitable_lump_sum": true}
	out, err = ca.Assess(profile, sel, th)
	require.NoError(t, err)
	assert.True(t, out.AdjustedCapital.Equal(money("14000")))
	assert.Equal(t, domain.FundingFullSupport, out.FundingCategory)
}

func TestCapitalAssessmentTemporaryDisregard(t *testing.T) {
	ca := NewCapitalAssessment(testCatalog(t))
	out, err := ca.Assess(
		domain.FinancialProfile{
			CapitalAssets: money("40000"),
			CareType:      domain.CareTypeResidential,
			IsPermanent:   true,
		},
		domain.DisregardSelection{
			Assets: map[string]decimal.Decimal{"property_sale_proceeds": money("30000")},
		},
		testThresholds(),
	)
	require.NoError(t, err)
	assert.True(t, out.AdjustedCapital.Equal(money("10000")))
	require.Len(t, out.Disregards, 1)
	assert.True(t, out.Disregards[0].Applied)
	assert.Contains(t, out.Disregards[0].Note, "26 weeks")
}

func TestPropertyDisposition(t *testing.T) {
	ca := NewCapitalAssessment(testCatalog(t))
	th := testThresholds()
	weeks := func(n int) *int { return &n }

	tests := []struct {
		name          string
		property      *domain.PropertyDetails
		isPermanent   bool
		weeksAdmitted *int
		wantTreatment domain.PropertyTreatment
		wantCategory  domain.FundingCategory
	}{
		{
			name:          "no property",
			isPermanent:   true,
			wantTreatment: domain.PropertyNotOwned,
			wantCategory:  domain.FundingFullSupport,
		},
		{
			name: "qualifying relative disregards the property",
			property: &domain.PropertyDetails{
				Value: money("250000"), IsMainResidence: true, HasQualifyingRelative: true,
			},
			isPermanent:   true,
			wantTreatment: domain.PropertyDisregarded,
			wantCategory:  domain.FundingFullSupport,
		},
		{
			name: "temporary placement disregards the property",
			property: &domain.PropertyDetails{
				Value: money("250000"), IsMainResidence: true,
			},
			isPermanent:   false,
			wantTreatment: domain.PropertyDisregarded,
			wantCategory:  domain.FundingFullSupport,
		},
		{
			name: "main residence within the twelve-week window",
			property: &domain.PropertyDetails{
				Value: money("250000"), IsMainResidence: true,
			},
			isPermanent:   true,
			weeksAdmitted: weeks(8),
			wantTreatment: domain.PropertyDisregarded,
			wantCategory:  domain.FundingFullSupport,
		},
		{
			name: "main residence beyond the window counts as capital",
			property: &domain.PropertyDetails{
				Value: money("250000"), IsMainResidence: true,
			},
			isPermanent:   true,
			weeksAdmitted: weeks(20),
			wantTreatment: domain.PropertyIncludedInCapital,
			wantCategory:  domain.FundingSelfFunding,
		},
		{
			name: "established placement with no admission weeks counts as capital",
			property: &domain.PropertyDetails{
				Value: money("250000"), IsMainResidence: true,
			},
			isPermanent:   true,
			wantTreatment: domain.PropertyIncludedInCapital,
			wantCategory:  domain.FundingSelfFunding,
		},
		{
			name: "second home always counts as capital",
			property: &domain.PropertyDetails{
				Value: money("250000"), IsMainResidence: false,
			},
			isPermanent:   true,
			wantTreatment: domain.PropertyIncludedInCapital,
			wantCategory:  domain.FundingSelfFunding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.FinancialProfile{
				CapitalAssets:       money("10000"),
				Property:            tt.property,
				CareType:            domain.CareTypeResidential,
				IsPermanent:         tt.isPermanent,
				WeeksSinceAdmission: tt.weeksAdmitted,
			}
			out, err := ca.Assess(profile, domain.DisregardSelection{}, th)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTreatment, out.PropertyTreatment)
			assert.Equal(t, tt.wantCategory, out.FundingCategory)
		})
	}
}

func TestCapitalAssessmentValidation(t *testing.T) {
	ca := NewCapitalAssessment(testCatalog(t))
	th := testThresholds()

	t.Run("negative capital", func(t *testing.T) {
		_, err := ca.Assess(domain.FinancialProfile{CapitalAssets: money("-1")}, domain.DisregardSelection{}, th)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "financial.capital_assets", verr.Field)
	})

	t.Run("unknown disregard category", func(t *testing.T) {
		_, err := ca.Assess(
			domain.FinancialProfile{CapitalAssets: money("10000")},
			domain.DisregardSelection{Assets: map[string]decimal.Decimal{"imaginary": money("100")}},
			th,
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown asset disregard")
	})

	t.Run("negative disregard amount", func(t *testing.T) {
		_, err := ca.Assess(
			domain.FinancialProfile{CapitalAssets: money("10000")},
			domain.DisregardSelection{Assets: map[string]decimal.Decimal{"personal_possessions": money("-50")}},
			th,
		)
		require.Error(t, err)
	})
}

func TestFormatGBP(t *testing.T) {
	assert.Equal(t, "£1,234.50", formatGBP(money("1234.5")))
	assert.Equal(t, "£23,250.00", formatGBP(money("23250")))
	assert.Equal(t, "£285,000.00", formatGBP(money("285000")))
	assert.Equal(t, "£0.00", formatGBP(decimal.Zero))
	assert.Equal(t, "-£950.25", formatGBP(money("-950.25")))
}
