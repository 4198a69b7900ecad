package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carefund/carecalc/internal/calculation"
	"github.com/carefund/carecalc/internal/domain"
	"github.com/carefund/carecalc/pkg/dateutil"
)

func TestRegistryThresholdSelection(t *testing.T) {
	registry := DefaultRegistry()

	tests := []struct {
		name     string
		at       string
		wantYear string
		wantErr  bool
	}{
		{name: "mid 2024/25", at: "2024-10-15", wantYear: "2024/25"},
		{name: "first day of 2025/26", at: "2025-04-01", wantYear: "2025/26"},
		{name: "last day of 2024/25", at: "2025-03-31", wantYear: "2024/25"},
		{name: "last day of 2025/26", at: "2026-03-31", wantYear: "2025/26"},
		{name: "before any record", at: "2020-01-01", wantErr: true},
		{name: "after every record", at: "2030-01-01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, err := dateutil.ParseDate(tt.at)
			require.NoError(t, err)
			th, err := registry.ThresholdsFor(at)
			if tt.wantErr {
				var terr *calculation.ThresholdUnavailableError
				require.ErrorAs(t, err, &terr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, th.Year)
		})
	}
}

func TestRegistrySwapThresholds(t *testing.T) {
	registry := DefaultRegistry()

	next := DefaultThresholds()[1]
	next.Year = "2026/27"
	next.EffectiveFrom = dateutil.Date(2026, 4, 1)
	next.EffectiveTo = dateutil.Date(2027, 3, 31)
	next.PersonalExpensesAllowance = decimal.NewFromFloat(31.20)

	require.NoError(t, registry.SwapThresholds(append(DefaultThresholds(), next)))

	th, err := registry.ThresholdsFor(dateutil.Date(2026, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, "2026/27", th.Year)
	assert.True(t, th.PersonalExpensesAllowance.Equal(decimal.NewFromFloat(31.20)))

	// Earlier records are untouched by the swap.
	th, err = registry.ThresholdsFor(dateutil.Date(2025, 6, 1))
	require.NoError(t, err)
	assert.Equal(t, "2025/26", th.Year)
}

func TestRegistryRejectsOverlappingRecords(t *testing.T) {
	records := DefaultThresholds()
	overlapping := records[1]
	overlapping.EffectiveFrom = dateutil.Date(2025, 10, 1)
	overlapping.EffectiveTo = dateutil.Date(2026, 3, 30)

	_, err := NewRegistry(append(records, overlapping), DefaultCatalog())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlap")
}

func TestRegistryValidation(t *testing.T) {
	catalog := DefaultCatalog()

	t.Run("empty threshold set", func(t *testing.T) {
		_, err := NewRegistry(nil, catalog)
		require.Error(t, err)
	})

	t.Run("nil catalog", func(t *testing.T) {
		_, err := NewRegistry(DefaultThresholds(), nil)
		require.Error(t, err)
	})

	t.Run("year label must match the charging year", func(t *testing.T) {
		bad := DefaultThresholds()[1]
		bad.Year = "2026/27"
		_, err := NewRegistry([]domain.Thresholds{bad}, catalog)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match charging year")
	})

	t.Run("inverted capital limits", func(t *testing.T) {
		bad := DefaultThresholds()[0]
		bad.LowerCapitalLimit = decimal.NewFromInt(25000)
		_, err := NewRegistry([]domain.Thresholds{bad}, catalog)
		require.Error(t, err)
	})

	t.Run("loan-to-value of one or more", func(t *testing.T) {
		bad := DefaultThresholds()[0]
		bad.DPALoanToValue = decimal.NewFromInt(1)
		_, err := NewRegistry([]domain.Thresholds{bad}, catalog)
		require.Error(t, err)
	})
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	rule, ok := catalog.Lookup(domain.DisregardIncome, "dla_mobility")
	require.True(t, ok)
	assert.Equal(t, domain.TreatmentFull, rule.Treatment)

	rule, ok = catalog.Lookup(domain.DisregardIncome, "state_pension")
	require.True(t, ok)
	assert.Equal(t, domain.TreatmentNone, rule.Treatment)

	rule, ok = catalog.Lookup(domain.DisregardAsset, "property_sale_proceeds")
	require.True(t, ok)
	assert.Equal(t, domain.TreatmentTemporary, rule.Treatment)
	assert.Equal(t, 26, rule.DurationWeeks)

	rule, ok = catalog.Lookup(domain.DisregardIncome, "war_disablement_pension")
	require.True(t, ok)
	assert.True(t, rule.Discretionary)

	_, ok = catalog.Lookup(domain.DisregardAsset, "dla_mobility")
	assert.False(t, ok, "income categories must not leak into the asset side")
}

func TestLoadRegistryFromFiles(t *testing.T) {
	registry, err := LoadRegistry("../../data/thresholds.yaml", "../../data/disregards.yaml")
	require.NoError(t, err)

	th, err := registry.ThresholdsFor(dateutil.Date(2025, 9, 1))
	require.NoError(t, err)
	assert.Equal(t, "2025/26", th.Year)
	assert.True(t, th.LowerCapitalLimit.Equal(decimal.NewFromInt(14250)))
	assert.True(t, th.UpperCapitalLimit.Equal(decimal.NewFromInt(23250)))
	assert.True(t, th.PersonalExpensesAllowance.Equal(decimal.NewFromFloat(30.15)))
	assert.Equal(t, 12, th.PropertyDisregardWeeks)

	cost, ok := th.BenchmarkFor(domain.CareTypeNursingDementia)
	require.True(t, ok)
	assert.True(t, cost.Equal(decimal.NewFromInt(1450)))

	rule, ok := registry.Catalog().Lookup(domain.DisregardIncome, "attendance_allowance")
	require.True(t, ok)
	assert.Equal(t, domain.TreatmentPartial, rule.Treatment)
}
