package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carefund/carecalc/internal/domain"
)

func chcResult(probability int) *domain.CHCEligibilityResult {
	return &domain.CHCEligibilityResult{ProbabilityPercent: probability}
}

func laResult(category domain.FundingCategory, contribution string) *domain.LASupportResult {
	return &domain.LASupportResult{FundingCategory: category, WeeklyContribution: money(contribution)}
}

func TestSavingsProjection(t *testing.T) {
	sp := NewSavingsProjector()

	tests := []struct {
		name       string
		chc        *domain.CHCEligibilityResult
		la         *domain.LASupportResult
		careCost   string
		wantWeekly string
	}{
		{
			name:       "means-tested route beats a modest CHC probability",
			chc:        chcResult(80),
			la:         laResult(domain.FundingFullSupport, "0"),
			careCost:   "1000",
			wantWeekly: "1000", // full support covers the lot; CHC route is 800
		},
		{
			name:       "CHC route carries a self-funder",
			chc:        chcResult(90),
			la:         laResult(domain.FundingSelfFunding, "0"),
			careCost:   "1000",
			wantWeekly: "900",
		},
		{
			name:       "probability below the floor projects nothing from CHC",
			chc:        chcResult(69),
			la:         laResult(domain.FundingSelfFunding, "0"),
			careCost:   "1000",
			wantWeekly: "0",
		},
		{
			name:       "probability at the floor counts",
			chc:        chcResult(70),
			la:         laResult(domain.FundingSelfFunding, "0"),
			careCost:   "1000",
			wantWeekly: "700",
		},
		{
			name:       "partial support nets off the contribution",
			chc:        chcResult(40),
			la:         laResult(domain.FundingPartialSupport, "150.25"),
			careCost:   "1340",
			wantWeekly: "1189.75",
		},
		{
			name:       "routes are never summed",
			chc:        chcResult(98),
			la:         laResult(domain.FundingFullSupport, "0"),
			careCost:   "1000",
			wantWeekly: "1000", // max(980, 1000), not 1980
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sp.Project(tt.chc, tt.la, money(tt.careCost), false)
			assert.True(t, result.Weekly.Equal(money(tt.wantWeekly)),
				"weekly = %s, want %s", result.Weekly, tt.wantWeekly)
			assert.NotEmpty(t, result.Reasoning)
		})
	}
}

func TestSavingsHorizons(t *testing.T) {
	sp := NewSavingsProjector()
	result := sp.Project(chcResult(0), laResult(domain.FundingPartialSupport, "60.50"), money("1100"), false)

	weekly := money("1039.50")
	assert.True(t, result.Weekly.Equal(weekly))
	assert.True(t, result.Annual.Equal(weekly.Mul(money("52"))), "annual = %s", result.Annual)
	assert.True(t, result.FiveYear.Equal(result.Annual.Mul(money("5"))))
	assert.True(t, result.Lifetime.Equal(result.Annual.Mul(money("10"))))
}

func TestSavingsFallbackBenchmarkIsReported(t *testing.T) {
	sp := NewSavingsProjector()
	result := sp.Project(chcResult(0), laResult(domain.FundingFullSupport, "0"), money("1100"), true)
	assert.True(t, result.UsedFallback)
	assert.Contains(t, result.Reasoning, "national average benchmark")
}
