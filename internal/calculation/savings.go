package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
)

// CHC savings only count once the probability clears this floor; below it the
// CHC route is too speculative to project against.
const chcSavingsProbabilityFloor = 70

var (
	weeksPerYear  = decimal.NewFromInt(52)
	fiveYears     = decimal.NewFromInt(5)
	lifetimeYears = decimal.NewFromInt(10)
	oneHundred    = decimal.NewFromInt(100)
)

// SavingsProjector combines CHC and LA outcomes with a weekly care-cost
// benchmark to project weekly, annual, five-year and lifetime savings.
type SavingsProjector struct{}

// NewSavingsProjector creates a new projector.
func NewSavingsProjector() *SavingsProjector {
	return &SavingsProjector{}
}

// Project computes the savings figures. The two funding routes are mutually
// exclusive in practice, so the larger of the two weekly savings is taken,
// never their sum.
func (sp *SavingsProjector) Project(chc *domain.CHCEligibilityResult, la *domain.LASupportResult, careCost decimal.Decimal, usedFallback bool) *domain.SavingsResult {
	chcWeekly := decimal.Zero
	if chc.ProbabilityPercent >= chcSavingsProbabilityFloor {
		chcWeekly = careCost.Mul(decimal.NewFromInt(int64(chc.ProbabilityPercent))).Div(oneHundred)
	}

	// Self-funders receive nothing from the local authority, so that route
	// projects no savings for them.
	laWeekly := decimal.Zero
	if la.FundingCategory != domain.FundingSelfFunding {
		laWeekly = careCost.Sub(la.WeeklyContribution)
		if laWeekly.IsNegative() {
			laWeekly = decimal.Zero
		}
	}

	weekly := chcWeekly
	route := "NHS Continuing Healthcare"
	if laWeekly.GreaterThan(chcWeekly) {
		weekly = laWeekly
		route = "local authority support"
	}

	annual := weekly.Mul(weeksPerYear)
	result := &domain.SavingsResult{
		WeeklyCareCost: careCost,
		UsedFallback:   usedFallback,
		Weekly:         weekly,
		Annual:         annual,
		FiveYear:       annual.Mul(fiveYears),
		Lifetime:       annual.Mul(lifetimeYears),
	}
	result.Reasoning = savingsReasoning(result, chcWeekly, laWeekly, route, chc.ProbabilityPercent)
	return result
}

func savingsReasoning(r *domain.SavingsResult, chcWeekly, laWeekly decimal.Decimal, route string, probability int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Against a weekly care cost of %s", formatGBP(r.WeeklyCareCost))
	if r.UsedFallback {
		b.WriteString(" (national average benchmark; no care cost was supplied)")
	}
	fmt.Fprintf(&b, ", the CHC route projects %s/week", formatGBP(chcWeekly))
	if probability < chcSavingsProbabilityFloor {
		fmt.Fprintf(&b, " (probability %d%% is below the %d%% projection floor)", probability, chcSavingsProbabilityFloor)
	}
	fmt.Fprintf(&b, " and the means-tested route projects %s/week.", formatGBP(laWeekly))
	fmt.Fprintf(&b, " Taking the stronger route (%s): %s/week, %s/year, %s over five years.",
		route, formatGBP(r.Weekly), formatGBP(r.Annual), formatGBP(r.FiveYear))
	return b.String()
}
