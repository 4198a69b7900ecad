package calculation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
)

// IncomeOutcome is the result of the income side of the means test. The four
// numbers in the breakdown (raw, disregarded, tariff, final) are an audit
// requirement, not cosmetic.
type IncomeOutcome struct {
	RawWeeklyIncome    decimal.Decimal
	DisregardedIncome  decimal.Decimal
	DREDeduction       decimal.Decimal
	TariffIncome       decimal.Decimal
	TotalAssessable    decimal.Decimal
	WeeklyContribution decimal.Decimal
	Disregards         []AppliedDisregard
	Reasoning          string
}

// IncomeAssessment applies income disregards and tariff income to raw weekly
// income, yielding a weekly care contribution.
type IncomeAssessment struct {
	Catalog *domain.DisregardCatalog
}

// NewIncomeAssessment creates an income assessment backed by a disregard
// catalog.
func NewIncomeAssessment(catalog *domain.DisregardCatalog) *IncomeAssessment {
	return &IncomeAssessment{Catalog: catalog}
}

// Assess computes the weekly contribution. A contribution is only meaningful
// for partial support; for full support and self-funding it is fixed at zero
// but the breakdown is still reported.
func (ia *IncomeAssessment) Assess(profile domain.FinancialProfile, sel domain.DisregardSelection, capital *CapitalOutcome, th domain.Thresholds) (*IncomeOutcome, error) {
	if profile.WeeklyIncome.IsNegative() {
		return nil, NewValidationError("financial.weekly_income", "weekly income cannot be negative")
	}
	if sel.DisabilityRelatedExpenditure.IsNegative() {
		return nil, NewValidationError("disregards.disability_related_expenditure", "deduction cannot be negative")
	}

	disregards, total, err := ia.applyIncomeDisregards(sel)
	if err != nil {
		return nil, err
	}

	adjusted := profile.WeeklyIncome.Sub(total).Sub(sel.DisabilityRelatedExpenditure)
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
	}
	assessable := adjusted.Add(capital.TariffIncome)

	out := &IncomeOutcome{
		RawWeeklyIncome:   profile.WeeklyIncome,
		DisregardedIncome: total,
		DREDeduction:      sel.DisabilityRelatedExpenditure,
		TariffIncome:      capital.TariffIncome,
		TotalAssessable:   assessable,
		Disregards:        disregards,
	}

	mig := th.MIGFor(profile.HasPartner)
	if capital.FundingCategory == domain.FundingPartialSupport {
		contribution := assessable.Sub(th.PersonalExpensesAllowance).Sub(mig)
		if contribution.IsNegative() {
			contribution = decimal.Zero
		}
		out.WeeklyContribution = contribution
	} else {
		out.WeeklyContribution = decimal.Zero
	}

	out.Reasoning = incomeReasoning(out, capital.FundingCategory, mig, th)
	return out, nil
}

// applyIncomeDisregards subtracts mandatory full disregards. Partially
// disregarded categories (disability benefits subject to deductible
// expenditure) stay assessable unless an explicit disability-related
// expenditure deduction is supplied separately.
func (ia *IncomeAssessment) applyIncomeDisregards(sel domain.DisregardSelection) ([]AppliedDisregard, decimal.Decimal, error) {
	total := decimal.Zero
	var applied []AppliedDisregard
	for _, category := range sortedKeys(sel.Income) {
		amount := sel.Income[category]
		rule, ok := ia.Catalog.Lookup(domain.DisregardIncome, category)
		if !ok {
			return nil, decimal.Zero, NewValidationError("disregards.income", "unknown income disregard category %q", category)
		}
		if amount.IsNegative() {
			return nil, decimal.Zero, NewValidationError("disregards.income", "category %q: amount cannot be negative", category)
		}

		entry := AppliedDisregard{Category: category, Amount: amount}
		switch rule.Treatment {
		case domain.TreatmentFull, domain.TreatmentTemporary:
			if rule.Discretionary && !sel.ApplyDiscretionary[category] {
				entry.Note = "discretionary disregard not applied without explicit override"
			} else {
				entry.Applied = true
				total = total.Add(amount)
				if rule.Treatment == domain.TreatmentTemporary {
					entry.Note = fmt.Sprintf("time-limited disregard (%d weeks)", rule.DurationWeeks)
				}
			}
		case domain.TreatmentPartial:
			entry.Note = "assessable unless disability-related expenditure is supplied"
		case domain.TreatmentNone:
			entry.Note = "category is fully assessable"
		}
		applied = append(applied, entry)
	}
	return applied, total, nil
}

func incomeReasoning(out *IncomeOutcome, category domain.FundingCategory, mig decimal.Decimal, th domain.Thresholds) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weekly income %s less %s disregarded", formatGBP(out.RawWeeklyIncome), formatGBP(out.DisregardedIncome))
	if out.DREDeduction.IsPositive() {
		fmt.Fprintf(&b, " and %s disability-related expenditure", formatGBP(out.DREDeduction))
	}
	fmt.Fprintf(&b, ", plus tariff income %s, gives %s assessable.",
		formatGBP(out.TariffIncome), formatGBP(out.TotalAssessable))
	if category == domain.FundingPartialSupport {
		fmt.Fprintf(&b, " After the personal expenses allowance (%s) and minimum income guarantee (%s), the weekly contribution is %s.",
			formatGBP(th.PersonalExpensesAllowance), formatGBP(mig), formatGBP(out.WeeklyContribution))
	} else {
		fmt.Fprintf(&b, " Funding category is %s, so no income contribution applies.", category)
	}
	return b.String()
}
