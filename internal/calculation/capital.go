package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
)

// AppliedDisregard records one disregard that was (or was not) applied during
// capital or income assessment, for the audit breakdown.
type AppliedDisregard struct {
	Category string
	Amount   decimal.Decimal
	Applied  bool
	Note     string
}

// CapitalOutcome is the result of applying asset disregards and the
// property-disposition rules to raw capital.
type CapitalOutcome struct {
	RawCapital        decimal.Decimal
	DisregardedAssets decimal.Decimal
	AdjustedCapital   decimal.Decimal
	TariffIncome      decimal.Decimal
	FundingCategory   domain.FundingCategory
	PropertyTreatment domain.PropertyTreatment
	Disregards        []AppliedDisregard
	Reasoning         string
}

// CapitalAssessment applies asset disregards and property-disposition rules
// to raw capital, yielding an adjusted capital figure and a funding category.
type CapitalAssessment struct {
	Catalog *domain.DisregardCatalog
}

// NewCapitalAssessment creates a capital assessment backed by a disregard
// catalog.
func NewCapitalAssessment(catalog *domain.DisregardCatalog) *CapitalAssessment {
	return &CapitalAssessment{Catalog: catalog}
}

// Assess runs the capital side of the means test.
func (ca *CapitalAssessment) Assess(profile domain.FinancialProfile, sel domain.DisregardSelection, th domain.Thresholds) (*CapitalOutcome, error) {
	if profile.CapitalAssets.IsNegative() {
		return nil, NewValidationError("financial.capital_assets", "capital assets cannot be negative")
	}
	if profile.Property != nil && profile.Property.Value.IsNegative() {
		return nil, NewValidationError("financial.property.value", "property value cannot be negative")
	}

	disregards, total, err := ca.applyAssetDisregards(sel)
	if err != nil {
		return nil, err
	}

	adjusted := profile.CapitalAssets.Sub(total)
	if adjusted.IsNegative() {
		adjusted = decimal.Zero
	}

	treatment, propertyNote := propertyDisposition(profile, th)
	if treatment == domain.PropertyIncludedInCapital {
		adjusted = adjusted.Add(profile.Property.Value)
	}

	category, tariff := categoriseCapital(adjusted, th)

	out := &CapitalOutcome{
		RawCapital:        profile.CapitalAssets,
		DisregardedAssets: total,
		AdjustedCapital:   adjusted,
		TariffIncome:      tariff,
		FundingCategory:   category,
		PropertyTreatment: treatment,
		Disregards:        disregards,
	}
	out.Reasoning = capitalReasoning(out, propertyNote, th)
	return out, nil
}

// applyAssetDisregards applies mandatory full disregards automatically.
// Discretionary ones require an explicit caller override and are never
// inferred; partial categories contribute zero by default.
func (ca *CapitalAssessment) applyAssetDisregards(sel domain.DisregardSelection) ([]AppliedDisregard, decimal.Decimal, error) {
	total := decimal.Zero
	var applied []AppliedDisregard
	for _, category := range sortedKeys(sel.Assets) {
		amount := sel.Assets[category]
		rule, ok := ca.Catalog.Lookup(domain.DisregardAsset, category)
		if !ok {
			return nil, decimal.Zero, NewValidationError("disregards.assets", "unknown asset disregard category %q", category)
		}
		if amount.IsNegative() {
			return nil, decimal.Zero, NewValidationError("disregards.assets", "category %q: amount cannot be negative", category)
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
			entry.Note = "partially disregarded categories remain assessable"
		case domain.TreatmentNone:
			entry.Note = "category is fully assessable"
		}
		applied = append(applied, entry)
	}
	return applied, total, nil
}

// propertyDisposition decides whether a property counts as capital.
func propertyDisposition(profile domain.FinancialProfile, th domain.Thresholds) (domain.PropertyTreatment, string) {
	p := profile.Property
	if p == nil {
		return domain.PropertyNotOwned, ""
	}
	if p.HasQualifyingRelative {
		return domain.PropertyDisregarded, "qualifying relative resident"
	}
	if !profile.IsPermanent {
		return domain.PropertyDisregarded, "care placement is not permanent"
	}
	if p.IsMainResidence && profile.WeeksSinceAdmission != nil && *profile.WeeksSinceAdmission < th.PropertyDisregardWeeks {
		return domain.PropertyDisregarded,
			fmt.Sprintf("within the %d-week property disregard window", th.PropertyDisregardWeeks)
	}
	if !p.IsMainResidence {
		return domain.PropertyIncludedInCapital, "not the main residence"
	}
	return domain.PropertyIncludedInCapital, "main residence with no qualifying relative, beyond the disregard window"
}

// categoriseCapital brackets adjusted capital against the year's limits.
// Capital exactly at a limit belongs to the lower-cost category.
func categoriseCapital(adjusted decimal.Decimal, th domain.Thresholds) (domain.FundingCategory, decimal.Decimal) {
	switch {
	case adjusted.LessThanOrEqual(th.LowerCapitalLimit):
		return domain.FundingFullSupport, decimal.Zero
	case adjusted.LessThanOrEqual(th.UpperCapitalLimit):
		return domain.FundingPartialSupport, tariffIncome(adjusted, th)
	default:
		return domain.FundingSelfFunding, decimal.Zero
	}
}

// tariffIncome assumes weekly income per tariff band (or part thereof) of
// capital above the lower limit.
func tariffIncome(adjusted decimal.Decimal, th domain.Thresholds) decimal.Decimal {
	excess := adjusted.Sub(th.LowerCapitalLimit)
	if !excess.IsPositive() {
		return decimal.Zero
	}
	bands := excess.Div(th.TariffBand).Ceil()
	return bands.Mul(th.TariffRate)
}

func capitalReasoning(out *CapitalOutcome, propertyNote string, th domain.Thresholds) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Raw capital %s less %s disregarded assets gives assessed capital %s.",
		formatGBP(out.RawCapital), formatGBP(out.DisregardedAssets), formatGBP(out.AdjustedCapital))
	switch out.PropertyTreatment {
	case domain.PropertyDisregarded:
		fmt.Fprintf(&b, " Property disregarded: %s.", propertyNote)
	case domain.PropertyIncludedInCapital:
		fmt.Fprintf(&b, " Property included at full value: %s.", propertyNote)
	}
	switch out.FundingCategory {
	case domain.FundingFullSupport:
		fmt.Fprintf(&b, " At or below the lower capital limit (%s): full local authority support.", formatGBP(th.LowerCapitalLimit))
	case domain.FundingPartialSupport:
		fmt.Fprintf(&b, " Between the capital limits (%s-%s): partial support with tariff income %s/week.",
			formatGBP(th.LowerCapitalLimit), formatGBP(th.UpperCapitalLimit), formatGBP(out.TariffIncome))
	case domain.FundingSelfFunding:
		fmt.Fprintf(&b, " Above the upper capital limit (%s): self-funding.", formatGBP(th.UpperCapitalLimit))
	}
	return b.String()
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatGBP renders a money amount as pounds with thousands separators.
func formatGBP(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	whole := parts[0]
	var grouped strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}
	out := "£" + grouped.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}
