package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/carefund/carecalc/internal/domain"
)

// ConsoleFormatter renders a compact summary for terminal use.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(result *domain.FundingEligibilityResult) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintln(&b, "CARE FUNDING ELIGIBILITY ASSESSMENT")
	fmt.Fprintln(&b, strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Threshold year: %s\n", result.ThresholdYear)
	fmt.Fprintf(&b, "Calculated at:  %s\n", result.CalculatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "NHS Continuing Healthcare: %d%% (%s)\n", result.CHC.ProbabilityPercent, result.CHC.Band)
	fmt.Fprintf(&b, "  Likely eligible: %v\n", result.CHC.IsLikelyEligible)
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Local Authority Support: %s\n", result.LASupport.FundingCategory)
	fmt.Fprintf(&b, "  Capital assessed:    %s\n", FormatCurrency(result.LASupport.CapitalAssessed))
	fmt.Fprintf(&b, "  Tariff income:       %s/week\n", FormatCurrency(result.LASupport.TariffIncome))
	fmt.Fprintf(&b, "  Weekly contribution: %s\n", FormatCurrency(result.LASupport.WeeklyContribution))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Deferred Payment Agreement: eligible=%v\n", result.DPA.IsEligible)
	if result.DPA.IsEligible {
		fmt.Fprintf(&b, "  Maximum loan:  %s\n", FormatCurrency(result.DPA.MaximumLoan))
		fmt.Fprintf(&b, "  Equity buffer: %s\n", FormatCurrency(result.DPA.EquityBuffer))
	} else {
		fmt.Fprintf(&b, "  Reason: %s\n", result.DPA.RejectionReason)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Projected Savings: %s/week\n", FormatCurrency(result.Savings.Weekly))
	fmt.Fprintf(&b, "  Annual:    %s\n", FormatCurrency(result.Savings.Annual))
	fmt.Fprintf(&b, "  Five year: %s\n", FormatCurrency(result.Savings.FiveYear))
	fmt.Fprintf(&b, "  Lifetime:  %s\n", FormatCurrency(result.Savings.Lifetime))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Results are probabilistic estimates, not official determinations.")
	return b.Bytes(), nil
}

// VerboseConsoleFormatter adds the full reasoning and per-domain breakdowns
// to the summary.
type VerboseConsoleFormatter struct{}

func (VerboseConsoleFormatter) Name() string { return "verbose" }

func (VerboseConsoleFormatter) Format(result *domain.FundingEligibilityResult) ([]byte, error) {
	summary, err := ConsoleFormatter{}.Format(result)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.Write(summary)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "DOMAIN SCORE BREAKDOWN")
	fmt.Fprintln(&b, strings.Repeat("-", 50))
	for _, s := range result.CHC.DomainScores {
		fmt.Fprintf(&b, "  %-16s %-10s %3d points\n", s.Domain, s.Level, s.Points)
	}
	if len(result.CHC.AppliedBonuses) > 0 {
		fmt.Fprintln(&b, "BONUS MODIFIERS")
		for _, bonus := range result.CHC.AppliedBonuses {
			fmt.Fprintf(&b, "  +%d %s: %s\n", bonus.Points, bonus.Name, bonus.Detail)
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "REASONING")
	fmt.Fprintln(&b, strings.Repeat("-", 50))
	fmt.Fprintf(&b, "CHC:     %s\n", result.CHC.Reasoning)
	fmt.Fprintf(&b, "LA:      %s\n", result.LASupport.Reasoning)
	fmt.Fprintf(&b, "DPA:     %s\n", result.DPA.Reasoning)
	fmt.Fprintf(&b, "Savings: %s\n", result.Savings.Reasoning)
	return b.Bytes(), nil
}
