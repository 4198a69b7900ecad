package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/carefund/carecalc/internal/domain"
)

// CSVFormatter renders the headline figures as a two-column CSV, one metric
// per row, for spreadsheet import.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(result *domain.FundingEligibilityResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "value"},
		{"threshold_year", result.ThresholdYear},
		{"calculated_at", result.CalculatedAt.Format("2006-01-02T15:04:05Z07:00")},
		{"chc_probability_percent", strconv.Itoa(result.CHC.ProbabilityPercent)},
		{"chc_threshold_category", string(result.CHC.Band)},
		{"chc_likely_eligible", strconv.FormatBool(result.CHC.IsLikelyEligible)},
		{"la_funding_category", string(result.LASupport.FundingCategory)},
		{"la_capital_assessed", result.LASupport.CapitalAssessed.StringFixed(2)},
		{"la_tariff_income", result.LASupport.TariffIncome.StringFixed(2)},
		{"la_weekly_contribution", result.LASupport.WeeklyContribution.StringFixed(2)},
		{"dpa_eligible", strconv.FormatBool(result.DPA.IsEligible)},
		{"dpa_rejection_reason", string(result.DPA.RejectionReason)},
		{"dpa_maximum_loan", result.DPA.MaximumLoan.StringFixed(2)},
		{"dpa_equity_buffer", result.DPA.EquityBuffer.StringFixed(2)},
		{"savings_weekly", result.Savings.Weekly.StringFixed(2)},
		{"savings_annual", result.Savings.Annual.StringFixed(2)},
		{"savings_five_year", result.Savings.FiveYear.StringFixed(2)},
		{"savings_lifetime", result.Savings.Lifetime.StringFixed(2)},
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
