package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carefund/carecalc/internal/output"
)

// View renders the current state of the browser.
func (m Model) View() string {
	title := TitleStyle.Render("carecalc · funding eligibility")

	var body string
	switch {
	case m.loading:
		body = fmt.Sprintf("%s assessing %s...", m.spinner.View(), m.requestPath)
	case m.err != nil:
		body = ErrorStyle.Render("error: " + m.err.Error())
	case m.result != nil:
		body = m.renderResult()
	default:
		body = "no result"
	}

	status := StatusBarStyle.Render("q quit · v toggle reasoning · r reload")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", status)
}

func (m Model) renderResult() string {
	r := m.result
	eligibility := NotEligibleStyle.Render("unlikely")
	if r.CHC.IsLikelyEligible {
		eligibility = EligibleStyle.Render("likely")
	}

	chc := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("NHS Continuing Healthcare"),
		fmt.Sprintf("%s %d%%  (%s, %s eligible)",
			LabelStyle.Render("probability"), r.CHC.ProbabilityPercent, r.CHC.Band, eligibility),
	))

	la := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Local Authority Means Test"),
		fmt.Sprintf("%s %s", LabelStyle.Render("category  "), r.LASupport.FundingCategory),
		fmt.Sprintf("%s %s", LabelStyle.Render("capital   "), output.FormatCurrency(r.LASupport.CapitalAssessed)),
		fmt.Sprintf("%s %s/week", LabelStyle.Render("contribution"), output.FormatCurrency(r.LASupport.WeeklyContribution)),
	))

	dpaLine := NotEligibleStyle.Render("not eligible: " + string(r.DPA.RejectionReason))
	if r.DPA.IsEligible {
		dpaLine = EligibleStyle.Render("eligible") +
			fmt.Sprintf("  max loan %s, buffer %s",
				output.FormatCurrency(r.DPA.MaximumLoan), output.FormatCurrency(r.DPA.EquityBuffer))
	}
	dpa := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Deferred Payment Agreement"), dpaLine,
	))

	savings := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		SectionTitleStyle.Render("Projected Savings"),
		fmt.Sprintf("%s %s   %s %s   %s %s",
			LabelStyle.Render("weekly"), output.FormatCurrency(r.Savings.Weekly),
			LabelStyle.Render("annual"), output.FormatCurrency(r.Savings.Annual),
			LabelStyle.Render("5 year"), output.FormatCurrency(r.Savings.FiveYear)),
	))

	sections := []string{chc, la, dpa, savings}
	if m.verbose {
		reasoning := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			SectionTitleStyle.Render("Reasoning"),
			wrap("CHC: "+r.CHC.Reasoning, m.width-6),
			wrap("LA: "+r.LASupport.Reasoning, m.width-6),
			wrap("DPA: "+r.DPA.Reasoning, m.width-6),
			wrap("Savings: "+r.Savings.Reasoning, m.width-6),
		))
		sections = append(sections, reasoning)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// wrap does simple word wrapping for reasoning paragraphs.
func wrap(s string, width int) string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(s)
	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
