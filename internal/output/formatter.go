package output

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
)

// Formatter renders a funding eligibility result in one output format.
type Formatter interface {
	Name() string
	Format(result *domain.FundingEligibilityResult) ([]byte, error)
}

// GetFormatterByName returns the formatter for a format name, or nil when the
// format is unknown.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console":
		return ConsoleFormatter{}
	case "verbose":
		return VerboseConsoleFormatter{}
	case "json":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// FormatNames lists the supported output format names.
func FormatNames() []string {
	return []string{"console", "verbose", "json", "csv"}
}

// FormatCurrency renders a money amount as pounds with thousands separators.
func FormatCurrency(d decimal.Decimal) string {
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
