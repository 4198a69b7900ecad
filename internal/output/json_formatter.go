package output

import (
	"encoding/json"

	"github.com/carefund/carecalc/internal/domain"
)

// JSONFormatter renders the full result as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(result *domain.FundingEligibilityResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
