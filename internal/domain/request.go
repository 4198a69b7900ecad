package domain

import (
	"github.com/shopspring/decimal"
)

// AssessmentRequest is the single immutable input to one funding eligibility
// calculation. The engine reads it and the process-wide registries and
// nothing else.
type AssessmentRequest struct {
	Age         int                `yaml:"age" json:"age"`
	Assessments []DomainAssessment `yaml:"domain_assessments" json:"domain_assessments"`
	Indicators  ClinicalIndicators `yaml:"clinical_indicators" json:"clinical_indicators"`
	Financial   FinancialProfile   `yaml:"financial" json:"financial"`
	Disregards  DisregardSelection `yaml:"disregards" json:"disregards"`

	// WeeklyCareCost is the caller-supplied benchmark. Nil falls back to the
	// configured national average for the care type.
	WeeklyCareCost *decimal.Decimal `yaml:"weekly_care_cost,omitempty" json:"weekly_care_cost,omitempty"`
}
