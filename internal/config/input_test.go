package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carefund/carecalc/internal/domain"
)

const validRequestYAML = `
age: 78
domain_assessments:
  - {domain: breathing, level: moderate}
  - {domain: nutrition, level: high}
  - {domain: continence, level: moderate}
  - {domain: skin, level: high}
  - {domain: mobility, level: high}
  - {domain: communication, level: moderate}
  - {domain: psychological, level: moderate}
  - {domain: cognition, level: severe}
  - {domain: behaviour, level: high}
  - {domain: drug_therapies, level: moderate}
  - {domain: altered_states, level: moderate}
  - {domain: other, level: low}
clinical_indicators:
  regular_injections: true
  fluctuating_condition: true
financial:
  capital_assets: 48000
  weekly_income: 320.50
  property:
    value: 285000
    is_main_residence: true
    has_qualifying_relative: true
  care_type: nursing
  is_permanent_care: true
  has_partner: true
disregards:
  income:
    attendance_allowance: 108.55
  disability_related_expenditure: 35.00
weekly_care_cost: 1395
`

func TestInputParserParse(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.Parse([]byte(validRequestYAML))
	require.NoError(t, err)

	assert.Equal(t, 78, req.Age)
	assert.Len(t, req.Assessments, 12)
	assert.Equal(t, domain.LevelSevere, req.Assessments[7].Level)
	assert.Equal(t, domain.DomainCognition, req.Assessments[7].Domain)
	assert.True(t, req.Indicators.RegularInjections)
	assert.True(t, req.Indicators.FluctuatingCondition)
	assert.Equal(t, domain.CareTypeNursing, req.Financial.CareType)
	assert.True(t, req.Financial.CapitalAssets.Equal(decimal.NewFromInt(48000)))
	require.NotNil(t, req.Financial.Property)
	assert.True(t, req.Financial.Property.HasQualifyingRelative)
	assert.True(t, req.Disregards.DisabilityRelatedExpenditure.Equal(decimal.NewFromFloat(35)))
	require.NotNil(t, req.WeeklyCareCost)
	assert.True(t, req.WeeklyCareCost.Equal(decimal.NewFromInt(1395)))
}

func TestInputParserRejections(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not yaml",
			yaml:    "{{{",
			wantErr: "failed to parse",
		},
		{
			name:    "missing age",
			yaml:    "domain_assessments: [{domain: breathing, level: low}]\nfinancial: {care_type: nursing}",
			wantErr: "age is required",
		},
		{
			name:    "no assessments",
			yaml:    "age: 70\nfinancial: {care_type: nursing}",
			wantErr: "domain assessments are required",
		},
		{
			name:    "unknown care level",
			yaml:    "age: 70\ndomain_assessments: [{domain: breathing, level: catastrophic}]\nfinancial: {care_type: nursing}",
			wantErr: "unknown care level",
		},
		{
			name:    "unknown care domain",
			yaml:    "age: 70\ndomain_assessments: [{domain: astral, level: low}]\nfinancial: {care_type: nursing}",
			wantErr: "unknown care domain",
		},
		{
			name:    "unknown care type",
			yaml:    "age: 70\ndomain_assessments: [{domain: breathing, level: low}]\nfinancial: {care_type: hotel}",
			wantErr: "unknown care type",
		},
		{
			name:    "negative capital",
			yaml:    "age: 70\ndomain_assessments: [{domain: breathing, level: low}]\nfinancial: {care_type: nursing, capital_assets: -1}",
			wantErr: "capital assets cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInputParserLoadFromFile(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.LoadFromFile("../../data/example_request.yaml")
	require.NoError(t, err)
	assert.Equal(t, 78, req.Age)
	assert.Len(t, req.Assessments, 12)

	_, err = parser.LoadFromFile("does-not-exist.yaml")
	require.Error(t, err)
}
