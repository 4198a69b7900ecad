package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CareType identifies the care setting being costed.
type CareType string

const (
	CareTypeResidential         CareType = "residential"
	CareTypeNursing             CareType = "nursing"
	CareTypeResidentialDementia CareType = "residential_dementia"
	CareTypeNursingDementia     CareType = "nursing_dementia"
	CareTypeRespite             CareType = "respite"
)

// AllCareTypes returns every supported care setting.
func AllCareTypes() []CareType {
	return []CareType{
		CareTypeResidential,
		CareTypeNursing,
		CareTypeResidentialDementia,
		CareTypeNursingDementia,
		CareTypeRespite,
	}
}

// ParseCareType converts a string identifier to a CareType.
func ParseCareType(s string) (CareType, error) {
	ct := CareType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllCareTypes() {
		if ct == known {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown care type %q", s)
}

// PropertyDetails describes a property owned by the person being assessed.
type PropertyDetails struct {
	Value                 decimal.Decimal `yaml:"value" json:"value"`
	IsMainResidence       bool            `yaml:"is_main_residence" json:"is_main_residence"`
	HasQualifyingRelative bool            `yaml:"has_qualifying_relative" json:"has_qualifying_relative"`
}

// FinancialProfile carries the raw financial facts for a means test.
// CapitalAssets excludes any property, which is supplied separately so the
// property-disposition rules can decide whether it counts as capital.
type FinancialProfile struct {
	CapitalAssets decimal.Decimal  `yaml:"capital_assets" json:"capital_assets"`
	WeeklyIncome  decimal.Decimal  `yaml:"weekly_income" json:"weekly_income"`
	Property      *PropertyDetails `yaml:"property,omitempty" json:"property,omitempty"`
	CareType      CareType         `yaml:"care_type" json:"care_type"`
	IsPermanent   bool             `yaml:"is_permanent_care" json:"is_permanent_care"`
	HasPartner    bool             `yaml:"has_partner" json:"has_partner"`

	// WeeksSinceAdmission, when supplied for a permanent placement, lets the
	// 12-week property disregard apply. Nil means an established placement.
	WeeksSinceAdmission *int `yaml:"weeks_since_admission,omitempty" json:"weeks_since_admission,omitempty"`

	// AdmissionDate is an alternative to WeeksSinceAdmission: when only the
	// date is supplied, the weeks are derived at calculation time.
	AdmissionDate *time.Time `yaml:"admission_date,omitempty" json:"admission_date,omitempty"`
}

// DisregardSelection is the sparse set of disregard amounts the requester
// reports, keyed by catalog category name. Amounts are validated against the
// DisregardCatalog before use; discretionary categories only take effect when
// explicitly overridden.
type DisregardSelection struct {
	Assets             map[string]decimal.Decimal `yaml:"assets,omitempty" json:"assets,omitempty"`
	Income             map[string]decimal.Decimal `yaml:"income,omitempty" json:"income,omitempty"`
	ApplyDiscretionary map[string]bool            `yaml:"apply_discretionary,omitempty" json:"apply_discretionary,omitempty"`

	// DisabilityRelatedExpenditure is the explicit weekly deduction for
	// partially-disregarded disability income. Zero unless supplied.
	DisabilityRelatedExpenditure decimal.Decimal `yaml:"disability_related_expenditure" json:"disability_related_expenditure"`
}
