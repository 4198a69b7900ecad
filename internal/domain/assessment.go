package domain

import (
	"fmt"
	"strings"
)

// CareDomain identifies one of the twelve Decision Support Tool care domains
// used for NHS Continuing Healthcare scoring.
type CareDomain string

const (
	DomainBreathing     CareDomain = "breathing"
	DomainNutrition     CareDomain = "nutrition"
	DomainContinence    CareDomain = "continence"
	DomainSkin          CareDomain = "skin"
	DomainMobility      CareDomain = "mobility"
	DomainCommunication CareDomain = "communication"
	DomainPsychological CareDomain = "psychological"
	DomainCognition     CareDomain = "cognition"
	DomainBehaviour     CareDomain = "behaviour"
	DomainDrugTherapies CareDomain = "drug_therapies"
	DomainAlteredStates CareDomain = "altered_states"
	DomainOther         CareDomain = "other"
)

// AllCareDomains returns the twelve DST domains in their canonical order.
func AllCareDomains() []CareDomain {
	return []CareDomain{
		DomainBreathing,
		DomainNutrition,
		DomainContinence,
		DomainSkin,
		DomainMobility,
		DomainCommunication,
		DomainPsychological,
		DomainCognition,
		DomainBehaviour,
		DomainDrugTherapies,
		DomainAlteredStates,
		DomainOther,
	}
}

// ParseCareDomain converts a string identifier to a CareDomain.
func ParseCareDomain(s string) (CareDomain, error) {
	d := CareDomain(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllCareDomains() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown care domain %q", s)
}

// CareLevel is the ordered six-value DST rating scale for a single domain.
type CareLevel int

const (
	LevelNone CareLevel = iota
	LevelLow
	LevelModerate
	LevelHigh
	LevelSevere
	LevelPriority
)

var careLevelNames = map[CareLevel]string{
	LevelNone:     "none",
	LevelLow:      "low",
	LevelModerate: "moderate",
	LevelHigh:     "high",
	LevelSevere:   "severe",
	LevelPriority: "priority",
}

func (l CareLevel) String() string {
	if name, ok := careLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("carelevel(%d)", int(l))
}

// ParseCareLevel converts a string rating to a CareLevel.
func ParseCareLevel(s string) (CareLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for level, name := range careLevelNames {
		if normalized == name {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown care level %q", s)
}

// UnmarshalYAML accepts the textual rating names used in assessment files.
func (l *CareLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := ParseCareLevel(raw)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MarshalYAML emits the textual rating name.
func (l CareLevel) MarshalYAML() (interface{}, error) {
	return l.String(), nil
}

// DomainAssessment pairs one care domain with its assessed level.
type DomainAssessment struct {
	Domain CareDomain `yaml:"domain" json:"domain"`
	Level  CareLevel  `yaml:"level" json:"level"`
}

// ClinicalIndicators carries the boolean flags that modify CHC scoring
// beyond the twelve domain ratings. Supplied once per request, never mutated.
type ClinicalIndicators struct {
	FeedingTube          bool `yaml:"feeding_tube" json:"feeding_tube"`
	Tracheostomy         bool `yaml:"tracheostomy" json:"tracheostomy"`
	RegularInjections    bool `yaml:"regular_injections" json:"regular_injections"`
	Ventilation          bool `yaml:"ventilation" json:"ventilation"`
	Dialysis             bool `yaml:"dialysis" json:"dialysis"`
	FluctuatingCondition bool `yaml:"fluctuating_condition" json:"fluctuating_condition"`
	HighRiskBehaviour    bool `yaml:"high_risk_behaviour" json:"high_risk_behaviour"`
}

// HasComplexTherapy reports whether any complex-therapy flag is set.
func (ci ClinicalIndicators) HasComplexTherapy() bool {
	return ci.FeedingTube || ci.Tracheostomy || ci.RegularInjections || ci.Ventilation || ci.Dialysis
}

// HasUnpredictableNeeds reports whether either unpredictability flag is set.
func (ci ClinicalIndicators) HasUnpredictableNeeds() bool {
	return ci.FluctuatingCondition || ci.HighRiskBehaviour
}

// ComplexTherapies lists the names of the complex therapies in effect,
// for reasoning output.
func (ci ClinicalIndicators) ComplexTherapies() []string {
	var out []string
	if ci.FeedingTube {
		out = append(out, "feeding tube")
	}
	if ci.Tracheostomy {
		out = append(out, "tracheostomy")
	}
	if ci.RegularInjections {
		out = append(out, "regular injections")
	}
	if ci.Ventilation {
		out = append(out, "ventilation")
	}
	if ci.Dialysis {
		out = append(out, "dialysis")
	}
	return out
}
