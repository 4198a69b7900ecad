package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carefund/carecalc/internal/domain"
)

// CHC probability is capped below certainty: results are estimates, never
// official determinations.
const maxCHCProbability = 98

// levelPoints is the fixed per-level contribution to the CHC base score.
var levelPoints = map[domain.CareLevel]int{
	domain.LevelNone:     0,
	domain.LevelLow:      2,
	domain.LevelModerate: 5,
	domain.LevelHigh:     9,
	domain.LevelSevere:   20,
	domain.LevelPriority: 45,
}

// criticalDomains is the fixed subset whose severe ratings trigger the
// multiple-severe bonus. It deliberately overlaps behaviouralDomains on
// behaviour and cognition; the overlap is fixed here and unit-tested rather
// than left implicit.
var criticalDomains = map[domain.CareDomain]bool{
	domain.DomainCognition:     true,
	domain.DomainBreathing:     true,
	domain.DomainBehaviour:     true,
	domain.DomainAlteredStates: true,
}

// behaviouralDomains is the fixed subset whose high ratings trigger the
// behavioural-cluster bonus.
var behaviouralDomains = map[domain.CareDomain]bool{
	domain.DomainBehaviour:     true,
	domain.DomainPsychological: true,
	domain.DomainCognition:     true,
}

// Bonus point values, each independently triggerable and additive.
const (
	bonusMultipleSevereCritical = 25
	bonusUnpredictableNeeds     = 15
	bonusBehaviouralCluster     = 10
	bonusComplexTherapy         = 8
)

// DomainAssessmentScorer converts twelve clinical domain ratings plus
// indicator flags into a CHC eligibility probability.
type DomainAssessmentScorer struct{}

// NewDomainAssessmentScorer creates a new scorer.
func NewDomainAssessmentScorer() *DomainAssessmentScorer {
	return &DomainAssessmentScorer{}
}

// Score validates the domain set and produces the CHC result. A malformed
// set (missing or duplicate domain) fails fast with a ValidationError and no
// partial computation.
func (s *DomainAssessmentScorer) Score(assessments []domain.DomainAssessment, indicators domain.ClinicalIndicators) (*domain.CHCEligibilityResult, error) {
	if err := validateDomainSet(assessments); err != nil {
		return nil, err
	}

	base := 0
	scores := make([]domain.DomainScore, 0, len(assessments))
	var priorityCount, severeCount, highCount int
	var severeCritical, highBehavioural int

	for _, a := range assessments {
		points := levelPoints[a.Level]
		base += points
		scores = append(scores, domain.DomainScore{Domain: a.Domain, Level: a.Level, Points: points})

		switch a.Level {
		case domain.LevelPriority:
			priorityCount++
		case domain.LevelSevere:
			severeCount++
			if criticalDomains[a.Domain] {
				severeCritical++
			}
		case domain.LevelHigh:
			highCount++
			if behaviouralDomains[a.Domain] {
				highBehavioural++
			}
		}
	}

	var bonuses []domain.AppliedBonus
	if severeCritical >= 2 {
		bonuses = append(bonuses, domain.AppliedBonus{
			Name:   "multiple_severe_critical",
			Points: bonusMultipleSevereCritical,
			Detail: fmt.Sprintf("%d severe ratings within the critical domains (cognition, breathing, behaviour, altered states)", severeCritical),
		})
	}
	if indicators.HasUnpredictableNeeds() {
		detail := "fluctuating condition"
		if indicators.HighRiskBehaviour {
			detail = "high-risk behaviour"
			if indicators.FluctuatingCondition {
				detail = "fluctuating condition and high-risk behaviour"
			}
		}
		bonuses = append(bonuses, domain.AppliedBonus{
			Name:   "unpredictable_needs",
			Points: bonusUnpredictableNeeds,
			Detail: detail,
		})
	}
	if highBehavioural >= 3 {
		bonuses = append(bonuses, domain.AppliedBonus{
			Name:   "behavioural_cluster",
			Points: bonusBehaviouralCluster,
			Detail: fmt.Sprintf("%d high ratings within the behavioural domains (behaviour, psychological, cognition)", highBehavioural),
		})
	}
	if indicators.HasComplexTherapy() {
		bonuses = append(bonuses, domain.AppliedBonus{
			Name:   "complex_therapy",
			Points: bonusComplexTherapy,
			Detail: strings.Join(indicators.ComplexTherapies(), ", "),
		})
	}

	probability := base
	for _, b := range bonuses {
		probability += b.Points
	}
	if probability > maxCHCProbability {
		probability = maxCHCProbability
	}

	// Band comes from raw domain counts, not the capped probability.
	band := deriveBand(priorityCount, severeCount, highCount)
	likely := band == domain.BandVeryHigh || band == domain.BandHigh ||
		(band == domain.BandModerate && probability >= 75)

	return &domain.CHCEligibilityResult{
		ProbabilityPercent: probability,
		IsLikelyEligible:   likely,
		Band:               band,
		Reasoning:          chcReasoning(scores, bonuses, band, probability),
		DomainScores:       scores,
		AppliedBonuses:     bonuses,
	}, nil
}

func deriveBand(priority, severe, high int) domain.CHCBand {
	switch {
	case priority >= 1, severe >= 2, severe == 1 && high >= 4:
		return domain.BandVeryHigh
	case severe == 1 && high >= 2 && high <= 3:
		return domain.BandHigh
	case high >= 5:
		return domain.BandModerate
	default:
		return domain.BandLow
	}
}

func validateDomainSet(assessments []domain.DomainAssessment) error {
	required := domain.AllCareDomains()
	if len(assessments) != len(required) {
		return NewValidationError("domain_assessments", "expected %d domain assessments, got %d", len(required), len(assessments))
	}
	seen := make(map[domain.CareDomain]bool, len(assessments))
	for _, a := range assessments {
		if _, err := domain.ParseCareDomain(string(a.Domain)); err != nil {
			return NewValidationError("domain_assessments", "%v", err)
		}
		if a.Level < domain.LevelNone || a.Level > domain.LevelPriority {
			return NewValidationError("domain_assessments", "domain %s: level out of range", a.Domain)
		}
		if seen[a.Domain] {
			return NewValidationError("domain_assessments", "duplicate domain %s", a.Domain)
		}
		seen[a.Domain] = true
	}
	for _, d := range required {
		if !seen[d] {
			return NewValidationError("domain_assessments", "missing domain %s", d)
		}
	}
	return nil
}

// chcReasoning cites the specific domains and flags that drove the score.
// A bare number is never returned: auditors need to see why.
func chcReasoning(scores []domain.DomainScore, bonuses []domain.AppliedBonus, band domain.CHCBand, probability int) string {
	contributing := make([]domain.DomainScore, 0, len(scores))
	base := 0
	for _, s := range scores {
		base += s.Points
		if s.Points > 0 {
			contributing = append(contributing, s)
		}
	}
	sort.Slice(contributing, func(i, j int) bool { return contributing[i].Points > contributing[j].Points })

	var b strings.Builder
	fmt.Fprintf(&b, "Base score %d", base)
	if len(contributing) > 0 {
		parts := make([]string, 0, len(contributing))
		for _, s := range contributing {
			parts = append(parts, fmt.Sprintf("%s %s (%d)", s.Level, s.Domain, s.Points))
		}
		fmt.Fprintf(&b, " from %s", strings.Join(parts, ", "))
	}
	b.WriteString(".")
	for _, bonus := range bonuses {
		fmt.Fprintf(&b, " +%d for %s.", bonus.Points, bonus.Detail)
	}
	fmt.Fprintf(&b, " Estimated CHC eligibility probability %d%%", probability)
	if probability == maxCHCProbability {
		fmt.Fprintf(&b, " (capped at %d%%)", maxCHCProbability)
	}
	fmt.Fprintf(&b, ", threshold category %s.", band)
	return b.String()
}
