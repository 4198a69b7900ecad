package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carefund/carecalc/internal/domain"
	"github.com/carefund/carecalc/pkg/dateutil"
)

// Engine composes the four calculators into one aggregate result per
// request. It is stateless: every invocation reads the immutable request and
// the thresholds passed to it and returns a freshly constructed result, so
// concurrent use needs no locks.
type Engine struct {
	Scorer  *DomainAssessmentScorer
	Capital *CapitalAssessment
	Income  *IncomeAssessment
	DPA     *DPAEligibilityChecker
	Savings *SavingsProjector
}

// NewEngine creates an engine whose means-test calculators share the given
// disregard catalog.
func NewEngine(catalog *domain.DisregardCatalog) *Engine {
	return &Engine{
		Scorer:  NewDomainAssessmentScorer(),
		Capital: NewCapitalAssessment(catalog),
		Income:  NewIncomeAssessment(catalog),
		DPA:     NewDPAEligibilityChecker(),
		Savings: NewSavingsProjector(),
	}
}

// Assess runs one full funding eligibility calculation. Thresholds are passed
// explicitly rather than read from ambient state so concurrent calculations
// for different effective years stay correct, and the calculation time is
// caller-supplied so identical inputs always produce identical results.
func (e *Engine) Assess(req *domain.AssessmentRequest, th domain.Thresholds, at time.Time) (*domain.FundingEligibilityResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	chc, err := e.Scorer.Score(req.Assessments, req.Indicators)
	if err != nil {
		return nil, err
	}

	profile := resolveAdmissionWeeks(req.Financial, at)
	capital, err := e.Capital.Assess(profile, req.Disregards, th)
	if err != nil {
		return nil, err
	}
	income, err := e.Income.Assess(profile, req.Disregards, capital, th)
	if err != nil {
		return nil, err
	}

	la := domain.LASupportResult{
		FundingCategory:    capital.FundingCategory,
		CapitalAssessed:    capital.AdjustedCapital,
		TariffIncome:       capital.TariffIncome,
		WeeklyContribution: income.WeeklyContribution,
		PropertyTreatment:  capital.PropertyTreatment,
		Reasoning:          capital.Reasoning + " " + income.Reasoning,
	}

	dpa := e.DPA.Check(profile, th)

	careCost, usedFallback, err := resolveCareCost(req, th)
	if err != nil {
		return nil, err
	}
	savings := e.Savings.Project(chc, &la, careCost, usedFallback)

	return &domain.FundingEligibilityResult{
		CHC:           *chc,
		LASupport:     la,
		DPA:           *dpa,
		Savings:       *savings,
		ThresholdYear: th.Year,
		CalculatedAt:  at,
	}, nil
}

// resolveAdmissionWeeks derives weeks-since-admission from an admission date
// when the caller supplied the date rather than the count. An explicit count
// always wins.
func resolveAdmissionWeeks(profile domain.FinancialProfile, at time.Time) domain.FinancialProfile {
	if profile.WeeksSinceAdmission == nil && profile.AdmissionDate != nil {
		weeks := dateutil.WeeksBetween(*profile.AdmissionDate, at)
		profile.WeeksSinceAdmission = &weeks
	}
	return profile
}

// resolveCareCost prefers the caller's benchmark and falls back to the
// configured national average for the care setting. The fallback is recorded
// so the savings reasoning can state which benchmark was used.
func resolveCareCost(req *domain.AssessmentRequest, th domain.Thresholds) (decimal.Decimal, bool, error) {
	if req.WeeklyCareCost != nil {
		if req.WeeklyCareCost.IsNegative() {
			return decimal.Zero, false, NewValidationError("weekly_care_cost", "care cost benchmark cannot be negative")
		}
		if req.WeeklyCareCost.IsPositive() {
			return *req.WeeklyCareCost, false, nil
		}
	}
	fallback, ok := th.BenchmarkFor(req.Financial.CareType)
	if !ok {
		return decimal.Zero, false, NewValidationError("weekly_care_cost",
			"no benchmark supplied and no national average configured for care type %q", req.Financial.CareType)
	}
	return fallback, true, nil
}

func validateRequest(req *domain.AssessmentRequest) error {
	if req == nil {
		return NewValidationError("", "request is required")
	}
	if req.Age < 18 {
		return NewValidationError("age", "adult social care assessments require age 18 or over, got %d", req.Age)
	}
	if _, err := domain.ParseCareType(string(req.Financial.CareType)); err != nil {
		return NewValidationError("financial.care_type", "%v", err)
	}
	return nil
}
