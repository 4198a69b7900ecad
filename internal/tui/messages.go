package tui

import "github.com/carefund/carecalc/internal/domain"

// RequestLoadedMsg carries a parsed assessment request file.
type RequestLoadedMsg struct {
	Request *domain.AssessmentRequest
}

// AssessmentCompleteMsg carries a finished calculation or its failure.
type AssessmentCompleteMsg struct {
	Result *domain.FundingEligibilityResult
	Err    error
}

// ErrorMsg signals an unrecoverable load error.
type ErrorMsg struct {
	Err error
}
