// Package tui provides an interactive terminal browser for a funding
// eligibility assessment: load a request file, run the engine, and flip
// between the summary and the full reasoning.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/carefund/carecalc/internal/calculation"
	"github.com/carefund/carecalc/internal/config"
	"github.com/carefund/carecalc/internal/domain"
)

// Model is the application state for the assessment browser.
type Model struct {
	requestPath string
	registry    *config.Registry
	engine      *calculation.Engine

	request *domain.AssessmentRequest
	result  *domain.FundingEligibilityResult
	err     error

	loading bool
	verbose bool
	spinner spinner.Model

	width  int
	height int
}

// NewModel creates the browser model for a request file.
func NewModel(requestPath string, registry *config.Registry) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		requestPath: requestPath,
		registry:    registry,
		engine:      calculation.NewEngine(registry.Catalog()),
		loading:     true,
		spinner:     sp,
		width:       80,
		height:      24,
	}
}

// Init starts the spinner and loads the request file.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadRequestCmd(m.requestPath))
}

func loadRequestCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		req, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RequestLoadedMsg{Request: req}
	}
}

func (m Model) assessCmd() tea.Cmd {
	req := m.request
	registry := m.registry
	engine := m.engine
	return func() tea.Msg {
		now := time.Now().UTC()
		thresholds, err := registry.ThresholdsFor(now)
		if err != nil {
			return AssessmentCompleteMsg{Err: err}
		}
		result, err := engine.Assess(req, thresholds, now)
		return AssessmentCompleteMsg{Result: result, Err: err}
	}
}
