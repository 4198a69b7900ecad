package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "v":
			m.verbose = !m.verbose
			return m, nil
		case "r":
			if !m.loading {
				m.loading = true
				m.result = nil
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, loadRequestCmd(m.requestPath))
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RequestLoadedMsg:
		m.request = msg.Request
		return m, m.assessCmd()

	case AssessmentCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
		} else {
			m.result = msg.Result
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}
