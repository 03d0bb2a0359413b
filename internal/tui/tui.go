package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoval/backrep/internal/report"
)

// RunBrowseTUI starts the interactive report browser
func RunBrowseTUI(window report.TimeWindow, rows []report.Row) error {
	model := NewBrowseModel(window, rows)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
