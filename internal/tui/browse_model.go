package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoval/backrep/internal/models"
	"github.com/dkoval/backrep/internal/report"
)

// BrowseModel is the TUI model for paging through report rows
type BrowseModel struct {
	width  int
	height int

	window report.TimeWindow
	rows   []report.Row

	cursor    int // index into rows, kept on the current page
	paginator paginator.Model
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Background(lipgloss.Color(ColorAccentMain)).
			Padding(0, 1)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Bold(true)
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(ColorBorder))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFailed))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
)

// NewBrowseModel creates a browser over already-projected rows
func NewBrowseModel(window report.TimeWindow, rows []report.Row) BrowseModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 15
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Render("•")
	p.InactiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render("•")
	p.SetTotalPages(max(len(rows), 1))

	return BrowseModel{
		window:    window,
		rows:      rows,
		paginator: p,
	}
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Height - title(2) - header(2) - paginator(1) - help(1) - margins(2)
		perPage := m.height - 8
		if perPage < 3 {
			perPage = 3
		}
		m.paginator.PerPage = perPage
		m.paginator.SetTotalPages(max(len(m.rows), 1))
		if m.paginator.Page >= m.paginator.TotalPages {
			m.paginator.Page = m.paginator.TotalPages - 1
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			start, _ := m.paginator.GetSliceBounds(len(m.rows))
			if m.cursor > start {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			_, end := m.paginator.GetSliceBounds(len(m.rows))
			if m.cursor < end-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.paginator, cmd = m.paginator.Update(msg)
	m.clampCursor()
	return m, cmd
}

// clampCursor keeps the cursor on the paginator's current page
func (m *BrowseModel) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = 0
		return
	}
	start, end := m.paginator.GetSliceBounds(len(m.rows))
	if m.cursor < start {
		m.cursor = start
	}
	if m.cursor >= end {
		m.cursor = end - 1
	}
}

// View renders the browser
func (m BrowseModel) View() string {
	var b strings.Builder

	title := fmt.Sprintf("Backup Sessions: %s (%d rows)", m.window.Label, len(m.rows))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(neutralStyle.Render("No sessions in this window."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("q: quit"))
		return b.String()
	}

	nameWidth, typeWidth := m.columnWidths()
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-*s %-*s %-19s %-10s %s",
		nameWidth, "NAME", typeWidth, "TYPE", "START", "DURATION", "RESULT")))
	b.WriteString("\n")

	start, end := m.paginator.GetSliceBounds(len(m.rows))
	for i := start; i < end; i++ {
		r := m.rows[i]
		line := fmt.Sprintf("  %-*s %-*s %-19s %-10s %s",
			nameWidth, truncate(r.Name, nameWidth),
			typeWidth, truncate(r.JobType, typeWidth),
			r.StartTime, r.Duration,
			resultStyle(r.Result).Render(string(r.Result)))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + m.paginator.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("  ↑/↓: row • ←/→: page • q: quit"))
	return b.String()
}

func (m BrowseModel) columnWidths() (int, int) {
	nameWidth, typeWidth := 20, 12
	for _, r := range m.rows {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
		if len(r.JobType) > typeWidth {
			typeWidth = len(r.JobType)
		}
	}
	if nameWidth > 36 {
		nameWidth = 36
	}
	if typeWidth > 18 {
		typeWidth = 18
	}
	return nameWidth, typeWidth
}

func resultStyle(result models.Result) lipgloss.Style {
	switch result {
	case models.ResultSuccess:
		return successStyle
	case models.ResultWarning:
		return warningStyle
	case models.ResultFailed:
		return failedStyle
	default:
		return neutralStyle
	}
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
