package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/report"
	"github.com/username/range-picker/internal/selection"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true)

	weekdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	weekendStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	endpointStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("27"))

	inRangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("67"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(lipgloss.Color("212"))

	resultLabelStyle = lipgloss.NewStyle().
				Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("< %s >", m.picker.View)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(strings.Join(report.WeekdayHeader, " ")))
	b.WriteString("\n")

	for _, row := range m.month.Rows() {
		cells := make([]string, len(row))
		for i, d := range row {
			cells[i] = m.renderCell(d)
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSelection())

	if len(m.presets) > 0 {
		parts := make([]string, len(m.presets))
		for i, p := range m.presets {
			parts[i] = fmt.Sprintf("[%d] %s", i+1, p.Label)
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(parts, "  "))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpView()))
	return b.String()
}

func (m Model) renderCell(d calendar.Day) string {
	if d.IsBlank() {
		return "   "
	}

	return m.cellStyle(d).Render(fmt.Sprintf("%3d", d.Day))
}

// cellStyle layers the cursor over the selection highlight of d
func (m Model) cellStyle(d calendar.Day) lipgloss.Style {
	var style lipgloss.Style
	switch {
	case selection.IsEndpoint(m.picker.State, d.Key):
		style = endpointStyle
	case selection.InRange(m.picker.State, d.Key):
		style = inRangeStyle
	case d.IsWeekday:
		style = weekdayStyle
	default:
		style = weekendStyle
	}

	if d.Day == m.cursor {
		return cursorStyle.Inherit(style)
	}
	return style
}

func (m Model) renderSelection() string {
	var b strings.Builder

	start, end := selection.Bounds(m.picker.State)
	switch m.picker.State.Phase() {
	case selection.PhaseEmpty:
		b.WriteString("Pick a start date\n")
	case selection.PhasePendingEnd:
		fmt.Fprintf(&b, "Start %s, pick an end date\n", start)
	case selection.PhaseComplete:
		fmt.Fprintf(&b, "Range %s .. %s\n", start, end)
	}

	if m.result != nil {
		fmt.Fprintf(&b, "%s %s %s\n",
			resultLabelStyle.Render("Selected dates are:"),
			m.result.Range.Start, m.result.Range.End)
		fmt.Fprintf(&b, "%s %s\n",
			resultLabelStyle.Render("Weekends are:"),
			report.JoinKeys(m.result.Weekends))
	}
	return b.String()
}

func (m Model) helpView() string {
	bindings := []key.Binding{keys.Select, keys.PrevMonth, keys.NextMonth, keys.Preset, keys.Help, keys.Quit}
	if m.showHelp {
		bindings = []key.Binding{
			keys.Left, keys.Right, keys.Up, keys.Down, keys.Select,
			keys.PrevMonth, keys.NextMonth, keys.PrevYear, keys.NextYear,
			keys.Today, keys.Preset, keys.Help, keys.Quit,
		}
	}

	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		h := kb.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	sep := " • "
	if m.showHelp {
		sep = "\n"
	}
	return strings.Join(parts, sep)
}
