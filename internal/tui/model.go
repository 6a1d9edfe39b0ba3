// Package tui provides the interactive terminal date range picker.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/internal/selection"
	"go.uber.org/zap"
)

// Options configures a new Model
type Options struct {
	View     calendar.View
	Presets  []daterange.Preset
	YearSpan int // years reachable either side of the current year
	Now      func() time.Time
	Logger   *zap.Logger
}

// Model is the bubbletea model for the picker.
//
//nolint:recvcheck // Mixed receivers required by bubbletea's interface pattern
type Model struct {
	picker  selection.Picker
	month   *calendar.Month
	cursor  int // day of month under the cursor, 1-based
	presets []daterange.Preset
	now     func() time.Time
	minYear int
	maxYear int
	logger  *zap.Logger

	result   *daterange.Result
	status   string
	showHelp bool
	quitting bool
}

// NewModel creates a picker model
func NewModel(opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Presets == nil {
		opts.Presets = daterange.DefaultPresets()
	}
	if opts.YearSpan <= 0 {
		opts.YearSpan = 50
	}

	now := opts.Now()
	m := Model{
		picker:  selection.NewPicker(opts.View),
		presets: opts.Presets,
		now:     opts.Now,
		minYear: now.Year() - opts.YearSpan,
		maxYear: now.Year() + opts.YearSpan,
		logger:  opts.Logger,
	}
	m.month = m.picker.Grid()
	m.cursor = 1
	if opts.View == calendar.ViewOf(now) {
		m.cursor = now.Day()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
//
//nolint:ireturn // Required by tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(keyMsg, keys.Left):
		m.moveCursor(-1)

	case key.Matches(keyMsg, keys.Right):
		m.moveCursor(1)

	case key.Matches(keyMsg, keys.Up):
		m.moveCursor(-7)

	case key.Matches(keyMsg, keys.Down):
		m.moveCursor(7)

	case key.Matches(keyMsg, keys.PrevMonth):
		m.setView(m.picker.View.Prev())

	case key.Matches(keyMsg, keys.NextMonth):
		m.setView(m.picker.View.Next())

	case key.Matches(keyMsg, keys.PrevYear):
		m.setView(m.picker.View.AddYears(-1))

	case key.Matches(keyMsg, keys.NextYear):
		m.setView(m.picker.View.AddYears(1))

	case key.Matches(keyMsg, keys.Today):
		m.setView(calendar.ViewOf(m.now()))

	case key.Matches(keyMsg, keys.Select):
		m.selectCursor()

	case key.Matches(keyMsg, keys.Preset):
		m.applyPreset(int(keyMsg.Runes[0] - '1'))
	}

	return m, nil
}

// Result returns the last finished selection, if any
func (m Model) Result() *daterange.Result {
	return m.result
}

// Picker returns the current view state
func (m Model) Picker() selection.Picker {
	return m.picker
}

// Cursor returns the day of month under the cursor
func (m Model) Cursor() int {
	return m.cursor
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 1 || next > m.month.Len() {
		return
	}
	m.cursor = next
}

func (m *Model) setView(view calendar.View) {
	if view.Year < m.minYear || view.Year > m.maxYear {
		m.status = fmt.Sprintf("Years outside %d-%d are not available", m.minYear, m.maxYear)
		return
	}
	if view == m.picker.View {
		return
	}

	m.picker = m.picker.SetView(view)
	m.month = m.picker.Grid()
	if m.cursor > m.month.Len() {
		m.cursor = m.month.Len()
	}
	m.logger.Debug("View changed", zap.Stringer("view", view))
}

func (m *Model) selectCursor() {
	cell, ok := m.month.Cell(m.cursor)
	if !ok {
		return
	}
	if !cell.IsWeekday {
		m.status = "Weekends cannot be picked"
		return
	}

	var result *daterange.Result
	m.picker, result = m.picker.Click(cell.Key)
	if result == nil {
		return
	}

	m.result = result
	m.logger.Info("Range selected",
		zap.String("start", result.Range.Start.String()),
		zap.String("end", result.Range.End.String()),
		zap.Int("weekends", len(result.Weekends)))
}

func (m *Model) applyPreset(index int) {
	if index < 0 || index >= len(m.presets) {
		return
	}
	preset := m.presets[index]

	picker, result, err := m.picker.ApplyPreset(m.now(), preset.Days)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.picker = picker
	m.result = &result
	m.status = preset.Label
	m.logger.Info("Preset applied",
		zap.String("preset", preset.Label),
		zap.String("start", result.Range.Start.String()),
		zap.String("end", result.Range.End.String()))
}
