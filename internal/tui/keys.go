package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keybindings for the picker.
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Preset    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("left/h", "previous day"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("right/l", "next day"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "previous week"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("down/j", "next week"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "pick date"),
	),
	PrevMonth: key.NewBinding(
		key.WithKeys("p", "pgup"),
		key.WithHelp("p", "previous month"),
	),
	NextMonth: key.NewBinding(
		key.WithKeys("n", "pgdown"),
		key.WithHelp("n", "next month"),
	),
	PrevYear: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "previous year"),
	),
	NextYear: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "next year"),
	),
	Today: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "this month"),
	),
	Preset: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "last N days"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}
