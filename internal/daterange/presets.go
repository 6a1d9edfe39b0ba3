package daterange

import (
	"fmt"
	"time"
)

// Preset is a predefined "last N days" shortcut
type Preset struct {
	Label string
	Days  int
}

// DefaultPresetDays are the shortcuts offered when none are configured
var DefaultPresetDays = []int{7, 30}

// DefaultPresets returns the default shortcuts
func DefaultPresets() []Preset {
	return PresetsFor(DefaultPresetDays)
}

// PresetsFor labels each day count as "Last N days"
func PresetsFor(days []int) []Preset {
	presets := make([]Preset, 0, len(days))
	for _, n := range days {
		presets = append(presets, Preset{
			Label: fmt.Sprintf("Last %d days", n),
			Days:  n,
		})
	}
	return presets
}

// Apply computes the preset's range ending today
func (p Preset) Apply(today time.Time) (Result, error) {
	return LastNDays(today, p.Days)
}
