// Package report prints picker results and month grids as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/range-picker/internal/calendar"
	"github.com/username/range-picker/internal/daterange"
	"github.com/username/range-picker/pkg/dateutil"
)

// Supported formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// WeekdayHeader lists the grid columns, Sunday first
var WeekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type jsonResult struct {
	Range    [2]dateutil.Key `json:"range"`
	Weekends []dateutil.Key  `json:"weekends"`
}

type jsonDay struct {
	Day       *int   `json:"day"`
	IsWeekday bool   `json:"isWeekday"`
	DateKey   string `json:"dateKey"`
}

type jsonMonth struct {
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	LeadingBlanks int       `json:"leadingBlanks"`
	Weekdays      int       `json:"weekdays"`
	Weekends      int       `json:"weekends"`
	Days          []jsonDay `json:"days"`
}

// Writer prints results in one format. Text styling follows what out
// supports, so redirected output stays plain.
type Writer struct {
	out     io.Writer
	format  string
	heading lipgloss.Style
	weekend lipgloss.Style
}

// NewWriter returns a writer for format ("text" or "json")
func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	r := lipgloss.NewRenderer(out)
	return &Writer{
		out:     out,
		format:  format,
		heading: r.NewStyle().Bold(true),
		weekend: r.NewStyle().Faint(true),
	}, nil
}

// Result prints a selected range and its weekends
func (w *Writer) Result(r daterange.Result) error {
	if w.format == FormatJSON {
		return w.encode(jsonResult{
			Range:    [2]dateutil.Key{r.Range.Start, r.Range.End},
			Weekends: r.Weekends,
		})
	}

	_, err := fmt.Fprintf(w.out, "%s %s %s\n%s %s\n",
		w.heading.Render("Selected dates are:"),
		r.Range.Start, r.Range.End,
		w.heading.Render("Weekends are:"),
		JoinKeys(r.Weekends))
	return err
}

// Month prints a month grid
func (w *Writer) Month(m *calendar.Month) error {
	if w.format == FormatJSON {
		return w.encode(monthJSON(m))
	}
	_, err := io.WriteString(w.out, w.formatMonth(m))
	return err
}

// formatMonth renders a month as rows of seven right-aligned day numbers
func (w *Writer) formatMonth(m *calendar.Month) string {
	var b strings.Builder

	title := calendar.View{Year: m.Year, Month: m.Month}.String()
	width := len(WeekdayHeader)*4 - 1
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(w.heading.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Join(WeekdayHeader, " "))
	b.WriteString("\n")

	for _, row := range m.Rows() {
		cells := make([]string, len(row))
		for i, d := range row {
			switch {
			case d.IsBlank():
				cells[i] = "   "
			case d.IsWeekday:
				cells[i] = fmt.Sprintf("%3d", d.Day)
			default:
				cells[i] = w.weekend.Render(fmt.Sprintf("%3d", d.Day))
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func monthJSON(m *calendar.Month) jsonMonth {
	out := jsonMonth{
		Year:          m.Year,
		Month:         m.Month,
		LeadingBlanks: m.LeadingBlanks,
		Weekdays:      m.Weekdays,
		Weekends:      m.Weekends,
		Days:          make([]jsonDay, 0, len(m.Days)),
	}
	for _, d := range m.Days {
		day := jsonDay{IsWeekday: d.IsWeekday, DateKey: string(d.Key)}
		if !d.IsBlank() {
			n := d.Day
			day.Day = &n
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func (w *Writer) encode(v any) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// JoinKeys lists dates separated by spaces, or "(none)" when empty
func JoinKeys(keys []dateutil.Key) string {
	if len(keys) == 0 {
		return "(none)"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k.String()
	}
	return strings.Join(parts, " ")
}
