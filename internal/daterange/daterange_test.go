package daterange

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/username/range-picker/pkg/dateutil"
)

func TestEnumerateWeekends(t *testing.T) {
	tests := []struct {
		name  string
		start dateutil.Key
		end   dateutil.Key
		want  []dateutil.Key
	}{
		{
			name:  "Thursday to Sunday",
			start: "2024-02-01",
			end:   "2024-02-04",
			want:  []dateutil.Key{"2024-02-03", "2024-02-04"},
		},
		{
			name:  "single Saturday",
			start: "2024-02-03",
			end:   "2024-02-03",
			want:  []dateutil.Key{"2024-02-03"},
		},
		{
			name:  "single Wednesday",
			start: "2024-02-07",
			end:   "2024-02-07",
			want:  []dateutil.Key{},
		},
		{
			name:  "across month and leap day",
			start: "2024-02-29",
			end:   "2024-03-04",
			want:  []dateutil.Key{"2024-03-02", "2024-03-03"},
		},
		{
			name:  "across year end",
			start: "2022-12-30",
			end:   "2023-01-02",
			want:  []dateutil.Key{"2022-12-31", "2023-01-01"},
		},
		{
			name:  "reversed range",
			start: "2024-02-10",
			end:   "2024-02-01",
			want:  []dateutil.Key{},
		},
		{
			name:  "invalid key",
			start: "not-a-date",
			end:   "2024-02-01",
			want:  []dateutil.Key{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnumerateWeekends(tt.start, tt.end)
			if got == nil {
				t.Fatalf("EnumerateWeekends(%v, %v) returned nil", tt.start, tt.end)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EnumerateWeekends(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestEnumerateWeekends_Monotonic(t *testing.T) {
	start := dateutil.Key("2023-11-15")
	prev := EnumerateWeekends(start, start)

	for end := start.AddDays(1); end <= "2024-03-31"; end = end.AddDays(1) {
		got := EnumerateWeekends(start, end)

		if len(got) < len(prev) || len(got) > len(prev)+1 {
			t.Fatalf("extending to %v changed length %d -> %d", end, len(prev), len(got))
		}
		if !reflect.DeepEqual(got[:len(prev)], prev) {
			t.Fatalf("extending to %v removed or reordered dates", end)
		}
		if len(got) == len(prev)+1 && got[len(got)-1] != end {
			t.Fatalf("extending to %v appended %v", end, got[len(got)-1])
		}
		for i := 1; i < len(got); i++ {
			if got[i-1] >= got[i] {
				t.Fatalf("weekends not strictly increasing: %v", got)
			}
		}
		prev = got
	}
}

func TestLastNDays(t *testing.T) {
	// 2024-03-10 is a Sunday.
	today := time.Date(2024, 3, 10, 15, 4, 5, 0, time.Local)

	result, err := LastNDays(today, 7)
	if err != nil {
		t.Fatalf("LastNDays() error = %v", err)
	}

	wantRange := Range{Start: "2024-03-03", End: "2024-03-10"}
	if result.Range != wantRange {
		t.Errorf("Range = %+v, want %+v", result.Range, wantRange)
	}

	wantWeekends := []dateutil.Key{"2024-03-03", "2024-03-09", "2024-03-10"}
	if !reflect.DeepEqual(result.Weekends, wantWeekends) {
		t.Errorf("Weekends = %v, want %v", result.Weekends, wantWeekends)
	}
}

func TestLastNDays_LocalDate(t *testing.T) {
	// Late evening west of UTC must not roll over to the next UTC day.
	loc := time.FixedZone("UTC-10", -10*3600)
	today := time.Date(2024, 3, 10, 23, 30, 0, 0, loc)

	result, err := LastNDays(today, 1)
	if err != nil {
		t.Fatalf("LastNDays() error = %v", err)
	}
	if result.Range.End != "2024-03-10" || result.Range.Start != "2024-03-09" {
		t.Errorf("Range = %+v, want 2024-03-09..2024-03-10", result.Range)
	}
}

func TestLastNDays_InvalidCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		if _, err := LastNDays(time.Now(), n); !errors.Is(err, ErrInvalidDays) {
			t.Errorf("LastNDays(%d) error = %v, want ErrInvalidDays", n, err)
		}
	}
}

func TestRange(t *testing.T) {
	r := Range{Start: "2024-02-01", End: "2024-02-04"}

	if r.Days() != 4 {
		t.Errorf("Days() = %d, want 4", r.Days())
	}
	if !r.Contains("2024-02-01") || !r.Contains("2024-02-04") || !r.Contains("2024-02-02") {
		t.Error("Contains() should include endpoints and interior")
	}
	if r.Contains("2024-01-31") || r.Contains("2024-02-05") {
		t.Error("Contains() should exclude dates outside the range")
	}
	if (Range{Start: "2024-02-04", End: "2024-02-01"}).Days() != 0 {
		t.Error("reversed range should have no days")
	}
}

func TestPresets(t *testing.T) {
	presets := DefaultPresets()
	if len(presets) != 2 || presets[0].Label != "Last 7 days" || presets[1].Days != 30 {
		t.Fatalf("DefaultPresets() = %+v", presets)
	}

	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	result, err := presets[1].Apply(today)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if result.Range.Start != "2024-02-09" {
		t.Errorf("Start = %v, want 2024-02-09", result.Range.Start)
	}
}
