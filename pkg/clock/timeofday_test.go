package clock

import (
	"encoding/json"
	"math"
	"testing"
)

func TestAddWrapsAroundMidnight(t *testing.T) {
	tests := []struct {
		name  string
		start TimeOfDay
		hours float64
		want  string
	}{
		{"forward within day", New(9, 0), 2.5, "11:30"},
		{"forward past midnight", New(23, 0), 2, "01:00"},
		{"backward within day", New(9, 0), -2, "07:00"},
		{"backward past midnight", New(1, 30), -3, "22:30"},
		{"full day is identity", New(14, 15), 24, "14:15"},
		{"multiple days", New(6, 0), 50, "08:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Add(tt.hours).Format()
			if got != tt.want {
				t.Errorf("Add(%v) = %s, want %s", tt.hours, got, tt.want)
			}
		})
	}
}

func TestDiffHoursSign(t *testing.T) {
	tests := []struct {
		name string
		from TimeOfDay
		to   TimeOfDay
		want float64
	}{
		{"later same day", New(10, 0), New(14, 0), 4},
		{"earlier same day", New(14, 0), New(10, 0), -4},
		{"across midnight forward", New(23, 0), New(1, 0), 2},
		{"across midnight backward", New(1, 0), New(23, 0), -2},
		{"opposite takes positive", New(6, 0), New(18, 0), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.DiffHours(tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DiffHours(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestUntil(t *testing.T) {
	if got := New(22, 0).Until(New(7, 0)); math.Abs(got-9) > 1e-9 {
		t.Errorf("Until across midnight = %v, want 9", got)
	}
	if got := New(7, 0).Until(New(22, 0)); math.Abs(got-15) > 1e-9 {
		t.Errorf("Until within day = %v, want 15", got)
	}
}

func TestCircularMeanNearMidnight(t *testing.T) {
	tests := []struct {
		name  string
		times []TimeOfDay
		want  string
	}{
		{"straddling midnight", []TimeOfDay{New(23, 0), New(1, 0)}, "00:00"},
		{"both before midnight", []TimeOfDay{New(22, 0), New(23, 0)}, "22:30"},
		{"daytime values", []TimeOfDay{New(10, 0), New(14, 0)}, "12:00"},
		{"single value", []TimeOfDay{New(3, 45)}, "03:45"},
		{"empty", nil, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircularMean(tt.times).Format()
			if got != tt.want {
				t.Errorf("CircularMean(%v) = %s, want %s", tt.times, got, tt.want)
			}
		})
	}
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "06:30", "12:00", "23:59"} {
		parsed, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		if parsed.Format() != s {
			t.Errorf("round trip of %q = %q", s, parsed.Format())
		}
	}

	for _, s := range []string{"24:00", "12:60", "noon", "9", ""} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) should have failed", s)
		}
	}
}

func TestJSONEncoding(t *testing.T) {
	type payload struct {
		Bedtime TimeOfDay `json:"bedtime"`
	}

	data, err := json.Marshal(payload{Bedtime: New(22, 45)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"bedtime":"22:45"}` {
		t.Errorf("marshal = %s", data)
	}

	var decoded payload
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Bedtime.Format() != "22:45" {
		t.Errorf("unmarshal = %s", decoded.Bedtime)
	}
}
