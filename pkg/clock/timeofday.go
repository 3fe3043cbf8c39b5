// Package clock provides a wall-clock time-of-day value with modulo-24
// arithmetic and circular averaging, so that times near midnight can be
// shifted and combined without manual wraparound guards.
package clock

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time expressed as fractional hours in [0, 24).
type TimeOfDay float64

// New builds a TimeOfDay from hour and minute components.
func New(hour, minute int) TimeOfDay {
	return normalize(float64(hour) + float64(minute)/60.0)
}

// FromHours builds a TimeOfDay from fractional hours, wrapping into [0, 24).
func FromHours(hours float64) TimeOfDay {
	return normalize(hours)
}

// FromMinutes builds a TimeOfDay from minutes after midnight.
func FromMinutes(minutes int) TimeOfDay {
	return normalize(float64(minutes) / 60.0)
}

// FromTime extracts the local clock component of a time.Time.
func FromTime(t time.Time) TimeOfDay {
	return New(t.Hour(), t.Minute())
}

// Parse reads "HH:MM" into a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return New(h, m), nil
}

func normalize(hours float64) TimeOfDay {
	h := math.Mod(hours, 24)
	if h < 0 {
		h += 24
	}
	return TimeOfDay(h)
}

// Hours returns the value as fractional hours in [0, 24).
func (t TimeOfDay) Hours() float64 {
	return float64(t)
}

// Hour returns the whole-hour component.
func (t TimeOfDay) Hour() int {
	return t.minutes() / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return t.minutes() % 60
}

// minutes rounds to the nearest minute, wrapping 23:59:30+ back to 00:00.
func (t TimeOfDay) minutes() int {
	m := int(math.Round(float64(t) * 60))
	return ((m % 1440) + 1440) % 1440
}

// Add shifts the time forward (or backward for negative values) by the given
// number of hours, wrapping around midnight.
func (t TimeOfDay) Add(hours float64) TimeOfDay {
	return normalize(float64(t) + hours)
}

// Until returns the hours from t forward to other, in [0, 24).
func (t TimeOfDay) Until(other TimeOfDay) float64 {
	d := math.Mod(float64(other)-float64(t), 24)
	if d < 0 {
		d += 24
	}
	return d
}

// DiffHours returns the signed shortest distance from t to other, in
// (-12, 12]. Positive means other is later on the circle.
func (t TimeOfDay) DiffHours(other TimeOfDay) float64 {
	d := t.Until(other)
	if d > 12 {
		d -= 24
	}
	return d
}

// Format renders the time as "HH:MM".
func (t TimeOfDay) Format() string {
	m := t.minutes()
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

func (t TimeOfDay) String() string {
	return t.Format()
}

// MarshalJSON encodes the time as an "HH:MM" string.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CircularMean averages clock times as angles on the 24-hour circle, so that
// e.g. 23:00 and 01:00 average to 00:00 rather than 12:00. Returns 00:00 for
// an empty input.
func CircularMean(times []TimeOfDay) TimeOfDay {
	if len(times) == 0 {
		return 0
	}

	var sumSin, sumCos float64
	for _, t := range times {
		angle := float64(t) / 24 * 2 * math.Pi
		sumSin += math.Sin(angle)
		sumCos += math.Cos(angle)
	}

	// Degenerate case: times evenly spread around the circle. Fall back to
	// the arithmetic mean of the raw values.
	if math.Abs(sumSin) < 1e-9 && math.Abs(sumCos) < 1e-9 {
		var sum float64
		for _, t := range times {
			sum += float64(t)
		}
		return normalize(sum / float64(len(times)))
	}

	angle := math.Atan2(sumSin, sumCos)
	return normalize(angle / (2 * math.Pi) * 24)
}
