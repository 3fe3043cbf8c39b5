package domain

import (
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

// DayPhase labels where a protocol day sits in the adjustment arc.
type DayPhase string

const (
	PhasePreAdjustment    DayPhase = "pre_adjustment"
	PhaseFlightDay        DayPhase = "flight_day"
	PhaseArrivalDay       DayPhase = "arrival_day"
	PhaseActiveAdjustment DayPhase = "active_adjustment"
	PhaseFineTuning       DayPhase = "fine_tuning"
	PhaseAdjusted         DayPhase = "adjusted"
)

// ProtocolDay is one day of the adjustment schedule. Day numbers are
// negative pre-departure, zero on the flight day, positive at the
// destination.
// @Description One day of the circadian adjustment protocol.
type ProtocolDay struct {
	DayNumber int    `json:"day_number"`
	Date      string `json:"date"`
	// Timezone is the IANA zone whose wall clock all times on this day use.
	Timezone string   `json:"timezone"`
	Phase    DayPhase `json:"phase"`

	// Marker snapshot for this day, in the day's local clock.
	DLMO   clock.TimeOfDay `json:"dlmo"`
	CBTMin clock.TimeOfDay `json:"cbt_min"`

	BedTime  clock.TimeOfDay `json:"bed_time"`
	WakeTime clock.TimeOfDay `json:"wake_time"`

	// CumulativeShiftHours is the total phase shift achieved so far.
	CumulativeShiftHours float64 `json:"cumulative_shift_hours"`
	// AdjustmentProgress is 0-100, non-decreasing across destination days.
	AdjustmentProgress float64 `json:"adjustment_progress"`

	Interventions []Intervention `json:"interventions"`

	Summary string   `json:"summary"`
	Tips    []string `json:"tips,omitempty"`
}

// Protocol is the full generated adjustment schedule.
// @Description Day-by-day circadian adjustment protocol for one trip.
type Protocol struct {
	GeneratedAt time.Time `json:"generated_at"`

	Direction          Direction `json:"direction"`
	TimezoneShiftHours float64   `json:"timezone_shift_hours"`

	TargetBedTime  clock.TimeOfDay `json:"target_bed_time"`
	TargetWakeTime clock.TimeOfDay `json:"target_wake_time"`

	EstimatedDaysToAdjust int     `json:"estimated_days_to_adjust"`
	DailyShiftRateHours   float64 `json:"daily_shift_rate_hours"`

	Days []ProtocolDay `json:"days"`
}

// FlightDay returns the day numbered zero. A valid protocol has exactly one.
func (p *Protocol) FlightDay() *ProtocolDay {
	for i := range p.Days {
		if p.Days[i].DayNumber == 0 {
			return &p.Days[i]
		}
	}
	return nil
}

// Day returns the day with the given number, or nil.
func (p *Protocol) Day(number int) *ProtocolDay {
	for i := range p.Days {
		if p.Days[i].DayNumber == number {
			return &p.Days[i]
		}
	}
	return nil
}

// InterventionCount returns the total number of interventions across days.
func (p *Protocol) InterventionCount() int {
	n := 0
	for _, d := range p.Days {
		n += len(d.Interventions)
	}
	return n
}
