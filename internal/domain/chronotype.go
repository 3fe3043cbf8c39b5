package domain

import "github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"

// Chronotype is one of five ordered morningness-eveningness bands.
// @Description Chronotype band derived from MEQ score and/or corrected mid-sleep.
type Chronotype string

const (
	ChronotypeDefiniteMorning Chronotype = "definite_morning"
	ChronotypeModerateMorning Chronotype = "moderate_morning"
	ChronotypeIntermediate    Chronotype = "intermediate"
	ChronotypeModerateEvening Chronotype = "moderate_evening"
	ChronotypeDefiniteEvening Chronotype = "definite_evening"
)

// Confidence qualifies how many independent estimators backed a marker
// estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Window is a clock-time interval. Start may be later than End when the
// window wraps past midnight.
type Window struct {
	Start clock.TimeOfDay `json:"start"`
	End   clock.TimeOfDay `json:"end"`
}

// Contains reports whether t falls inside the window, honoring wraparound.
func (w Window) Contains(t clock.TimeOfDay) bool {
	span := w.Start.Until(w.End)
	return w.Start.Until(t) <= span
}

// ChronotypeProfile is the computed circadian assessment for a traveler.
// Immutable once computed; replaced wholesale on reassessment.
type ChronotypeProfile struct {
	// MEQScore is the summed questionnaire score in [16, 86], when available.
	MEQScore *int `json:"meq_score,omitempty"`
	// MidSleepCorrected is the sleep-debt-corrected mid-sleep on free days
	// (MSFsc), when schedule data was available.
	MidSleepCorrected *clock.TimeOfDay `json:"mid_sleep_corrected,omitempty"`

	Category   Chronotype `json:"category"`
	Confidence Confidence `json:"confidence"`

	// DLMO is the estimated dim light melatonin onset, as wall clock time.
	DLMO clock.TimeOfDay `json:"dlmo"`
	// CBTMin is the estimated core body temperature minimum.
	CBTMin clock.TimeOfDay `json:"cbt_min"`

	HabitualBedtime  clock.TimeOfDay `json:"habitual_bedtime"`
	HabitualWakeTime clock.TimeOfDay `json:"habitual_wake_time"`
	WorkdayBedtime   clock.TimeOfDay `json:"workday_bedtime"`
	WorkdayWakeTime  clock.TimeOfDay `json:"workday_wake_time"`
	FreeDayBedtime   clock.TimeOfDay `json:"free_day_bedtime"`
	FreeDayWakeTime  clock.TimeOfDay `json:"free_day_wake_time"`

	AvgSleepDurationMin int `json:"avg_sleep_duration_min"`

	// Light-timing windows derived from the estimated CBTmin.
	AdvanceWindow Window `json:"advance_window"`
	DelayWindow   Window `json:"delay_window"`
	DeadZone      Window `json:"dead_zone"`
}
