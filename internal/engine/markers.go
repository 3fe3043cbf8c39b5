package engine

import (
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/prc"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

const (
	// dlmoToCBTMinHours separates DLMO from the core body temperature
	// minimum: CBTmin sits about 7 hours after melatonin onset.
	dlmoToCBTMinHours = 7.0

	// wakeToCBTMinHours places CBTmin about 2.5 hours before habitual wake.
	wakeToCBTMinHours = 2.5

	// sleepLatencyHours is the assumed time from lights-out to sleep onset.
	sleepLatencyHours = 0.25

	// defaultDLMOHours is the population-typical DLMO used when no estimator
	// is available. Results built on it are tagged low confidence.
	defaultDLMOHours = 21.0
)

// MarkerInput carries the independent weak estimators available for a
// traveler. Any field may be nil.
type MarkerInput struct {
	MEQScore          *int
	MidSleepCorrected *clock.TimeOfDay
	HabitualBedtime   *clock.TimeOfDay
	HabitualWakeTime  *clock.TimeOfDay
}

// Markers is the fused circadian marker estimate.
type Markers struct {
	DLMO       clock.TimeOfDay
	CBTMin     clock.TimeOfDay
	Confidence domain.Confidence

	AdvanceWindow domain.Window
	DelayWindow   domain.Window
	DeadZone      domain.Window
}

// dlmoFromMEQ maps the questionnaire score linearly: score 16 -> 23:30,
// score 86 -> 19:00. Extreme morning types have earlier melatonin onset.
func dlmoFromMEQ(score int) clock.TimeOfDay {
	return clock.FromHours(23.5 - float64(score-MEQMinScore)*4.5/70)
}

// EstimateMarkers fuses the available estimators into DLMO and CBTmin point
// estimates using circular averaging, so times straddling midnight combine
// correctly.
func EstimateMarkers(in MarkerInput) Markers {
	var dlmoEstimates []clock.TimeOfDay

	if in.MEQScore != nil {
		dlmoEstimates = append(dlmoEstimates, dlmoFromMEQ(*in.MEQScore))
	}
	if in.MidSleepCorrected != nil {
		// DLMO sits about 6 hours before corrected mid-sleep.
		dlmoEstimates = append(dlmoEstimates, in.MidSleepCorrected.Add(-6))
	}
	if in.HabitualBedtime != nil {
		// DLMO precedes sleep onset by about 2 hours.
		dlmoEstimates = append(dlmoEstimates,
			in.HabitualBedtime.Add(sleepLatencyHours-2))
	}

	var dlmo clock.TimeOfDay
	if len(dlmoEstimates) == 0 {
		dlmo = clock.FromHours(defaultDLMOHours)
	} else {
		dlmo = clock.CircularMean(dlmoEstimates)
	}

	cbtEstimates := []clock.TimeOfDay{dlmo.Add(dlmoToCBTMinHours)}
	if in.HabitualWakeTime != nil {
		cbtEstimates = append(cbtEstimates,
			in.HabitualWakeTime.Add(-wakeToCBTMinHours))
	}
	cbtMin := clock.CircularMean(cbtEstimates)

	confidence := domain.ConfidenceLow
	switch {
	case in.MEQScore != nil && in.MidSleepCorrected != nil:
		confidence = domain.ConfidenceHigh
	case in.MEQScore != nil || in.MidSleepCorrected != nil:
		confidence = domain.ConfidenceMedium
	}

	light := prc.Light()
	advance, _ := OptimalWindowFor(light, domain.DirectionEastward, cbtMin)
	delay, _ := OptimalWindowFor(light, domain.DirectionWestward, cbtMin)

	return Markers{
		DLMO:       dlmo,
		CBTMin:     cbtMin,
		Confidence: confidence,
		AdvanceWindow: advance,
		DelayWindow:   delay,
		DeadZone: domain.Window{
			Start: cbtMin.Add(light.DeadZoneStart),
			End:   cbtMin.Add(light.DeadZoneEnd),
		},
	}
}

// EstimateCBTMinFromDLMO derives CBTmin from DLMO by the fixed 7-hour offset.
func EstimateCBTMinFromDLMO(dlmo clock.TimeOfDay) clock.TimeOfDay {
	return dlmo.Add(dlmoToCBTMinHours)
}
