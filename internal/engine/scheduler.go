package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

const (
	// Base shift rates in hours per day with interventions. Delaying the
	// clock is physiologically easier than advancing it.
	baseAdvanceRateHours = 1.5
	baseDelayRateHours   = 2.0

	// aggressiveRateMultiplier applies when the traveler opts into a more
	// demanding schedule. Multiplicative so the west>=east rate ordering is
	// preserved.
	aggressiveRateMultiplier = 1.15

	// preShiftPerDayHours is the schedule nudge applied on each
	// pre-departure day.
	preShiftPerDayHours = 0.5

	// wakeClampHours caps how far wake time may move from habitual during
	// pre-departure shifting. Heuristic; see DESIGN.md.
	wakeClampHours = 2.0

	// adjustedToleranceHours: below this remaining gap the traveler counts
	// as adjusted. Heuristic; see DESIGN.md.
	adjustedToleranceHours = 0.5

	// fineTuningDays extends the schedule past the estimated adjustment.
	fineTuningDays = 2
)

// adaptationFactors divide the base rate per chronotype: morning types find
// advances easier, evening types find delays easier. Values stay within
// [0.8, 1.2] and are chosen so the westward rate never drops below the
// eastward rate for the same chronotype.
var adaptationFactors = map[domain.Chronotype]struct{ east, west float64 }{
	domain.ChronotypeDefiniteMorning: {east: 0.85, west: 1.1},
	domain.ChronotypeModerateMorning: {east: 0.9, west: 1.05},
	domain.ChronotypeIntermediate:    {east: 1.0, west: 1.0},
	domain.ChronotypeModerateEvening: {east: 1.05, west: 0.9},
	domain.ChronotypeDefiniteEvening: {east: 1.2, west: 0.8},
}

// GenerateOptions carries cross-cutting generation knobs. Now is injected so
// identical inputs always produce structurally identical protocols.
type GenerateOptions struct {
	Now func() time.Time
}

func (o GenerateOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now().UTC()
}

// schedulerState is the marker triple threaded across days, expressed in the
// current day's local wall clock.
type schedulerState struct {
	dlmo   clock.TimeOfDay
	cbtMin clock.TimeOfDay
	bed    clock.TimeOfDay
	wake   clock.TimeOfDay
}

func (s schedulerState) shifted(hours float64) schedulerState {
	return schedulerState{
		dlmo:   s.dlmo.Add(hours),
		cbtMin: s.cbtMin.Add(hours),
		bed:    s.bed.Add(hours),
		wake:   s.wake.Add(hours),
	}
}

// GenerateProtocol walks the trip timeline and builds the complete
// day-by-day adjustment protocol. Malformed inputs fail fast with a
// ValidationError before any day is generated.
func GenerateProtocol(trip domain.Trip, profile domain.ChronotypeProfile, prefs domain.UserPreferences, opts GenerateOptions) (*domain.Protocol, error) {
	if err := validateTrip(trip); err != nil {
		return nil, err
	}

	shift := trip.TimezoneShiftHours
	absShift := math.Abs(shift)
	direction := trip.Direction
	if direction == "" {
		direction = trip.ExpectedDirection()
	}

	rate := dailyShiftRate(profile.Category, direction, prefs.AggressiveAdjustment)

	daysToAdjust := 0
	if absShift > 0 {
		daysToAdjust = int(math.Ceil(absShift / rate))
	}

	preDays := preDepartureDays(trip.TripDurationDays, absShift)

	// Sign of the daily wall-clock movement: advancing means earlier times.
	shiftSign := 1.0
	if direction == domain.DirectionEastward {
		shiftSign = -1.0
	}

	state := schedulerState{
		dlmo:   profile.DLMO,
		cbtMin: profile.CBTMin,
		bed:    profile.HabitualBedtime,
		wake:   profile.HabitualWakeTime,
	}

	avgSleepMin := profile.AvgSleepDurationMin
	if avgSleepMin <= 0 {
		avgSleepMin = int(profile.HabitualBedtime.Until(profile.HabitualWakeTime) * 60)
	}

	progress := func(cumulative float64) float64 {
		// Zero-shift trips are degenerate: the traveler is already adjusted,
		// so progress reports 100 instead of dividing by zero.
		if absShift == 0 {
			return 100
		}
		p := cumulative / absShift * 100
		if p > 100 {
			p = 100
		}
		return math.Round(p*10) / 10
	}

	cumulative := 0.0
	var days []domain.ProtocolDay

	// Pre-departure days, in the origin zone.
	for i := preDays; i >= 1; i-- {
		dayNumber := -i

		shiftedState := state.shifted(shiftSign * preShiftPerDayHours)
		shiftedState.wake = clampWake(shiftedState.wake, profile.HabitualWakeTime)
		state = shiftedState
		cumulative += preShiftPerDayHours

		ctx := dayContext{
			dayNumber:   dayNumber,
			direction:   direction,
			bed:         state.bed,
			wake:        state.wake,
			dlmo:        state.dlmo,
			cbtMin:      state.cbtMin,
			avgSleepMin: avgSleepMin,
			prefs:       prefs,
		}

		days = append(days, domain.ProtocolDay{
			DayNumber:            dayNumber,
			Date:                 dayDate(trip, dayNumber),
			Timezone:             trip.OriginTimezone,
			Phase:                dayPhase(dayNumber, daysToAdjust),
			DLMO:                 state.dlmo,
			CBTMin:               state.cbtMin,
			BedTime:              state.bed,
			WakeTime:             state.wake,
			CumulativeShiftHours: round1(cumulative),
			AdjustmentProgress:   progress(cumulative),
			Interventions:        generateDayInterventions(ctx),
			Summary: fmt.Sprintf("Shift your schedule %d minutes %s tonight to get a head start.",
				int(preShiftPerDayHours*60), shiftWord(direction)),
			Tips: []string{
				"Small shifts now mean fewer rough days after landing.",
				"Keep the new times on weekends too.",
			},
		})
	}

	// Flight day: switch to the destination wall clock.
	destState := state.shifted(shift)

	flightInterventions := CalculateFlightTimeline(FlightInput{
		DepartureLocal: clock.FromTime(trip.DepartureLocal),
		ArrivalLocal:   clock.FromTime(trip.ArrivalLocal),
		DurationMin:    trip.FlightDurationMin,
		ShiftHours:     shift,
		Direction:      direction,
		DestBedtime:    profile.HabitualBedtime,
		DestCBTMin:     destState.cbtMin,
		Preferences:    prefs,
	})

	days = append(days, domain.ProtocolDay{
		DayNumber:            0,
		Date:                 dayDate(trip, 0),
		Timezone:             trip.DestinationTimezone,
		Phase:                domain.PhaseFlightDay,
		DLMO:                 destState.dlmo,
		CBTMin:               destState.cbtMin,
		BedTime:              destState.bed,
		WakeTime:             destState.wake,
		CumulativeShiftHours: round1(cumulative),
		AdjustmentProgress:   progress(cumulative),
		Interventions:        flightInterventions,
		Summary: fmt.Sprintf("Travel day: %s to %s. Live on %s time from boarding onward.",
			trip.OriginCity, trip.DestinationCity, trip.DestinationCity),
		Tips: []string{
			"Hydrate; cabin air is dry and dehydration worsens jet lag symptoms.",
			"Skip alcohol; it fragments whatever sleep you get.",
		},
	})

	state = destState

	// Destination days.
	destDayCount := trip.TripDurationDays
	if daysToAdjust+fineTuningDays > destDayCount {
		destDayCount = daysToAdjust + fineTuningDays
	}

	for dayNumber := 1; dayNumber <= destDayCount; dayNumber++ {
		remaining := absShift - cumulative
		if remaining >= adjustedToleranceHours {
			applied := math.Min(rate, remaining)
			if applied > MaxDailyShiftHours {
				applied = MaxDailyShiftHours
			}
			state = state.shifted(shiftSign * applied)
			cumulative += applied
		}

		ctx := dayContext{
			dayNumber:   dayNumber,
			direction:   direction,
			bed:         state.bed,
			wake:        state.wake,
			dlmo:        state.dlmo,
			cbtMin:      state.cbtMin,
			avgSleepMin: avgSleepMin,
			prefs:       prefs,
		}

		phase := dayPhase(dayNumber, daysToAdjust)
		days = append(days, domain.ProtocolDay{
			DayNumber:            dayNumber,
			Date:                 dayDate(trip, dayNumber),
			Timezone:             trip.DestinationTimezone,
			Phase:                phase,
			DLMO:                 state.dlmo,
			CBTMin:               state.cbtMin,
			BedTime:              state.bed,
			WakeTime:             state.wake,
			CumulativeShiftHours: round1(cumulative),
			AdjustmentProgress:   progress(cumulative),
			Interventions:        generateDayInterventions(ctx),
			Summary:              destinationDaySummary(phase, dayNumber),
			Tips:                 destinationDayTips(phase),
		})
	}

	return &domain.Protocol{
		GeneratedAt:           opts.now(),
		Direction:             direction,
		TimezoneShiftHours:    shift,
		TargetBedTime:         profile.HabitualBedtime,
		TargetWakeTime:        profile.HabitualWakeTime,
		EstimatedDaysToAdjust: daysToAdjust,
		DailyShiftRateHours:   round1(rate),
		Days:                  days,
	}, nil
}

func validateTrip(trip domain.Trip) error {
	if trip.TripDurationDays <= 0 {
		return domain.NewValidationError("trip_duration_days", "must be positive")
	}
	if trip.FlightDurationMin <= 0 {
		return domain.NewValidationError("flight_duration_min", "must be positive")
	}
	if math.Abs(trip.TimezoneShiftHours) > 14 {
		return domain.NewValidationError("timezone_shift_hours", "must be within [-14, 14]")
	}
	if trip.Direction != "" && trip.Direction != trip.ExpectedDirection() {
		return domain.NewValidationError("direction", "inconsistent with the sign of the timezone shift")
	}
	return nil
}

// dailyShiftRate is the base directional rate divided by the chronotype
// adaptation factor.
func dailyShiftRate(category domain.Chronotype, direction domain.Direction, aggressive bool) float64 {
	rate := baseAdvanceRateHours
	if direction == domain.DirectionWestward {
		rate = baseDelayRateHours
	}
	if aggressive {
		rate *= aggressiveRateMultiplier
	}

	factors, ok := adaptationFactors[category]
	if !ok {
		factors = adaptationFactors[domain.ChronotypeIntermediate]
	}
	if direction == domain.DirectionWestward {
		return rate / factors.west
	}
	return rate / factors.east
}

// preDepartureDays picks how many days of advance shifting the trip gets:
// none on very short trips, two on short trips or small shifts, three
// otherwise.
func preDepartureDays(tripDurationDays int, absShiftHours float64) int {
	switch {
	case absShiftHours == 0:
		return 0
	case tripDurationDays <= 2:
		return 0
	case tripDurationDays <= 4 || absShiftHours <= 3:
		return 2
	default:
		return 3
	}
}

// dayPhase labels a day purely from its number and the adjustment estimate.
func dayPhase(dayNumber, estimatedDaysToAdjust int) domain.DayPhase {
	switch {
	case dayNumber < 0:
		return domain.PhasePreAdjustment
	case dayNumber == 0:
		return domain.PhaseFlightDay
	case dayNumber == 1:
		return domain.PhaseArrivalDay
	case dayNumber <= estimatedDaysToAdjust:
		return domain.PhaseActiveAdjustment
	case dayNumber <= estimatedDaysToAdjust+fineTuningDays:
		return domain.PhaseFineTuning
	default:
		return domain.PhaseAdjusted
	}
}

// clampWake keeps the shifted wake time within two hours of habitual.
func clampWake(wake, habitual clock.TimeOfDay) clock.TimeOfDay {
	diff := habitual.DiffHours(wake)
	if diff > wakeClampHours {
		return habitual.Add(wakeClampHours)
	}
	if diff < -wakeClampHours {
		return habitual.Add(-wakeClampHours)
	}
	return wake
}

func dayDate(trip domain.Trip, dayNumber int) string {
	return trip.DepartureLocal.AddDate(0, 0, dayNumber).Format("2006-01-02")
}

func shiftWord(direction domain.Direction) string {
	if direction == domain.DirectionEastward {
		return "earlier"
	}
	return "later"
}

func destinationDaySummary(phase domain.DayPhase, dayNumber int) string {
	switch phase {
	case domain.PhaseArrivalDay:
		return "First day at destination: light timing today matters more than any other day."
	case domain.PhaseActiveAdjustment:
		return fmt.Sprintf("Day %d: keep shifting sleep and light toward the local schedule.", dayNumber)
	case domain.PhaseFineTuning:
		return "Nearly there: hold the local schedule and let the last hour settle."
	default:
		return "Adjusted: live on the local schedule."
	}
}

func destinationDayTips(phase domain.DayPhase) []string {
	switch phase {
	case domain.PhaseArrivalDay:
		return []string{
			"Get outside as soon as the light window opens.",
			"Push through to the target bedtime; going down early undoes the day.",
		}
	case domain.PhaseActiveAdjustment:
		return []string{"Consistency beats intensity: same times every day."}
	case domain.PhaseFineTuning:
		return []string{"If you wake early or late, stay in bed until the target wake time."}
	default:
		return nil
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
