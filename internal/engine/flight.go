package engine

import (
	"fmt"
	"sort"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

const (
	// Scan resolutions over the flight interval.
	sleepScanStepMin = 30
	wakeScanStepMin  = 60

	// Nap lengths: 20 minutes stays out of deep sleep, 90 minutes completes
	// a full cycle. Intermediate durations risk waking mid-cycle groggy.
	powerNapMin  = 20
	fullCycleMin = 90

	// A 90-minute nap is only worth starting with at least 2 hours left.
	fullCycleMinRemainingMin = 120

	maxNapWindows = 2

	boardingLeadHours = 0.5
)

// FlightInput describes the travel day for the flight-day sub-scheduler.
// All clock values are wall-clock times of day; DestBedtime and DestCBTMin
// are expressed in the destination zone.
type FlightInput struct {
	DepartureLocal clock.TimeOfDay
	ArrivalLocal   clock.TimeOfDay
	DurationMin    int
	ShiftHours     float64
	Direction      domain.Direction

	DestBedtime clock.TimeOfDay
	DestCBTMin  clock.TimeOfDay

	Preferences domain.UserPreferences
}

// destLocalAt converts minutes since takeoff into destination wall-clock
// time: origin clock at that instant plus the zone shift, modulo 24.
func (in FlightInput) destLocalAt(minutes int) clock.TimeOfDay {
	return in.DepartureLocal.Add(float64(minutes)/60 + in.ShiftHours)
}

// destNight covers 21:00-07:00 destination time; destDay covers 08:00-20:59.
// The gaps are transition hours that count as neither.
func destNight(t clock.TimeOfDay) bool {
	h := t.Hour()
	return h >= 21 || h < 7
}

func destDay(t clock.TimeOfDay) bool {
	h := t.Hour()
	return h >= 8 && h <= 20
}

// stepWindow is a window found by scanning the flight in fixed steps,
// expressed as minutes since takeoff.
type stepWindow struct {
	startMin    int
	durationMin int
}

// scanNapWindows folds over the flight in 30-minute steps and collects up to
// two non-overlapping nap windows from night-classified steps. The scan
// resumes at the next step boundary past each placed window, which makes the
// non-overlap invariant structural rather than incidental.
func scanNapWindows(in FlightInput) []stepWindow {
	var windows []stepWindow

	for t := 0; t+powerNapMin <= in.DurationMin && len(windows) < maxNapWindows; {
		if !destNight(in.destLocalAt(t)) {
			t += sleepScanStepMin
			continue
		}

		napLen := powerNapMin
		if in.DurationMin-t >= fullCycleMinRemainingMin {
			napLen = fullCycleMin
		}
		windows = append(windows, stepWindow{startMin: t, durationMin: napLen})

		// Advance past the placed window to the next step boundary.
		t += napLen
		if rem := t % sleepScanStepMin; rem != 0 {
			t += sleepScanStepMin - rem
		}
	}

	return windows
}

// scanStayAwakeWindow finds the first contiguous run of day-classified
// 60-minute steps and consolidates it into a single window.
func scanStayAwakeWindow(in FlightInput) (stepWindow, bool) {
	start := -1
	end := -1

	for t := 0; t < in.DurationMin; t += wakeScanStepMin {
		if destDay(in.destLocalAt(t)) {
			if start < 0 {
				start = t
			}
			end = t + wakeScanStepMin
			continue
		}
		if start >= 0 {
			break
		}
	}

	if start < 0 {
		return stepWindow{}, false
	}
	if end > in.DurationMin {
		end = in.DurationMin
	}
	return stepWindow{startMin: start, durationMin: end - start}, true
}

// scanCaffeineWindow consolidates the first contiguous run of steps where
// destination time is in the 06:00-14:59 caffeine-friendly band.
func scanCaffeineWindow(in FlightInput) (stepWindow, bool) {
	start := -1
	end := -1

	for t := 0; t < in.DurationMin; t += wakeScanStepMin {
		h := in.destLocalAt(t).Hour()
		if h >= 6 && h <= 14 {
			if start < 0 {
				start = t
			}
			end = t + wakeScanStepMin
			continue
		}
		if start >= 0 {
			break
		}
	}

	if start < 0 {
		return stepWindow{}, false
	}
	if end > in.DurationMin {
		end = in.DurationMin
	}
	return stepWindow{startMin: start, durationMin: end - start}, true
}

// mealServiceOffsets derives airline meal service times from flight length:
// first service at min(90 minutes, 15% of duration) after takeoff, second
// service 90 minutes before landing on flights of 8 hours or more.
func mealServiceOffsets(durationMin int) []int {
	first := int(0.15 * float64(durationMin))
	if first > 90 {
		first = 90
	}
	offsets := []int{first}
	if durationMin >= 480 {
		offsets = append(offsets, durationMin-90)
	}
	return offsets
}

// CalculateFlightTimeline builds the ordered flight-day intervention list:
// naps, a stay-awake window, meal service guidance, caffeine timing, the
// eastward light-avoidance and melatonin windows, the pinned boarding
// marker, and the arrival strategy.
func CalculateFlightTimeline(in FlightInput) []domain.Intervention {
	var interventions []domain.Intervention

	// Boarding marker, pinned to sort first.
	interventions = append(interventions, domain.Intervention{
		Type:     domain.InterventionLightSeek,
		Start:    in.DepartureLocal.Add(-boardingLeadHours),
		Title:    "Switch to destination time",
		Priority: domain.PriorityCritical,
		Pinned:   true,
		Description: "At boarding, set your watch and phone to destination time " +
			"and start living on it: judge meals, naps, and light by the destination clock.",
		Rationale: "Committing to the destination schedule early makes every in-flight decision easier.",
	})

	if in.Preferences.IncludeNapGuidance {
		for _, w := range scanNapWindows(in) {
			dur := w.durationMin
			start := in.DepartureLocal.Add(float64(w.startMin) / 60)
			end := start.Add(float64(dur) / 60)
			title := "Power nap"
			if dur == fullCycleMin {
				title = "Full sleep cycle"
			}
			d := dur
			interventions = append(interventions, domain.Intervention{
				Type:        domain.InterventionSleep,
				Start:       start,
				End:         &end,
				DurationMin: &d,
				Title:       title,
				Priority:    domain.PriorityRecommended,
				Description: fmt.Sprintf("It is night at your destination: sleep for %d minutes. Use an eye mask and earplugs.", dur),
				Rationale:   "20 minutes avoids deep sleep; 90 minutes completes a full cycle. Anything between tends to end in grogginess.",
				Details: domain.SleepDetails{
					SleepKind:         "nap",
					TargetDurationMin: dur,
					FullCycle:         dur == fullCycleMin,
				},
			})
		}
	}

	if w, ok := scanStayAwakeWindow(in); ok {
		start := in.DepartureLocal.Add(float64(w.startMin) / 60)
		end := start.Add(float64(w.durationMin) / 60)
		interventions = append(interventions, domain.Intervention{
			Type:        domain.InterventionLightSeek,
			Start:       start,
			End:         &end,
			Title:       "Stay awake",
			Priority:    domain.PriorityRecommended,
			Description: "It is daytime at your destination: keep the window shade open, stay active, and resist sleeping.",
			Rationale:   "Sleeping through destination daytime anchors your clock to the origin zone.",
			Details: domain.LightSeekDetails{
				MinLux:           1000,
				OutdoorPreferred: false,
			},
		})
	}

	for i, offset := range mealServiceOffsets(in.DurationMin) {
		at := in.DepartureLocal.Add(float64(offset) / 60)
		destHour := in.destLocalAt(offset).Hour()
		eat := destHour >= 6 && destHour <= 21

		recommendation := "skip"
		description := "Meal service lands in the destination night: skip it or keep it very light, and eat at the next destination mealtime instead."
		if eat {
			recommendation = "eat"
			description = "Meal service falls in destination daytime: eat normally."
		}
		interventions = append(interventions, domain.Intervention{
			Type:        domain.InterventionMeal,
			Start:       at,
			Title:       fmt.Sprintf("Meal service %d", i+1),
			Priority:    domain.PriorityOptional,
			Description: description,
			Rationale:   "Meal timing is a secondary zeitgeber; eating on the destination schedule reinforces the shift.",
			Details: domain.MealDetails{
				Meal:           "service",
				Recommendation: recommendation,
			},
		})
	}

	if in.Preferences.UseCaffeine {
		if w, ok := scanCaffeineWindow(in); ok {
			start := in.DepartureLocal.Add(float64(w.startMin) / 60)
			end := start.Add(float64(w.durationMin) / 60)
			cutoff := in.destLocalAt(w.startMin + w.durationMin)
			interventions = append(interventions, domain.Intervention{
				Type:        domain.InterventionCaffeine,
				Start:       start,
				End:         &end,
				Title:       "Caffeine window",
				Priority:    domain.PriorityOptional,
				Description: "Coffee or tea is fine during this window (destination morning). Stop afterwards so it cannot disturb destination-night sleep.",
				Details: domain.CaffeineDetails{
					Allowed:     true,
					CutoffTime:  &cutoff,
					MaxServings: 2,
				},
			})
		} else {
			interventions = append(interventions, domain.Intervention{
				Type:        domain.InterventionCaffeine,
				Start:       in.DepartureLocal,
				Title:       "No caffeine this flight",
				Priority:    domain.PriorityRecommended,
				Description: "The whole flight falls outside the destination morning: skip caffeine entirely so it cannot delay your shift.",
				Details: domain.CaffeineDetails{
					Allowed: false,
				},
			})
		}
	}

	if in.Direction == domain.DirectionEastward {
		interventions = append(interventions, eastwardFlightExtras(in)...)
	}

	interventions = append(interventions, arrivalStrategy(in))

	sortFlightInterventions(interventions, in.DepartureLocal)
	return interventions
}

// eastwardFlightExtras adds the critical light-avoidance window before
// destination CBTmin and, when enabled, a melatonin dose 5-6 hours before
// destination bedtime. Both only matter when advancing.
func eastwardFlightExtras(in FlightInput) []domain.Intervention {
	var extras []domain.Intervention

	for t := 0; t < in.DurationMin; t += sleepScanStepMin {
		destNow := in.destLocalAt(t)
		untilCBT := destNow.Until(in.DestCBTMin)
		if untilCBT > 0 && untilCBT <= 3 {
			start := in.DepartureLocal.Add(float64(t) / 60)
			end := start.Add(2)
			extras = append(extras, domain.Intervention{
				Type:        domain.InterventionLightAvoid,
				Start:       start,
				End:         &end,
				Title:       "Critical light avoidance",
				Priority:    domain.PriorityCritical,
				Description: "Close the shade and wear sunglasses or an eye mask: light in the hours before your body temperature minimum delays your clock.",
				Rationale:   "Light just before CBTmin produces the strongest delay, the opposite of the advance an eastward trip needs.",
				Details: domain.LightAvoidDetails{
					WearSunglasses:  true,
					DimIndoorLights: true,
				},
			})
			break
		}
	}

	if in.Preferences.UseMelatonin {
		for t := 0; t < in.DurationMin; t += sleepScanStepMin {
			untilBed := in.destLocalAt(t).Until(in.DestBedtime)
			if untilBed >= 5 && untilBed <= 6 {
				dose := in.Preferences.MelatoninDoseMg
				if dose <= 0 {
					dose = 0.5
				}
				extras = append(extras, domain.Intervention{
					Type:        domain.InterventionMelatonin,
					Start:       in.DepartureLocal.Add(float64(t) / 60),
					Title:       "Melatonin dose",
					Priority:    domain.PriorityRecommended,
					Description: fmt.Sprintf("Take %.1f mg melatonin now: about 5-6 hours before destination bedtime.", dose),
					Rationale:   "Early-evening melatonin (body time) advances the clock; taken at destination-evening it pulls your phase eastward.",
					Details: domain.MelatoninDetails{
						DoseMg:  dose,
						Purpose: "phase_shift",
					},
				})
				break
			}
		}
	}

	return extras
}

// arrivalStrategy branches on the destination-local arrival hour and the
// travel direction.
func arrivalStrategy(in FlightInput) domain.Intervention {
	hour := in.ArrivalLocal.Hour()

	var description string
	switch {
	case hour < 12:
		description = "Morning arrival: get outside into daylight and stay awake until at least 21:00 local."
		if in.Direction == domain.DirectionEastward {
			description += " Keep sunglasses on until mid-morning so early light cannot delay your clock."
		}
	case hour < 17:
		description = "Afternoon arrival: stay active and outdoors; hold out for a normal local bedtime."
		if in.Preferences.IncludeNapGuidance {
			description += " If you must nap, cap it at 20 minutes before 16:00."
		}
	default:
		description = "Evening arrival: keep lights dim, have a light dinner, and go to bed near your target local bedtime."
		if in.Direction == domain.DirectionWestward {
			description += " Fight the urge to sleep early; every hour closer to local bedtime helps the delay."
		}
	}

	return domain.Intervention{
		Type:        domain.InterventionLightSeek,
		Start:       in.ArrivalLocal,
		Title:       "Arrival strategy",
		Priority:    domain.PriorityCritical,
		Description: description,
		Rationale:   "The first hours on the ground set the tone: light and sleep decisions at arrival carry the most weight.",
		Details: domain.LightSeekDetails{
			OutdoorPreferred: true,
		},
	}
}

// sortFlightInterventions orders by clock time, wrapping times earlier than
// the departure hour forward by a day so the overnight sequence reads in
// flight order. The pinned boarding marker always sorts first.
func sortFlightInterventions(interventions []domain.Intervention, departure clock.TimeOfDay) {
	depHour := departure.Add(-boardingLeadHours).Hours()
	key := func(iv domain.Intervention) float64 {
		h := iv.Start.Hours()
		if h < depHour {
			h += 24
		}
		return h
	}

	sort.SliceStable(interventions, func(a, b int) bool {
		if interventions[a].Pinned != interventions[b].Pinned {
			return interventions[a].Pinned
		}
		return key(interventions[a]) < key(interventions[b])
	})
}
