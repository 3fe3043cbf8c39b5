package engine

import (
	"fmt"
	"sort"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/prc"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

// dayContext carries the state a non-flight day's generators work from.
type dayContext struct {
	dayNumber int
	direction domain.Direction

	bed    clock.TimeOfDay
	wake   clock.TimeOfDay
	dlmo   clock.TimeOfDay
	cbtMin clock.TimeOfDay

	avgSleepMin int
	prefs       domain.UserPreferences
}

// generateDayInterventions builds the intervention list for a pre-departure
// or destination day. Light, sleep, meal, and exercise generators always
// run; melatonin, caffeine, and creatine only when enabled in preferences.
func generateDayInterventions(ctx dayContext) []domain.Intervention {
	var interventions []domain.Intervention

	interventions = append(interventions, lightInterventions(ctx)...)
	interventions = append(interventions, sleepIntervention(ctx))
	interventions = append(interventions, mealInterventions(ctx)...)
	interventions = append(interventions, exerciseIntervention(ctx))

	if ctx.prefs.UseMelatonin {
		interventions = append(interventions, melatoninIntervention(ctx))
	}
	if ctx.prefs.UseCaffeine {
		interventions = append(interventions, caffeineIntervention(ctx))
	}
	if ctx.prefs.UseCreatine {
		interventions = append(interventions, creatineIntervention(ctx))
	}
	if ctx.dayNumber == 1 && ctx.prefs.IncludeNapGuidance {
		interventions = append(interventions, arrivalNapIntervention(ctx))
	}

	sort.SliceStable(interventions, func(a, b int) bool {
		return interventions[a].Start.Hours() < interventions[b].Start.Hours()
	})
	return interventions
}

// lightInterventions emits the seek window for the required shift direction
// and the complementary avoid window. Eastward: morning light starting at
// wake. Westward: evening light ending an hour before bed.
func lightInterventions(ctx dayContext) []domain.Intervention {
	var seekStart, seekEnd, avoidStart, avoidEnd clock.TimeOfDay
	var seekDesc, avoidDesc string

	if ctx.direction == domain.DirectionEastward {
		seekStart = ctx.wake
		seekEnd = ctx.wake.Add(2)
		seekDesc = "Get bright light right after waking: outdoors if possible, a 10,000 lux lamp otherwise."
		avoidStart = ctx.bed.Add(-3)
		avoidEnd = ctx.bed
		avoidDesc = "Dim the lights and avoid screens in the three hours before bed."
	} else {
		seekStart = ctx.bed.Add(-4)
		if seekStart.Hours() < 17 {
			seekStart = clock.New(17, 0)
		}
		seekEnd = ctx.bed.Add(-1)
		seekDesc = "Stay in bright light through the evening to push your clock later."
		avoidStart = ctx.wake
		avoidEnd = ctx.wake.Add(2)
		avoidDesc = "Keep mornings dim: sunglasses outside, low indoor light."
	}

	return []domain.Intervention{
		{
			Type:        domain.InterventionLightSeek,
			Start:       seekStart,
			End:         &seekEnd,
			Title:       "Bright light exposure",
			Priority:    domain.PriorityCritical,
			Description: seekDesc,
			Rationale:   "Light at this circadian time produces the strongest shift in the direction your trip needs.",
			Details: domain.LightSeekDetails{
				MinLux:           2500,
				OutdoorPreferred: true,
			},
		},
		{
			Type:        domain.InterventionLightAvoid,
			Start:       avoidStart,
			End:         &avoidEnd,
			Title:       "Avoid bright light",
			Priority:    domain.PriorityRecommended,
			Description: avoidDesc,
			Rationale:   "Light on this side of CBTmin shifts the clock against your trip direction.",
			Details: domain.LightAvoidDetails{
				WearSunglasses:  ctx.direction == domain.DirectionWestward,
				DimIndoorLights: true,
			},
		},
	}
}

func sleepIntervention(ctx dayContext) domain.Intervention {
	end := ctx.wake
	dur := ctx.avgSleepMin
	return domain.Intervention{
		Type:        domain.InterventionSleep,
		Start:       ctx.bed,
		End:         &end,
		DurationMin: &dur,
		Title:       "Sleep window",
		Priority:    domain.PriorityCritical,
		Description: fmt.Sprintf("Be in bed by %s and get up at %s.", ctx.bed.Format(), end.Format()),
		Rationale:   "Holding the shifted sleep window consolidates each day's phase change.",
		Details: domain.SleepDetails{
			SleepKind:         "core",
			TargetDurationMin: dur,
		},
	}
}

func mealInterventions(ctx dayContext) []domain.Intervention {
	meals := []struct {
		name  string
		at    clock.TimeOfDay
		descr string
	}{
		{"breakfast", ctx.wake.Add(0.5), "Eat breakfast within an hour of waking."},
		{"lunch", ctx.wake.Add(5.5), "Keep lunch on the shifted schedule."},
		{"dinner", ctx.bed.Add(-3), "Finish dinner at least three hours before bed."},
	}

	out := make([]domain.Intervention, 0, len(meals))
	for _, m := range meals {
		priority := domain.PriorityOptional
		if m.name == "breakfast" && ctx.direction == domain.DirectionEastward {
			// A prompt breakfast anchors the morning schedule an advance needs.
			priority = domain.PriorityRecommended
		}
		out = append(out, domain.Intervention{
			Type:        domain.InterventionMeal,
			Start:       m.at,
			Title:       fmt.Sprintf("Meal: %s", m.name),
			Priority:    priority,
			Description: m.descr,
			Rationale:   "Meal timing is a secondary zeitgeber that reinforces the light-driven shift.",
			Details: domain.MealDetails{
				Meal:           m.name,
				Recommendation: "eat",
			},
		})
	}
	return out
}

func exerciseIntervention(ctx dayContext) domain.Intervention {
	best, _ := OptimalWindowFor(prc.Exercise(), ctx.direction, ctx.cbtMin)
	priority := domain.PriorityOptional
	if ctx.prefs.ExercisesRegularly {
		priority = domain.PriorityRecommended
	}
	end := best.End
	return domain.Intervention{
		Type:        domain.InterventionExercise,
		Start:       best.Start,
		End:         &end,
		Title:       "Exercise window",
		Priority:    priority,
		Description: "A 30-minute moderate session in this window nudges your clock in the right direction.",
		Rationale:   "Exercise shifts phase like light at roughly a third of the strength.",
		Details: domain.ExerciseDetails{
			Intensity:   "moderate",
			DurationMin: 30,
		},
	}
}

func melatoninIntervention(ctx dayContext) domain.Intervention {
	dose := ctx.prefs.MelatoninDoseMg
	if dose <= 0 {
		dose = 0.5
	}

	if ctx.direction == domain.DirectionEastward {
		at := ctx.bed.Add(-5.5)
		return domain.Intervention{
			Type:        domain.InterventionMelatonin,
			Start:       at,
			Title:       "Melatonin dose",
			Priority:    domain.PriorityRecommended,
			Description: fmt.Sprintf("Take %.1f mg melatonin at %s, about 5.5 hours before bed.", dose, at.Format()),
			Rationale:   "Early-evening melatonin advances the clock; at bedtime it only sedates.",
			Details: domain.MelatoninDetails{
				DoseMg:  dose,
				Purpose: "phase_shift",
			},
		}
	}

	return domain.Intervention{
		Type:        domain.InterventionMelatonin,
		Start:       ctx.bed,
		Title:       "Melatonin at bedtime",
		Priority:    domain.PriorityOptional,
		Description: fmt.Sprintf("Take %.1f mg melatonin at your shifted bedtime if you struggle to fall asleep this late.", dose),
		Rationale:   "Delays come mostly from evening light; bedtime melatonin just helps sleep onset at the later hour.",
		Details: domain.MelatoninDetails{
			DoseMg:  dose,
			Purpose: "sleep_aid",
		},
	}
}

func caffeineIntervention(ctx dayContext) domain.Intervention {
	cutoffHours := ctx.prefs.CaffeineCutoffHours
	if cutoffHours <= 0 {
		cutoffHours = 8
	}

	cutoff := ctx.bed.Add(-cutoffHours)
	if latest := clock.New(14, 0); cutoff.Hours() > latest.Hours() {
		cutoff = latest
	}

	end := cutoff
	return domain.Intervention{
		Type:        domain.InterventionCaffeine,
		Start:       ctx.wake,
		End:         &end,
		Title:       "Caffeine cutoff",
		Priority:    domain.PriorityRecommended,
		Description: fmt.Sprintf("Caffeine is fine until %s; nothing after.", cutoff.Format()),
		Rationale:   "Late caffeine fragments sleep and blunts the shift the sleep window is building.",
		Details: domain.CaffeineDetails{
			Allowed:     true,
			CutoffTime:  &end,
			MaxServings: 3,
		},
	}
}

func creatineIntervention(ctx dayContext) domain.Intervention {
	dose := ctx.prefs.CreatineDoseG
	if dose <= 0 {
		dose = 5
	}
	at := ctx.wake.Add(0.5)
	return domain.Intervention{
		Type:        domain.InterventionCreatine,
		Start:       at,
		Title:       "Creatine dose",
		Priority:    domain.PriorityOptional,
		Description: fmt.Sprintf("Take %.0f g creatine with breakfast.", dose),
		Rationale:   "Creatine supports cognition under the sleep restriction travel days bring.",
		Details: domain.CreatineDetails{
			DoseG:    dose,
			WithFood: true,
		},
	}
}

// arrivalNapIntervention offers a short recovery nap on the first
// destination day, early enough not to steal pressure from night sleep.
func arrivalNapIntervention(ctx dayContext) domain.Intervention {
	at := clock.New(13, 30)
	dur := powerNapMin
	end := at.Add(float64(dur) / 60)
	return domain.Intervention{
		Type:        domain.InterventionSleep,
		Start:       at,
		End:         &end,
		DurationMin: &dur,
		Title:       "Recovery nap",
		Priority:    domain.PriorityOptional,
		Description: "If the first day is rough, a 20-minute nap in the early afternoon is safe. No longer, no later.",
		Rationale:   "A short early nap relieves pressure without undermining the first night at destination.",
		Details: domain.SleepDetails{
			SleepKind:         "nap",
			TargetDurationMin: dur,
		},
	}
}
