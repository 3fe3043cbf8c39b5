// Package engine implements the circadian computation core: chronotype
// classification, circadian marker estimation, phase response effect
// calculation, the flight-day timeline, and the day-by-day protocol
// synthesizer. Everything here is a pure, synchronous computation over value
// objects; the only shared state is read-only curve and threshold tables.
package engine

import (
	"math"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

const (
	// MEQ scores sum 19 items and land in [16, 86].
	MEQResponseCount = 19
	MEQMinScore      = 16
	MEQMaxScore      = 86
)

// meqBand is an inclusive lower bound for a chronotype band. Ordered from
// most morning to most evening; the first bound a score reaches wins.
type meqBand struct {
	lowerBound int
	category   domain.Chronotype
}

var meqBands = []meqBand{
	{70, domain.ChronotypeDefiniteMorning},
	{59, domain.ChronotypeModerateMorning},
	{42, domain.ChronotypeIntermediate},
	{31, domain.ChronotypeModerateEvening},
	{16, domain.ChronotypeDefiniteEvening},
}

// ScoreMEQ sums the 19 questionnaire responses. Fails with a ValidationError
// when the response count is wrong.
func ScoreMEQ(responses []domain.MEQResponse) (int, error) {
	if len(responses) != MEQResponseCount {
		return 0, domain.NewValidationError("meq_responses",
			"exactly 19 responses required")
	}
	sum := 0
	for _, r := range responses {
		sum += r.Value
	}
	return sum, nil
}

// ClassifyChronotype maps an MEQ score to one of the five bands. Fails when
// the score falls outside [16, 86].
func ClassifyChronotype(score int) (domain.Chronotype, error) {
	if score < MEQMinScore || score > MEQMaxScore {
		return "", domain.NewValidationError("meq_score",
			"score must be between 16 and 86")
	}
	for _, band := range meqBands {
		if score >= band.lowerBound {
			return band.category, nil
		}
	}
	return domain.ChronotypeDefiniteEvening, nil
}

// CorrectedMidSleep computes MSFsc: mid-sleep on free days corrected for the
// sleep debt accumulated over the work week. Durations are weighted 5:2
// across the week; when free-day sleep exceeds that weighted average, half
// the oversleep is subtracted from the raw free-day mid-sleep.
func CorrectedMidSleep(workBed, workWake, freeBed, freeWake clock.TimeOfDay) clock.TimeOfDay {
	workDur := workBed.Until(workWake)
	freeDur := freeBed.Until(freeWake)

	weeklyAvg := (5*workDur + 2*freeDur) / 7
	midSleepFree := freeBed.Add(freeDur / 2)

	oversleep := freeDur - weeklyAvg
	if oversleep <= 0 {
		return midSleepFree
	}
	return midSleepFree.Add(-oversleep / 2)
}

// meqEquivalentScore converts MSFsc to an MEQ-equivalent score via the fixed
// linear map anchored at (MSFsc 2:00, score 75) and (MSFsc 6:00, score 35).
// The result is clamped into the valid score range.
func meqEquivalentScore(msfsc clock.TimeOfDay) int {
	h := msfsc.Hours()
	// Center around the typical 2:00-6:00 MSFsc band so evening-of-midnight
	// values map sensibly.
	if h > 14 {
		h -= 24
	}
	score := 95 - 10*h
	if score < MEQMinScore {
		return MEQMinScore
	}
	if score > MEQMaxScore {
		return MEQMaxScore
	}
	return int(math.Round(score))
}

// ResolveChronotype combines the available estimators into a single category.
// With both an MEQ score and an MSFsc present, the MSFsc is converted to an
// MEQ-equivalent score and the arithmetic mean of the two is classified.
// With one, that one is classified. With neither, the middle band applies.
func ResolveChronotype(meqScore *int, msfsc *clock.TimeOfDay) (domain.Chronotype, error) {
	switch {
	case meqScore != nil && msfsc != nil:
		if *meqScore < MEQMinScore || *meqScore > MEQMaxScore {
			return "", domain.NewValidationError("meq_score",
				"score must be between 16 and 86")
		}
		combined := int(math.Round(float64(*meqScore+meqEquivalentScore(*msfsc)) / 2))
		return ClassifyChronotype(combined)
	case meqScore != nil:
		return ClassifyChronotype(*meqScore)
	case msfsc != nil:
		return ClassifyChronotype(meqEquivalentScore(*msfsc))
	default:
		return domain.ChronotypeIntermediate, nil
	}
}
