package engine

import (
	"math"

	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/domain"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/internal/prc"
	"github.com/CavalPinarello/JetLagOptimizer-sub000/pkg/clock"
)

// ShiftDirection classifies the sign of a phase response effect.
type ShiftDirection string

const (
	ShiftAdvance ShiftDirection = "advance"
	ShiftDelay   ShiftDirection = "delay"
	ShiftNeutral ShiftDirection = "neutral"
)

const (
	// effectEpsilon is the magnitude below which an effect counts as neutral.
	effectEpsilon = 0.1

	// peakWindowHalfWidthHours bounds the optimal window around a curve peak.
	peakWindowHalfWidthHours = 1.5

	// MaxDailyShiftHours is the physiological ceiling on the aggregate shift
	// any single day's interventions can produce.
	MaxDailyShiftHours = 3.0
)

// Effect is the outcome of applying a stimulus at a given time.
type Effect struct {
	Direction ShiftDirection `json:"direction"`
	// Magnitude is the absolute shift in hours.
	Magnitude float64 `json:"magnitude"`
}

// EffectAt answers what shift the stimulus described by the curve produces at
// the given wall-clock time, for a body whose CBTmin is at cbtMin. Effects
// inside the curve's dead zone or below epsilon are neutral.
func EffectAt(curve prc.Curve, at clock.TimeOfDay, cbtMin clock.TimeOfDay) Effect {
	ct := cbtMin.Until(at)

	if curve.InDeadZone(ct) {
		return Effect{Direction: ShiftNeutral}
	}

	shift := curve.ShiftAt(ct)
	if math.Abs(shift) < effectEpsilon {
		return Effect{Direction: ShiftNeutral}
	}
	if shift > 0 {
		return Effect{Direction: ShiftAdvance, Magnitude: shift}
	}
	return Effect{Direction: ShiftDelay, Magnitude: -shift}
}

// OptimalWindowFor returns the clock-time interval around the curve's peak
// for the shift the travel direction requires, plus the complementary
// interval to avoid (the window around the opposite peak). Eastward travel
// needs advances, westward needs delays.
func OptimalWindowFor(curve prc.Curve, direction domain.Direction, cbtMin clock.TimeOfDay) (best, avoid domain.Window) {
	peakCT := curve.PeakAdvanceCT
	oppositeCT := curve.PeakDelayCT
	if direction == domain.DirectionWestward {
		peakCT, oppositeCT = oppositeCT, peakCT
	}

	best = domain.Window{
		Start: cbtMin.Add(peakCT - peakWindowHalfWidthHours),
		End:   cbtMin.Add(peakCT + peakWindowHalfWidthHours),
	}
	avoid = domain.Window{
		Start: cbtMin.Add(oppositeCT - peakWindowHalfWidthHours),
		End:   cbtMin.Add(oppositeCT + peakWindowHalfWidthHours),
	}
	return best, avoid
}

// WeightedEffect pairs an effect with the relative weight of its stimulus in
// the aggregate daily estimate.
type WeightedEffect struct {
	Effect Effect
	Weight float64
}

// EstimateDailyShift sums weighted per-intervention effects into the signed
// total shift a day is expected to produce (positive = advance), clamped to
// the +/-3 hour physiological ceiling.
func EstimateDailyShift(effects []WeightedEffect) float64 {
	total := 0.0
	for _, we := range effects {
		switch we.Effect.Direction {
		case ShiftAdvance:
			total += we.Effect.Magnitude * we.Weight
		case ShiftDelay:
			total -= we.Effect.Magnitude * we.Weight
		}
	}

	if total > MaxDailyShiftHours {
		return MaxDailyShiftHours
	}
	if total < -MaxDailyShiftHours {
		return -MaxDailyShiftHours
	}
	return total
}
