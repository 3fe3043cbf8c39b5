// Package prc holds phase response curve data for light, melatonin, and
// exercise. A curve maps circadian time (hours since CBTmin) to the phase
// shift in hours produced by applying the stimulus at that time. Values are
// piecewise-linear interpolations of published research curves.
package prc

import "math"

// Sample is one point on a phase response curve.
type Sample struct {
	// CT is circadian time: hours after CBTmin, in [0, 24).
	CT float64
	// Shift is the resulting phase shift in hours. Positive = advance.
	Shift float64
}

// Curve is a piecewise-linear phase response curve. The sample domain covers
// [0, 24) and wraps: interpolation past the last sample runs back to sample 0.
type Curve struct {
	Name    string
	Samples []Sample

	// PeakAdvanceCT and PeakDelayCT mark the circadian times of maximum
	// advance and maximum delay.
	PeakAdvanceCT float64
	PeakDelayCT   float64

	// DeadZoneStart and DeadZoneEnd bound the interval where the stimulus
	// produces no meaningful shift.
	DeadZoneStart float64
	DeadZoneEnd   float64
}

// Light returns the phase response curve for bright light exposure.
// Near-zero at CBTmin, peak advance shortly after, a midday dead zone, and a
// peak delay in the hours before the next CBTmin.
func Light() Curve {
	return Curve{
		Name: "light",
		Samples: []Sample{
			{CT: 0, Shift: 0},
			{CT: 1, Shift: 1.2},
			{CT: 2, Shift: 2.2},
			{CT: 3, Shift: 2.8},
			{CT: 4, Shift: 2.5},
			{CT: 6, Shift: 1.4},
			{CT: 8, Shift: 0.5},
			{CT: 10, Shift: 0},
			{CT: 12, Shift: 0},
			{CT: 14, Shift: 0},
			{CT: 16, Shift: -0.8},
			{CT: 18, Shift: -1.7},
			{CT: 20, Shift: -2.5},
			{CT: 22, Shift: -1.6},
			{CT: 23, Shift: -0.8},
		},
		PeakAdvanceCT: 3,
		PeakDelayCT:   20,
		DeadZoneStart: 10,
		DeadZoneEnd:   14,
	}
}

// Melatonin returns the phase response curve for exogenous melatonin,
// approximately the mirror of the light curve: delays in the morning, peak
// advance in the early evening.
func Melatonin() Curve {
	return Curve{
		Name: "melatonin",
		Samples: []Sample{
			{CT: 0, Shift: 0},
			{CT: 2, Shift: -0.8},
			{CT: 4, Shift: -1.2},
			{CT: 6, Shift: -0.8},
			{CT: 8, Shift: -0.3},
			{CT: 10, Shift: 0},
			{CT: 12, Shift: 0},
			{CT: 14, Shift: 0},
			{CT: 15, Shift: 0.5},
			{CT: 17, Shift: 1.5},
			{CT: 19, Shift: 1.0},
			{CT: 21, Shift: 0.5},
			{CT: 23, Shift: 0.1},
		},
		PeakAdvanceCT: 17,
		PeakDelayCT:   4,
		DeadZoneStart: 10,
		DeadZoneEnd:   14,
	}
}

// Exercise returns the phase response curve for timed exercise: the light
// curve's shape at roughly one third of its magnitude.
func Exercise() Curve {
	light := Light()
	samples := make([]Sample, len(light.Samples))
	for i, s := range light.Samples {
		samples[i] = Sample{CT: s.CT, Shift: math.Round(s.Shift/3*100) / 100}
	}
	return Curve{
		Name:          "exercise",
		Samples:       samples,
		PeakAdvanceCT: light.PeakAdvanceCT,
		PeakDelayCT:   light.PeakDelayCT,
		DeadZoneStart: light.DeadZoneStart,
		DeadZoneEnd:   light.DeadZoneEnd,
	}
}

// ShiftAt interpolates the phase shift at the given circadian time. The
// circadian time is taken modulo 24; between the last sample and the end of
// the day the curve interpolates back toward sample 0.
func (c Curve) ShiftAt(ct float64) float64 {
	if len(c.Samples) == 0 {
		return 0
	}

	ct = math.Mod(ct, 24)
	if ct < 0 {
		ct += 24
	}

	last := c.Samples[len(c.Samples)-1]
	if ct < c.Samples[0].CT || ct >= last.CT {
		// Wrap segment: last sample -> first sample at CT+24.
		first := c.Samples[0]
		span := first.CT + 24 - last.CT
		pos := ct - last.CT
		if pos < 0 {
			pos += 24
		}
		return lerp(last.Shift, first.Shift, pos/span)
	}

	for i := 1; i < len(c.Samples); i++ {
		if ct <= c.Samples[i].CT {
			prev := c.Samples[i-1]
			next := c.Samples[i]
			if next.CT == prev.CT {
				return next.Shift
			}
			return lerp(prev.Shift, next.Shift, (ct-prev.CT)/(next.CT-prev.CT))
		}
	}

	return last.Shift
}

// InDeadZone reports whether the given circadian time falls inside the
// curve's dead zone.
func (c Curve) InDeadZone(ct float64) bool {
	ct = math.Mod(ct, 24)
	if ct < 0 {
		ct += 24
	}
	return ct >= c.DeadZoneStart && ct <= c.DeadZoneEnd
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
