package prc

import (
	"math"
	"testing"
)

func TestShiftAtSamplePoints(t *testing.T) {
	light := Light()

	tests := []struct {
		ct   float64
		want float64
	}{
		{0, 0},
		{3, 2.8},
		{12, 0},
		{20, -2.5},
	}

	for _, tt := range tests {
		if got := light.ShiftAt(tt.ct); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("light.ShiftAt(%v) = %v, want %v", tt.ct, got, tt.want)
		}
	}
}

func TestShiftAtInterpolatesBetweenSamples(t *testing.T) {
	light := Light()

	// Midpoint of the CT2 (2.2) -> CT3 (2.8) segment.
	if got := light.ShiftAt(2.5); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("ShiftAt(2.5) = %v, want 2.5", got)
	}

	// Midpoint of the CT14 (0) -> CT16 (-0.8) segment.
	if got := light.ShiftAt(15); math.Abs(got-(-0.4)) > 1e-9 {
		t.Errorf("ShiftAt(15) = %v, want -0.4", got)
	}
}

func TestShiftAtWrapsPastLastSample(t *testing.T) {
	light := Light()

	// Last sample is CT23 (-0.8); wrap segment runs back to CT0 (0) over one
	// hour, so CT23.5 sits halfway.
	if got := light.ShiftAt(23.5); math.Abs(got-(-0.4)) > 1e-9 {
		t.Errorf("ShiftAt(23.5) = %v, want -0.4", got)
	}

	// Negative and >=24 inputs hit the same point as their mod-24 value.
	if a, b := light.ShiftAt(-4), light.ShiftAt(20); math.Abs(a-b) > 1e-9 {
		t.Errorf("ShiftAt(-4) = %v, ShiftAt(20) = %v, expected equal", a, b)
	}
	if a, b := light.ShiftAt(27), light.ShiftAt(3); math.Abs(a-b) > 1e-9 {
		t.Errorf("ShiftAt(27) = %v, ShiftAt(3) = %v, expected equal", a, b)
	}
}

func TestMelatoninMirrorsLight(t *testing.T) {
	mel := Melatonin()

	// Morning melatonin delays, evening melatonin advances.
	if got := mel.ShiftAt(4); got >= 0 {
		t.Errorf("melatonin at CT4 should delay, got %v", got)
	}
	if got := mel.ShiftAt(17); got <= 0 {
		t.Errorf("melatonin at CT17 should advance, got %v", got)
	}
}

func TestExerciseIsScaledLight(t *testing.T) {
	light := Light()
	ex := Exercise()

	if len(ex.Samples) != len(light.Samples) {
		t.Fatalf("exercise has %d samples, light has %d", len(ex.Samples), len(light.Samples))
	}
	for i, s := range ex.Samples {
		if math.Abs(s.Shift) > math.Abs(light.Samples[i].Shift)/2 {
			t.Errorf("exercise sample %d (%v) not attenuated vs light (%v)", i, s.Shift, light.Samples[i].Shift)
		}
	}
}

func TestInDeadZone(t *testing.T) {
	light := Light()

	for _, ct := range []float64{10, 12, 14} {
		if !light.InDeadZone(ct) {
			t.Errorf("CT%v should be in dead zone", ct)
		}
	}
	for _, ct := range []float64{3, 9.5, 14.5, 20} {
		if light.InDeadZone(ct) {
			t.Errorf("CT%v should not be in dead zone", ct)
		}
	}
}

func TestCurvesAreIndependentCopies(t *testing.T) {
	a := Light()
	a.Samples[0].Shift = 99

	b := Light()
	if b.Samples[0].Shift == 99 {
		t.Error("mutating one Light() copy leaked into another")
	}
}
