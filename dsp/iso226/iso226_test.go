package iso226

import (
	"math"
	"testing"
)

func TestGainReferencePoint(t *testing.T) {
	if got := Gain(1000.0); got != 0 {
		t.Fatalf("Gain(1000) = %v, want exactly 0", got)
	}
}

func TestGainLowFrequencyOffset(t *testing.T) {
	// The iso-loud SPL at 20 Hz sits roughly 45 dB above the 1 kHz SPL on
	// the 70 phon contour, so the correction at 20 Hz is about -45 dB.
	diff := Gain(1000.0) - Gain(20.0)
	if math.Abs(diff-45.0) > 5.0 {
		t.Fatalf("Gain(1000)-Gain(20) = %v, want 45 +/- 5", diff)
	}
}

func TestGainThirdOctaveRegression(t *testing.T) {
	// Third-octave sweep from 20 Hz, checked against the same table and
	// formula evaluated in double precision. Values past 12.5 kHz repeat
	// the last table row because the table clamps.
	expected := []float64{
		-42.1259498409, -37.1513477273, -32.4748156738, -28.1645334090,
		-24.2300333213, -20.5736884243, -17.2544800675, -14.2667349432,
		-11.5968633719, -9.2487146529, -7.0475711301, -5.1855610886,
		-3.6134234779, -2.2713921388, -1.1812715907, -0.2641566514,
		0.2947222283, -0.1506156826, -2.4667769287, -3.5314446705,
		-0.3262659174, 2.1998369659, 2.9706317482, 1.5791353131,
		-1.9935877789, -7.1249163970, -11.4498340116, -11.7624659035,
		-6.5381091656, -6.5381091656, -6.5381091656,
	}

	freq := 20.0
	step := math.Pow(2, 1.0/3.0)

	for i, want := range expected {
		got := Gain(freq)
		if math.Abs(got-want) > 1e-6 {
			t.Errorf("step %d (%.1f Hz): Gain = %v, want %v", i, freq, got, want)
		}

		freq *= step
	}
}

func TestGainClampOutsideTable(t *testing.T) {
	if got, want := Gain(5.0), Gain(20.0); got != want {
		t.Errorf("Gain(5) = %v, want clamp to Gain(20) = %v", got, want)
	}

	if got, want := Gain(96000.0), Gain(12500.0); got != want {
		t.Errorf("Gain(96000) = %v, want clamp to Gain(12500) = %v", got, want)
	}
}

func TestGainAlwaysFinite(t *testing.T) {
	for freq := 1.0; freq < 200000.0; freq *= 1.1 {
		got := Gain(freq)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Fatalf("Gain(%v) = %v", freq, got)
		}
	}
}

func TestGainContinuity(t *testing.T) {
	// Linear interpolation should not produce jumps anywhere in the
	// audible range; neighboring evaluations stay within a fraction of a dB.
	prev := Gain(20.0)
	for freq := 20.5; freq <= 20000.0; freq += 0.5 {
		cur := Gain(freq)
		if math.Abs(cur-prev) > 0.5 {
			t.Fatalf("discontinuity near %v Hz: %v -> %v", freq, prev, cur)
		}

		prev = cur
	}
}
