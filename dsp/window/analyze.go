package window

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Analysis holds numerically measured spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the half-power main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the peak side-lobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first spectral null position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin tone.
	ScallopLossdB float64
}

// Analyze measures the spectral properties of the given window weights by
// direct numerical DFT evaluation. Results are descriptive; nothing in the
// analysis path feeds back into generation.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := responsePower(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0

	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	// Scallop loss is the response half a bin off center.
	halfBin := responsePower(coeffs, 0.5/float64(n))

	scallop := 0.0
	if halfBin > 0 {
		scallop = core.LinearPowerToDB(halfBin / dcRef)
	}

	firstMin := firstNull(coeffs)

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		Bandwidth3dB:      halfPowerWidth(coeffs, dcRef),
		HighestSidelobedB: peakSidelobe(coeffs, dcRef, firstMin),
		FirstMinimumBins:  firstMin * float64(n),
		ScallopLossdB:     scallop,
	}
}

// responsePower evaluates |DFT(freq)|^2 at a normalized frequency in [0, 1).
func responsePower(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}

	return re*re + im*im
}

// halfPowerWidth bisects for the -3 dB point and returns the two-sided main
// lobe width in bins.
func halfPowerWidth(coeffs []float64, dcRef float64) float64 {
	lo, hi := 0.0, 0.5

	for range 80 {
		mid := (lo + hi) / 2
		if responsePower(coeffs, mid) > 0.5*dcRef {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo * float64(len(coeffs))
}

// firstNull locates the first local minimum of the response outward from DC,
// as a normalized frequency. A coarse scan brackets the null; golden-section
// search refines it. The descent threshold skips plateaus near DC so wide
// main lobes do not trigger a false turn-around.
func firstNull(coeffs []float64) float64 {
	n := float64(len(coeffs))
	step := 1.0 / (n * 8)

	dcVal := responsePower(coeffs, 0)
	threshold := dcVal * 0.1

	prev := dcVal
	coarse := step

	for freq := step; freq < 0.5; freq += step {
		val := responsePower(coeffs, freq)
		if prev < threshold && val > prev {
			coarse = freq - step
			break
		}

		prev = val
	}

	a := math.Max(coarse-2*step, 0)
	b := math.Min(coarse+2*step, 0.5)

	const phi = 0.6180339887498949

	c := b - phi*(b-a)
	d := a + phi*(b-a)

	for range 80 {
		if responsePower(coeffs, c) < responsePower(coeffs, d) {
			b = d
		} else {
			a = c
		}

		c = b - phi*(b-a)
		d = a + phi*(b-a)
	}

	return (a + b) / 2
}

// peakSidelobe scans from the first null to Nyquist for the strongest side
// lobe and refines around it, returning its level in dB relative to DC.
func peakSidelobe(coeffs []float64, dcRef, startFreq float64) float64 {
	step := 1.0 / (float64(len(coeffs)) * 8)

	peakVal := 0.0
	peakFreq := startFreq

	for freq := startFreq; freq < 0.5; freq += step {
		val := responsePower(coeffs, freq)
		if val > peakVal {
			peakVal = val
			peakFreq = freq
		}
	}

	fine := step / 32
	for freq := math.Max(peakFreq-step, 0); freq <= peakFreq+step; freq += fine {
		peakVal = math.Max(peakVal, responsePower(coeffs, freq))
	}

	return core.LinearPowerToDB(peakVal / dcRef)
}
