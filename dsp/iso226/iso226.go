package iso226

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// curvePhons is the fixed reference loudness used for the correction.
// ITU-R BS.1770 work used 70 phons as a typical listening level, and the
// correction below is only exact for levels on that contour.
const curvePhons = 70.0

// minAFTotal keeps the log10 argument in the phon-to-SPL formula away from
// zero so the correction can never emit NaN or Inf into a signal chain.
const minAFTotal = 1e-12

// Gain returns the dB summand that maps a measured value at freq onto a
// perceptually flat scale relative to 1 kHz.
//
// Equal-loudness tones follow a contour in measured SPL; adding the
// returned summand to a measured dB value at freq yields a value that
// compares directly against a 1 kHz measurement. Gain(1000) is exactly 0.
//
// Frequencies outside the tabulated 20 Hz - 12.5 kHz range are clamped to
// the nearest table edge. The function is total: it never fails and never
// allocates.
func Gain(freq float64) float64 {
	return phonToSPL(1000.0) - phonToSPL(freq)
}

// phonToSPL evaluates the ISO 226 phon-to-SPL formula at the fixed
// reference loudness for the given frequency.
func phonToSPL(freq float64) float64 {
	af, tf, lu := interpolate(freq)

	afPart := math.Pow(0.4*math.Pow(10, ((tf+lu)/10.0)-9.0), af)

	afTotal := 4.47/1000.0*(math.Pow(10, 0.025*curvePhons)-1.15) + afPart
	if afTotal < minAFTotal {
		afTotal = minAFTotal
	}

	return (10.0/af)*math.Log10(afTotal) - lu + 94.0
}

// interpolate returns the table constants (AF, TF, LU) at freq using
// linear interpolation between the two bracketing table rows. Frequencies
// outside the table clamp to the first/last row.
func interpolate(freq float64) (af, tf, lu float64) {
	last := len(freqTable) - 1

	freq = core.Clamp(freq, freqTable[0], freqTable[last])
	if freq >= freqTable[last] {
		return afTable[last], tfTable[last], luTable[last]
	}

	for i := 0; i < last; i++ {
		if freq >= freqTable[i] && freq < freqTable[i+1] {
			k := (freq - freqTable[i]) / (freqTable[i+1] - freqTable[i])

			af = afTable[i] + (afTable[i+1]-afTable[i])*k
			tf = tfTable[i] + (tfTable[i+1]-tfTable[i])*k
			lu = luTable[i] + (luTable[i+1]-luTable[i])*k

			return af, tf, lu
		}
	}

	// Unreachable: freq is inside the table range, so one interval matched.
	return afTable[last], tfTable[last], luTable[last]
}

// ISO 226 table constants at 29 third-octave frequencies, checked against
// the libiso226 C implementation.

var freqTable = [29]float64{
	20.0, 25.0, 31.5, 40.0, 50.0, 63.0, 80.0, 100.0, 125.0, 160.0, 200.0,
	250.0, 315.0, 400.0, 500.0, 630.0, 800.0, 1000.0, 1250.0, 1600.0,
	2000.0, 2500.0, 3150.0, 4000.0, 5000.0, 6300.0, 8000.0, 10000.0, 12500.0,
}

var afTable = [29]float64{
	0.635, 0.602, 0.569, 0.537, 0.509, 0.482, 0.456, 0.433, 0.412, 0.391,
	0.373, 0.357, 0.343, 0.330, 0.320, 0.311, 0.303, 0.300, 0.295, 0.292,
	0.290, 0.290, 0.289, 0.289, 0.289, 0.293, 0.303, 0.323, 0.354,
}

var luTable = [29]float64{
	-31.5, -27.2, -23.1, -19.3, -16.1, -13.1, -10.4, -8.2, -6.3, -4.6,
	-3.2, -2.1, -1.2, -0.5, 0.0, 0.4, 0.5, 0.0, -2.7, -4.2,
	-1.2, 1.4, 2.3, 1.0, -2.3, -7.2, -11.2, -10.9, -3.5,
}

var tfTable = [29]float64{
	78.1, 68.7, 59.5, 51.1, 44.0, 37.5, 31.5, 26.5, 22.1, 17.9,
	14.4, 11.4, 8.6, 6.2, 4.4, 3.0, 2.2, 2.4, 3.5, 1.7,
	-1.3, -4.2, -6.0, -5.4, -1.5, 6.0, 12.6, 13.9, 12.3,
}
