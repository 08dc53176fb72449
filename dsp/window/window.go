package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	// TypeBoxCar is the rectangular window. Very poor side-lobe behavior
	// (-13.3 dB first lobe) and effectively doubled response time, since a
	// tone must reach the very tail of the equal weighting before the
	// output saturates. Kept for engineering comparisons.
	TypeBoxCar Type = iota

	// TypeBartlett is the triangle window, -26.5 dB peak side lobe.
	TypeBartlett

	// TypeWelch is the parabolic window, -21.3 dB first side lobe.
	TypeWelch

	// TypeHamming cancels its first side lobe down to -42.7 dB.
	TypeHamming

	// TypeDolphChebyshev is the equiripple-optimal window: minimum main
	// lobe width for a chosen side-lobe attenuation. The attenuation is
	// tunable via WithAttenuationDB; everything between the peak and the
	// flat side-lobe floor is usable signal.
	TypeDolphChebyshev
)

// String returns a human-readable name for the window type.
func (t Type) String() string {
	switch t {
	case TypeBoxCar:
		return "BoxCar"
	case TypeBartlett:
		return "Bartlett"
	case TypeWelch:
		return "Welch"
	case TypeHamming:
		return "Hamming"
	case TypeDolphChebyshev:
		return "Dolph-Chebyshev"
	default:
		return "Unknown"
	}
}

const (
	// subSamplesPerBin is the integration resolution used when converting
	// a continuous window shape into discrete bin weights.
	subSamplesPerBin = 512

	// welchColaFactor is the COLA repeat fraction for the Welch window.
	welchColaFactor = 0.293

	// defaultAttenuationDB is the Dolph-Chebyshev side-lobe floor used
	// when no attenuation option is given.
	defaultAttenuationDB = 40.0
)

// Option configures window generation.
type Option func(*config)

type config struct {
	attenuationDB float64
}

func defaultConfig() config {
	return config{attenuationDB: defaultAttenuationDB}
}

// WithAttenuationDB sets the Dolph-Chebyshev side-lobe attenuation in dB.
// It has no effect on the fixed-shape windows.
func WithAttenuationDB(db float64) Option {
	return func(c *config) {
		c.attenuationDB = db
	}
}

// Generate returns normalized window weights of the given length.
//
// The fixed-shape windows are produced by numerically integrating the
// continuous shape over each discrete bin; the Dolph-Chebyshev window is
// synthesized in the frequency domain (see [DolphChebyshev]) because
// pointwise evaluation of the closed form is unstable at useful lengths.
// The maximum weight is always exactly 1.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	switch t {
	case TypeBoxCar:
		return binWeights(boxcar, length)
	case TypeBartlett:
		return binWeights(bartlett, length)
	case TypeWelch:
		return binWeights(welch, length)
	case TypeHamming:
		return binWeights(hamming, length)
	case TypeDolphChebyshev:
		return DolphChebyshev(length, cfg.attenuationDB)
	default:
		return nil, errUnknownType
	}
}

// Generate32 returns the window truncated to single precision.
//
// Weights are always calculated in float64 for accuracy; hot paths that
// must reproduce outcomes in float32 arithmetic should sum the truncated
// weights rather than truncating the sum.
func Generate32(t Type, length int, opts ...Option) ([]float32, error) {
	w, err := Generate(t, length, opts...)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(w))
	for i, v := range w {
		out[i] = float32(v)
	}

	return out, nil
}

// Repeat returns the COLA re-sum interval in samples: how many samples may
// elapse between window applications without losing power flatness. Lower
// values overlap windows more and measure all data more equally; going
// below the returned interval only adds compute.
func Repeat(t Type, length int) int {
	n := float64(length)

	switch t {
	case TypeWelch:
		return int(math.Ceil(n * welchColaFactor))
	case TypeDolphChebyshev:
		// The narrower main lobe demands more frequent re-summing.
		return int(math.Ceil(n / 4.0))
	default:
		return int(math.Ceil(n / 2.0))
	}
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) error {
	coeffs, err := Generate(t, len(buf), opts...)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(buf, coeffs)

	return nil
}

// Sum returns the sum of the weights, used to normalize windowed sums.
func Sum(coeffs []float64) float64 {
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum
}

// Continuous shapes on [0, 1], integrated per bin by binWeights.

func boxcar(_ float64) float64 {
	return 1.0
}

func bartlett(x float64) float64 {
	if x < 0.5 {
		return 2.0 * x
	}

	return 2.0 - 2.0*x
}

func welch(x float64) float64 {
	t := 2.0*x - 1.0
	return 1.0 - t*t
}

func hamming(x float64) float64 {
	const a0 = 25.0 / 46.0
	return a0 - (1.0-a0)*math.Cos(2.0*math.Pi*x)
}

// binWeights integrates a continuous shape over each discrete bin and
// normalizes by the maximum observed weight unless some bin already
// integrates to exactly 1 (the boxcar case).
func binWeights(shape func(float64) float64, bins int) ([]float64, error) {
	if bins < 1 {
		return nil, validateLength(bins)
	}

	weights := make([]float64, bins)

	for bin := range bins {
		binStart := float64(bin) / float64(bins)
		binEnd := float64(bin+1) / float64(bins)

		step := (binEnd - binStart) / subSamplesPerBin

		sum := 0.0
		for s := range subSamplesPerBin {
			t := binStart + (float64(s)+0.5)*step
			sum += shape(t)
		}

		weights[bin] = sum / subSamplesPerBin
	}

	exact := false

	for _, w := range weights {
		if w == 1.0 {
			exact = true
			break
		}
	}

	if !exact {
		max := 0.0
		for _, w := range weights {
			max = math.Max(max, w)
		}

		if max > 0 {
			vecmath.ScaleBlock(weights, weights, 1.0/max)
		}
	}

	return weights, nil
}
