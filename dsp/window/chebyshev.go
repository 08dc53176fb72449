package window

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// DolphChebyshev synthesizes the equiripple window of length n with the
// given side-lobe attenuation in dB.
//
// The window is solved discretely rather than sampled from the continuous
// closed form: direct pointwise evaluation has unpredictable side-lobe
// errors at the lengths used for audio analysis, either curving the floor
// upward or raising the first side lobes. The procedure is:
//
//  1. beta = cosh(acosh(10^(attenuation/20)) / (n-1)).
//  2. Sample an n-point frequency-domain spectrum: at index k evaluate
//     T_{n-1}(beta*cos(pi*k/n)) / T_{n-1}(beta) with a centering phase
//     shift of -2*pi*k*(n-1)/(2n), forming each sample in polar form.
//  3. Inverse-transform the spectrum to the time domain.
//  4. Enforce exact left-right symmetry by averaging mirrored pairs.
//  5. Normalize so the maximum weight is 1.
//
// The first and last indices are deliberately not halved. Derivations
// built on the cosine summation formula need that correction for an
// asymmetry this sampling method does not have; the edge "pedestals" that
// remain are part of the true discrete solution, not an artifact.
func DolphChebyshev(n int, attenuationDB float64) ([]float64, error) {
	if n < 2 {
		return nil, errChebyshevTooShort
	}

	if attenuationDB <= 0 {
		return nil, errChebyshevAttenuation
	}

	spectrum := chebyshevSpectrum(n, attenuationDB)

	out, err := inverseDFT(spectrum)
	if err != nil {
		return nil, err
	}

	// Remove residual transform asymmetry before normalization.
	for i := range n / 2 {
		avg := 0.5 * (out[i] + out[n-1-i])
		out[i] = avg
		out[n-1-i] = avg
	}

	max := math.Inf(-1)
	for _, v := range out {
		max = math.Max(max, v)
	}

	for i := range out {
		out[i] /= max
	}

	return out, nil
}

// chebyshevSpectrum samples the frequency-domain form of the window.
func chebyshevSpectrum(n int, attenuationDB float64) []complex128 {
	m := float64(n - 1)
	tg := core.DBToLinear(attenuationDB)
	beta := math.Cosh(math.Acosh(tg) / m)

	denom := chebyshevT(n-1, beta)
	shift := (float64(n) - 1.0) / 2.0

	spectrum := make([]complex128, n)
	for k := range spectrum {
		// Sample the circle at 2*pi*k/n, halved to get the cosine
		// argument; this keeps the samples symmetric around Nyquist.
		theta := (2.0 * math.Pi * float64(k)) / float64(2*n)
		x := beta * math.Cos(theta)

		weight := chebyshevT(n-1, x) / denom
		angle := -2.0 * math.Pi * float64(k) * shift / float64(n)

		spectrum[k] = cmplx.Rect(weight, angle)
	}

	return spectrum
}

// chebyshevT evaluates the Chebyshev polynomial of the first kind,
// dispatching on the domain for numerical stability: Clenshaw recurrence
// inside [-1, 1], the hyperbolic form outside.
func chebyshevT(n int, x float64) float64 {
	switch {
	case math.Abs(x) <= 1.0:
		return chebyshevTClenshaw(n, x)
	case x >= 1.0:
		return math.Cosh(float64(n) * math.Acosh(x))
	default:
		sign := 1.0
		if n%2 != 0 {
			sign = -1.0
		}

		return sign * math.Cosh(float64(n)*math.Acosh(-x))
	}
}

// chebyshevTClenshaw evaluates T_n(x) by the Clenshaw recurrence, which is
// stable on [-1, 1] where the three-term recurrence in monomial form loses
// digits.
func chebyshevTClenshaw(n int, x float64) float64 {
	if n == 0 {
		return 1.0
	}

	bKPlus1 := 0.0
	bKPlus2 := 0.0
	twoX := 2.0 * x

	for k := n; k >= 1; k-- {
		alpha := 0.0
		if k == n {
			alpha = 1.0
		}

		bK := twoX*bKPlus1 - bKPlus2 + alpha
		bKPlus2 = bKPlus1
		bKPlus1 = bK
	}

	return x*bKPlus1 - bKPlus2
}

// inverseDFT converts the sampled spectrum to real time-domain weights.
// Lengths the FFT backend supports go through a plan; other lengths fall
// back to the direct O(n^2) transform, which is still construction-time
// work done once per window.
func inverseDFT(spectrum []complex128) ([]float64, error) {
	n := len(spectrum)
	out := make([]float64, n)

	if plan, err := algofft.NewPlan64(n); err == nil {
		tmp := make([]complex128, n)
		if err := plan.Inverse(tmp, spectrum); err != nil {
			return nil, err
		}

		for i, c := range tmp {
			out[i] = real(c)
		}

		return out, nil
	}

	for m := range out {
		sum := complex(0, 0)
		for k, xk := range spectrum {
			angle := 2.0 * math.Pi * float64(k) * float64(m) / float64(n)
			sum += xk * cmplx.Rect(1.0, angle)
		}

		out[m] = real(sum) / float64(n)
	}

	return out, nil
}
