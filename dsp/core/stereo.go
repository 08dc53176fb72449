package core

import "math"

// StereoSample is one interleaved stereo frame in single precision.
// Analysis front-ends consume slices of these in arbitrary chunk sizes.
type StereoSample struct {
	Left, Right float32
}

// StereoComplex pairs one demodulated complex term per channel.
type StereoComplex struct {
	Left, Right complex64
}

// Scale multiplies both channels by a scalar.
func (s StereoComplex) Scale(k float32) StereoComplex {
	return StereoComplex{
		Left:  scale64c(s.Left, k),
		Right: scale64c(s.Right, k),
	}
}

func scale64c(c complex64, k float32) complex64 {
	return complex(real(c)*k, imag(c)*k)
}

// Abs32 returns |c| for a single-precision complex value.
// The intermediate math runs in float64 to avoid overflow in the squares.
func Abs32(c complex64) float32 {
	return float32(math.Hypot(float64(real(c)), float64(imag(c))))
}

// Phase32 returns the phase angle of c in radians, in (-Pi, Pi].
func Phase32(c complex64) float32 {
	return float32(math.Atan2(float64(imag(c)), float64(real(c))))
}
