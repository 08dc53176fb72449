package sos

import "math"

// Biquad is a Direct Form II Transposed band-pass section:
//
//	y  = b0*x + s1
//	s1 = b1*x - a1*y + s2
//	s2 = b2*x - a2*y
//
// a0 is normalized away during construction.
type Biquad struct {
	s1, s2     float32
	a1, a2     float32
	b0, b1, b2 float32
}

// NewBiquad derives band-pass coefficients from the RBJ cookbook form.
// Peak gain at the center frequency is unity.
func NewBiquad(centerHz, sampleRate, q float64) (*Biquad, error) {
	if err := validateSection(centerHz, sampleRate, q); err != nil {
		return nil, err
	}

	w0 := 2 * math.Pi * centerHz / sampleRate
	alpha := math.Sin(w0) / (2 * q)

	b0 := alpha
	b1 := 0.0
	b2 := -alpha
	a0 := 1 + alpha
	a1 := -2 * math.Cos(w0)
	a2 := 1 - alpha

	return &Biquad{
		b0: float32(b0 / a0),
		b1: float32(b1 / a0),
		b2: float32(b2 / a0),
		a1: float32(a1 / a0),
		a2: float32(a2 / a0),
	}, nil
}

// Process filters one sample.
func (f *Biquad) Process(x float32) float32 {
	y := f.b0*x + f.s1
	f.s1 = f.b1*x - f.a1*y + f.s2
	f.s2 = f.b2*x - f.a2*y

	return y
}

// Reset clears the delay line.
func (f *Biquad) Reset() {
	f.s1, f.s2 = 0, 0
}

// SVF is a state variable filter using the topology preserving transform.
// Band-pass output, unity peak gain at the center frequency.
type SVF struct {
	s1, s2 float32 // integrator states
	g      float32 // tuned frequency
	r      float32 // 1/Q damping
	h      float32 // feedback gain
}

// NewSVF returns a band-pass SVF.
func NewSVF(centerHz, sampleRate, q float64) (*SVF, error) {
	if err := validateSection(centerHz, sampleRate, q); err != nil {
		return nil, err
	}

	g := math.Tan(math.Pi * centerHz / sampleRate)
	r := 1 / q
	h := 1 / (1 + r*g + g*g)

	return &SVF{
		g: float32(g),
		r: float32(r),
		h: float32(h),
	}, nil
}

// Process filters one sample.
func (f *SVF) Process(x float32) float32 {
	hp := (x - (f.r+f.g)*f.s1 - f.s2) * f.h

	v1 := f.g * hp
	bp := v1 + f.s1
	f.s1 = bp + v1

	v2 := f.g * bp
	lp := v2 + f.s2
	f.s2 = lp + v2

	return bp * f.r
}

// Reset clears the integrator states.
func (f *SVF) Reset() {
	f.s1, f.s2 = 0, 0
}

// CytomicSVF is the Cytomic derivation of the state variable filter. It
// holds up better than Biquad and SVF at high Q combined with center
// frequencies far below Nyquist.
type CytomicSVF struct {
	s1, s2     float32
	a1, a2, a3 float32
	norm       float32
}

// NewCytomicSVF returns a band-pass Cytomic SVF.
func NewCytomicSVF(centerHz, sampleRate, q float64) (*CytomicSVF, error) {
	if err := validateSection(centerHz, sampleRate, q); err != nil {
		return nil, err
	}

	g := math.Tan(math.Pi * centerHz / sampleRate)
	k := 1 / q
	denom := 1 + g*(g+k)

	return &CytomicSVF{
		a1:   float32(1 / denom),
		a2:   float32(g / denom),
		a3:   float32(g * g / denom),
		norm: float32(k),
	}, nil
}

// Process filters one sample.
func (f *CytomicSVF) Process(x float32) float32 {
	a2s1 := f.a2 * f.s1

	tmp := a2s1 + f.s2
	v3 := x - tmp + a2s1

	v1 := f.a1*f.s1 + f.a2*v3
	v2 := f.a3*v3 + tmp

	f.s1 = 2*v1 - f.s1
	f.s2 = 2*v2 - f.s2

	return v1 * f.norm
}

// Reset clears the integrator states.
func (f *CytomicSVF) Reset() {
	f.s1, f.s2 = 0, 0
}

// Section constructors in SectionFunc form, for Cascade.
var (
	BiquadSection SectionFunc = func(centerHz, sampleRate, q float64) (Filter, error) {
		return NewBiquad(centerHz, sampleRate, q)
	}
	SVFSection SectionFunc = func(centerHz, sampleRate, q float64) (Filter, error) {
		return NewSVF(centerHz, sampleRate, q)
	}
	CytomicSVFSection SectionFunc = func(centerHz, sampleRate, q float64) (Filter, error) {
		return NewCytomicSVF(centerHz, sampleRate, q)
	}
)
