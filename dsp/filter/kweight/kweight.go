package kweight

import (
	"errors"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// ReferenceRate is the sample rate the filter constants are defined for.
const ReferenceRate = 48000

var errSampleRate = errors.New("kweight: coefficients are defined for 48 kHz only")

// biquad is a Direct Form I section. a0 is assumed 1.
type biquad struct {
	a1, a2     float32
	b0, b1, b2 float32

	x1, x2 float32
	y1, y2 float32
}

func (f *biquad) process(x float32) float32 {
	y := f.b0*x + f.b1*f.x1 + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return y
}

func (f *biquad) reset() {
	f.x1, f.x2 = 0, 0
	f.y1, f.y2 = 0, 0
}

// Coefficients from ITU-R BS.1770-5, Tables 1 and 2.
var (
	shelfStage = biquad{
		a1: -1.69065929318241,
		a2: 0.73248077421585,
		b0: 1.53512485958697,
		b1: -2.69169618940638,
		b2: 1.19839281085285,
	}

	highpassStage = biquad{
		a1: -1.99004745483398,
		a2: 0.99007225036621,
		b0: 1.0,
		b1: -2.0,
		b2: 1.0,
	}
)

// Weighter filters stereo audio through the two K-weighting stages, one
// chain per channel.
type Weighter struct {
	leftShelf    biquad
	leftHighpass biquad

	rightShelf    biquad
	rightHighpass biquad
}

// New returns a K-weighting filter for the given sample rate. Only the
// 48 kHz reference rate is supported; the standard publishes no
// coefficients for other rates.
func New(sampleRate float64) (*Weighter, error) {
	if sampleRate != ReferenceRate {
		return nil, errSampleRate
	}

	return &Weighter{
		leftShelf:     shelfStage,
		leftHighpass:  highpassStage,
		rightShelf:    shelfStage,
		rightHighpass: highpassStage,
	}, nil
}

// Process filters one stereo frame.
func (w *Weighter) Process(frame core.StereoSample) core.StereoSample {
	return core.StereoSample{
		Left:  w.leftHighpass.process(w.leftShelf.process(frame.Left)),
		Right: w.rightHighpass.process(w.rightShelf.process(frame.Right)),
	}
}

// ProcessBlock filters src into dst. Both slices must have the same
// length; dst may alias src.
func (w *Weighter) ProcessBlock(dst, src []core.StereoSample) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1]
	for i, frame := range src {
		dst[i] = w.Process(frame)
	}
}

// Reset clears all filter state.
func (w *Weighter) Reset() {
	w.leftShelf.reset()
	w.leftHighpass.reset()
	w.rightShelf.reset()
	w.rightHighpass.reset()
}
