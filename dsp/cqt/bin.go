package cqt

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/iso226"
)

// minEffectiveLen keeps every window longer than the typical input chunk,
// so no energy accumulates at frequencies that couple with the chunk size.
const minEffectiveLen = 800

// Output is the product of one bin for one refresh. An array of them is a
// full bank output. Each channel yields a complex sum plus a scalar
// perceptual sound level.
type Output struct {
	Left, Right complex64

	// LeftPerceptual and RightPerceptual are ISO 226 adjusted,
	// approximate phon dB. No reference pressure is known without a
	// calibrated microphone; a uniform summand approximates real phon
	// levels.
	LeftPerceptual  float32
	RightPerceptual float32

	// Freq is the center frequency of the originating bin.
	Freq float32

	// ISO226Factor corrects relative magnitudes in linear space.
	ISO226Factor float32
}

// Bin demodulates a decimated stream at one center frequency and sums a
// sliding window of the resulting terms.
type Bin struct {
	center       float32
	iso226Offset float32

	terms *buffer.Ring[core.StereoComplex]

	// phase drifts as the window slides; velocity is the constant
	// per-stride rotation at the decimated rate.
	phase    float32
	velocity float32

	// decimation reads only every nth input frame.
	decimation int
	// skip carries the decimation remainder into the next consume.
	skip int
}

// NewBin returns a bin for the given center frequency. size is the window
// length in input samples before decimation; the internal ring holds
// ceil(size/decimation) terms.
func NewBin(centerHz float64, size, decimation int, sampleRate float64) (*Bin, error) {
	if sampleRate <= 0 {
		return nil, errSampleRate
	}

	if size < 1 {
		return nil, errSize
	}

	if decimation < 1 {
		return nil, errDecimation
	}

	ringLen := int(math.Ceil(float64(size) / float64(decimation)))
	if ringLen*decimation < minEffectiveLen {
		return nil, errWindow
	}

	terms, err := buffer.NewRing[core.StereoComplex](ringLen)
	if err != nil {
		return nil, err
	}

	return &Bin{
		center:       float32(centerHz),
		iso226Offset: float32(iso226.Gain(centerHz)),
		terms:        terms,
		velocity:     float32(2 * math.Pi * centerHz * float64(decimation) / sampleRate),
		decimation:   decimation,
	}, nil
}

// Consume demodulates every decimation-th frame of input into the term
// ring, evicting the oldest terms. Input lengths that do not divide the
// decimation carry their remainder into the next call.
func (b *Bin) Consume(input []core.StereoSample) {
	if b.skip != 0 {
		b.phase += b.velocity

		if b.skip >= len(input) {
			b.skip -= len(input)
			return
		}

		input = input[b.skip:]
	}

	readLen := len(input) / b.decimation
	b.skip = (b.decimation - len(input)%b.decimation) % b.decimation

	phase := b.phase

	for i := range readLen {
		sin, cos := math.Sincos(float64(phase))
		c, s := float32(cos), float32(sin)

		frame := input[i*b.decimation]
		b.terms.PushEvict(core.StereoComplex{
			Left:  complex(frame.Left*c, -frame.Left*s),
			Right: complex(frame.Right*c, -frame.Right*s),
		})

		phase += b.velocity
		if phase > 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}

	b.phase = phase
}

// Produce sums the window and converts each channel to an approximate RMS
// with a perceptual correction. The bin has extracted one harmonic
// component; an RMS over it follows a consistent path to the inverse
// ISO 226 curve, letting the machine weigh sound roughly like a human.
func (b *Bin) Produce() Output {
	var sum core.StereoComplex

	b.terms.Do(func(_ int, t core.StereoComplex) {
		sum.Left += t.Left
		sum.Right += t.Right
	})

	// This RMS is off by a constant factor the consumers do not care
	// about; the uniform summand in the perceptual level absorbs it.
	scaled := sum.Scale(float32(math.Sqrt2) / float32(b.EffectiveLen()))

	return Output{
		Left:            sum.Left,
		Right:           sum.Right,
		LeftPerceptual:  float32(core.LinearToDB(float64(core.Abs32(scaled.Left)))) + b.iso226Offset,
		RightPerceptual: float32(core.LinearToDB(float64(core.Abs32(scaled.Right)))) + b.iso226Offset,
		Freq:            b.center,
		ISO226Factor:    float32(core.DBPowerToLinear(float64(b.iso226Offset))),
	}
}

// EffectiveLen is the window length in input samples before decimation.
func (b *Bin) EffectiveLen() int {
	return b.terms.Cap() * b.decimation
}

// Len is the internal ring length, filled only after decimation. This is
// not the window length of the bin.
func (b *Bin) Len() int {
	return b.terms.Cap()
}
