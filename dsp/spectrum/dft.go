package spectrum

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/filter/sos"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// DFT is a single Goertzel-demodulated frequency bin with a shaped window.
//
// Every input sample is demodulated against a rotating phasor at the
// center frequency and pushed into a ring of complex terms. A windowed sum
// of the ring yields the bin amplitude. Summing on every sample buys
// nothing once the window overlap satisfies COLA power flatness, so the
// output is refreshed only at the window's COLA interval and repeated in
// between; this is the usual short-time Fourier transform behavior.
//
// The output is an amplitude, as if a constant tone had been present since
// the previous refresh. Peaks, RMS and rise-time measurements derive from
// it directly.
type DFT struct {
	factors []float32
	norm    float32

	terms *buffer.Ring[complex64]

	phase    complex64
	velocity complex64

	repeatInterval uint32
	repeated       uint32

	last float32
}

// NewDFT returns a bin at the given center frequency. The length sets the
// effective Q, which grows proportionally with it.
func NewDFT(centerHz, sampleRate float64, length int, windowType window.Type, opts ...window.Option) (*DFT, error) {
	if sampleRate <= 0 {
		return nil, errSampleRate
	}

	if centerHz <= 0 || centerHz >= sampleRate/2 {
		return nil, errCenter
	}

	if length < 1 {
		return nil, errLength
	}

	factors, err := window.Generate32(windowType, length, opts...)
	if err != nil {
		return nil, err
	}

	norm := float32(0)
	for _, w := range factors {
		norm += w
	}

	terms, err := buffer.NewRing[complex64](length)
	if err != nil {
		return nil, err
	}

	omega := 2 * math.Pi * centerHz / sampleRate
	sin, cos := math.Sincos(omega)

	return &DFT{
		factors:        factors,
		norm:           norm,
		terms:          terms,
		phase:          complex(1, 0),
		velocity:       complex(float32(cos), float32(sin)),
		repeatInterval: uint32(window.Repeat(windowType, length)),
	}, nil
}

// NewDFTFromArgs sizes the bin from filter args: the window spans Q cycles
// of the center frequency.
func NewDFTFromArgs(args sos.Args, windowType window.Type, opts ...window.Option) (*DFT, error) {
	length := int(math.Ceil(args.Q * args.SampleRate / args.CenterHz))

	return NewDFT(args.CenterHz, args.SampleRate, length, windowType, opts...)
}

// Process demodulates one sample and returns the bin amplitude. The value
// changes only at the COLA refresh interval and is repeated in between.
func (d *DFT) Process(sample float32) float32 {
	pr, pi := real(d.phase), imag(d.phase)

	d.terms.PushEvict(complex(sample*pr, -sample*pi))

	vr, vi := real(d.velocity), imag(d.velocity)
	d.phase = complex(pr*vr-pi*vi, pr*vi+pi*vr)

	if d.repeated == d.repeatInterval {
		d.repeated = 0
		d.refresh()
	}

	d.repeated++

	return d.last
}

// refresh re-sums the ring under the window and renormalizes the phasor so
// rounding drift cannot accumulate across refreshes.
func (d *DFT) refresh() {
	var sumRe, sumIm float32

	d.terms.Do(func(i int, term complex64) {
		w := d.factors[i]
		sumRe += real(term) * w
		sumIm += imag(term) * w
	})

	mag := float32(math.Hypot(float64(sumRe), float64(sumIm)))
	d.last = 2 * mag / d.norm

	pr, pi := real(d.phase), imag(d.phase)

	norm := float32(math.Hypot(float64(pr), float64(pi)))
	d.phase = complex(pr/norm, pi/norm)
}

// Length returns the number of samples needed to saturate the window.
func (d *DFT) Length() int {
	return len(d.factors)
}

// UpdateInterval returns the COLA refresh pace in samples.
func (d *DFT) UpdateInterval() int {
	return int(d.repeatInterval)
}

// Reset clears the ring and phasor so the bin starts from silence.
func (d *DFT) Reset() {
	d.terms.Fill(0)
	d.phase = complex(1, 0)
	d.repeated = 0
	d.last = 0
}
