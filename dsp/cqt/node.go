package cqt

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Node is a full constant-Q filter bank.
type Node struct {
	bins   []*Bin
	q      float64
	output []Output
}

// NewNode builds a bank of resolution bins spaced linearly in octaves from
// 20 Hz to Nyquist.
//
// The update rate is the expected maximum refresh in calls per second; it
// establishes a floor on the window length, since high-frequency bins
// would otherwise resolve in fewer samples than arrive between refreshes.
// Whenever a bin has more than twice the samples it needs, its input is
// decimated by another factor of two, keeping ring sizes roughly constant
// across the bank.
func NewNode(resolution int, sampleRate, updateRate float64) (*Node, error) {
	if resolution < 2 {
		return nil, errResolution
	}

	if sampleRate <= 0 {
		return nil, errSampleRate
	}

	if updateRate <= 0 {
		return nil, errUpdateRate
	}

	freqMin := 20.0
	freqMax := sampleRate / 2

	logMin := math.Log2(freqMin)
	logMax := math.Log2(freqMax)
	logStep := (logMax - logMin) / float64(resolution-1)

	// Window length follows the quality implied by bins per octave.
	octaves := math.Log2(freqMax / freqMin)
	bPerOctave := float64(resolution) / octaves
	q := 1 / (math.Exp2(1/bPerOctave) - 1)

	sizeMin := int(math.Ceil(sampleRate / updateRate))
	sizeMin = max(sizeMin, minEffectiveLen)

	bins := make([]*Bin, resolution)
	for n := range bins {
		freq := math.Exp2(logMin + float64(n)*logStep)

		decimation := 1
		if exp := math.Floor(math.Log2(freqMax / (freq * 4))); exp >= 1 {
			decimation = 1 << int(exp)
		}

		size := int(math.Ceil(q * sampleRate / freq))

		bin, err := NewBin(freq, max(size, sizeMin), decimation, sampleRate)
		if err != nil {
			return nil, err
		}

		bins[n] = bin
	}

	return &Node{
		bins:   bins,
		q:      q,
		output: make([]Output, resolution),
	}, nil
}

// Consume feeds one chunk of frames to every bin.
func (n *Node) Consume(input []core.StereoSample) {
	for _, b := range n.bins {
		b.Consume(input)
	}
}

// Produce refreshes and returns the bank output. The slice is reused
// across calls; callers keeping results past the next Produce must copy.
func (n *Node) Produce() []Output {
	for i, b := range n.bins {
		n.output[i] = b.Produce()
	}

	return n.output
}

// Resolution returns the number of bins.
func (n *Node) Resolution() int {
	return len(n.bins)
}

// Q returns the quality factor shared by every bin in the bank.
func (n *Node) Q() float64 {
	return n.q
}

// Bin returns the i-th bin, ordered by ascending center frequency.
func (n *Node) Bin(i int) *Bin {
	return n.bins[i]
}
