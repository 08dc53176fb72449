// Package rms accumulates root-mean-square levels over stereo audio.
//
// RMS is not very useful on its own. It over-represents bass tones below
// 40 Hz that humans barely perceive and under-emphasizes high frequency
// tones. Feed the accumulator K-weighted or A-weighted audio to measure
// perceived loudness.
package rms

import (
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Level holds one RMS reading per channel.
type Level struct {
	Left, Right float64
}

// Accumulator sums squared samples across calls. The zero value is ready
// to use.
type Accumulator struct {
	leftSumSq  float64
	rightSumSq float64
	n          int
}

// Consume adds a chunk of frames to the running sums.
func (a *Accumulator) Consume(frames []core.StereoSample) {
	for _, f := range frames {
		a.leftSumSq += float64(f.Left) * float64(f.Left)
		a.rightSumSq += float64(f.Right) * float64(f.Right)
	}

	a.n += len(frames)
}

// Level returns the RMS over everything consumed since the last reset.
// With nothing consumed it returns zero levels.
func (a *Accumulator) Level() Level {
	n := float64(max(a.n, 1))

	return Level{
		Left:  math.Sqrt(a.leftSumSq / n),
		Right: math.Sqrt(a.rightSumSq / n),
	}
}

// Count returns the number of frames consumed since the last reset.
func (a *Accumulator) Count() int {
	return a.n
}

// Reset clears the sums, starting a new measurement interval.
func (a *Accumulator) Reset() {
	a.leftSumSq = 0
	a.rightSumSq = 0
	a.n = 0
}
