package bank

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/iso226"
)

// Bin describes one band of a logarithmically spaced filter bank.
type Bin struct {
	// Min is the lower band edge in Hz.
	Min float64
	// Center is the center frequency in Hz.
	Center float64
	// Max is the upper band edge in Hz.
	Max float64
	// ISO226Gain is the perceptual correction summand in dB. Add it to a
	// measured dB value at Center for an iso-loud relative value.
	ISO226Gain float64
}

// Bandwidth returns the difference between the band edges.
func (b Bin) Bandwidth() float64 {
	return b.Max - b.Min
}

// Q returns the quality factor for this bin assuming a perfect filter.
func (b Bin) Q() float64 {
	return b.Center / b.Bandwidth()
}

// Bins splits [min, max] into count logarithmically spaced bands.
//
// The log ratio max/min is walked in 2*count equal half-steps; bin i takes
// its lower edge, center and upper edge from steps 2i, 2i+1 and 2i+2, so
// the first bin's lower edge lands on min and the last bin's upper edge on
// max to within float64 precision. Logarithmic spacing matches musical
// intervals and human pitch perception.
func Bins(min, max float64, count int) ([]Bin, error) {
	if max <= min {
		return nil, fmt.Errorf("bank: max must be > min: %v <= %v", max, min)
	}

	if count <= 1 {
		return nil, fmt.Errorf("bank: count must be > 1: %d", count)
	}

	steps := 2 * count
	logStep := math.Log2(max/min) / float64(steps)
	freq := func(i int) float64 {
		return min * math.Exp2(logStep*float64(i))
	}

	bins := make([]Bin, count)
	for i := range bins {
		i0 := 2 * i
		center := freq(i0 + 1)

		bins[i] = Bin{
			Min:        freq(i0),
			Center:     center,
			Max:        freq(i0 + 2),
			ISO226Gain: iso226.Gain(center),
		}
	}

	return bins, nil
}

// Lookup returns the bin whose center is closest to target in ratio
// distance |1 - target/center|. Ratio distance rather than absolute
// distance keeps the selection fair across logarithmic spacing. A target
// at or below zero selects the first bin; a target far above max selects
// the last.
func Lookup(min, max float64, count int, target float64) (Bin, error) {
	bins, err := Bins(min, max, count)
	if err != nil {
		return Bin{}, err
	}

	closest := 0
	minDist := math.MaxFloat64

	for i, b := range bins {
		dist := math.Abs(1.0 - target/b.Center)
		if dist < minDist {
			closest = i
			minDist = dist
		}
	}

	return bins[closest], nil
}
