package sos

import "math"

// Filter processes one sample at a time and can be returned to silence.
type Filter interface {
	Process(x float32) float32
	Reset()
}

// SectionFunc constructs a band-pass second-order section. The package
// provides BiquadSection, SVFSection and CytomicSVFSection; Cascade uses
// one of these to build its stages.
type SectionFunc func(centerHz, sampleRate, q float64) (Filter, error)

// Args collects the parameters shared by all band filters.
type Args struct {
	// CenterHz is the frequency of peak gain.
	CenterHz float64
	// SampleRate in Hz.
	SampleRate float64
	// Q is the quality factor, CenterHz divided by bandwidth.
	Q float64

	// GainFactor scales the final output of a filter or cascade.
	// Zero means unity; sections are gain normalized internally so
	// banks of filters level without per-band correction.
	GainFactor float64

	// Butterworth distributes per-stage Q by Butterworth ratios.
	Butterworth bool
	// StaggerScale detunes stage center frequencies around CenterHz to
	// soften perfect ringing. Zero disables staggering; the total
	// spread grows with the scale.
	StaggerScale float64
	// Stages is the cascade depth, 12 dB per octave each. Seven stages
	// keep a full-scale tone one octave out below visibility.
	Stages int
}

// DefaultArgs returns the conventional starting point for a watch filter.
func DefaultArgs() Args {
	return Args{
		CenterHz:   1000.0,
		SampleRate: 48_000.0,
		Q:          10.0,
		GainFactor: 1.0,
		Stages:     4,
	}
}

// NSamples returns the number of samples spanning waves full cycles at the
// center frequency. Useful for sizing settle and measurement intervals.
func (a Args) NSamples(waves float64) int {
	return int(math.Ceil(a.SampleRate / a.CenterHz * waves))
}

func (a Args) validate() error {
	return validateSection(a.CenterHz, a.SampleRate, a.Q)
}

func validateSection(centerHz, sampleRate, q float64) error {
	if sampleRate <= 0 {
		return errSampleRate
	}

	if centerHz <= 0 || centerHz >= sampleRate/2 {
		return errCenter
	}

	if q <= 0 {
		return errQ
	}

	return nil
}
