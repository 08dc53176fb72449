package sos

import "errors"

var (
	errSampleRate = errors.New("sos: sample rate must be positive")
	errCenter     = errors.New("sos: center frequency must lie in (0, sampleRate/2)")
	errQ          = errors.New("sos: quality factor must be positive")
	errStages     = errors.New("sos: cascade needs at least one stage")
	errOrder      = errors.New("sos: filter order must be even and positive")
	errStagger    = errors.New("sos: stagger scale must be positive")
	errNilSection = errors.New("sos: nil section constructor")
)
