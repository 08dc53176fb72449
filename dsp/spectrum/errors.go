package spectrum

import "errors"

var (
	errSampleRate = errors.New("spectrum: sample rate must be positive")
	errCenter     = errors.New("spectrum: center frequency must lie in (0, sampleRate/2)")
	errLength     = errors.New("spectrum: window length must be positive")
)
