package cqt

import "errors"

var (
	errResolution = errors.New("cqt: resolution must be at least 2 bins")
	errSampleRate = errors.New("cqt: sample rate must be positive")
	errUpdateRate = errors.New("cqt: update rate must be positive")
	errWindow     = errors.New("cqt: effective window shorter than 800 samples")
	errDecimation = errors.New("cqt: decimation must be positive")
	errSize       = errors.New("cqt: window size must be positive")
)
