// Package spectrum implements a single-bin, Goertzel-based short-time
// Fourier transform. Each DFT watches one center frequency; banks of them
// at different Q and window settings share the same per-sample demodulation
// structure, so many bins parallelize well.
package spectrum
