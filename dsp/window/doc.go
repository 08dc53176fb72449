// Package window generates analysis window functions and measures their
// spectral properties.
//
// Fixed-shape windows (boxcar, Bartlett, Welch, Hamming) are produced by
// integrating the continuous shape over each discrete bin. The
// Dolph-Chebyshev window is synthesized in the frequency domain for an
// exact, tunable side-lobe floor. Repeat reports the COLA interval at
// which windowed sums must be refreshed to keep power flat over time.
package window
