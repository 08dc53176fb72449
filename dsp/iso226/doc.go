// Package iso226 converts per-frequency magnitudes into perceptually
// corrected relative levels using the ISO 226 equal-loudness contours.
//
// The package is not an amplitude-domain weighting filter. It produces dB
// summands for weighting the bins of an analysis filter bank, such as a
// constant-Q transform, so that equally loud tones at different
// frequencies map to equal output levels. For amplitude-domain weighting
// with simple filter rules, see the K-weighting chain in
// dsp/filter/kweight instead.
package iso226
