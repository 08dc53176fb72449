// Package cqt implements a constant-Q transform over stereo audio.
//
// A constant-Q transform uses a variable window size, so higher
// frequencies resolve with shorter windows and faster response. Terms
// cannot be reused the way an FFT reuses them, but sliding windows and
// logarithmic bin spacing complicate reuse anyway. Bin centers are spaced
// for perceptual consistency (linear in octaves) across the full range
// from 20 Hz to Nyquist, with the bin count left to the consumer.
// Long-wavelength bins decimate their input to keep window memory flat
// across the bank.
package cqt
