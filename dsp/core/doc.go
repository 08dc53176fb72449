// Package core provides shared numeric helpers and sample types used
// across the analysis packages: dB conversions, tolerant comparisons,
// and the single-precision stereo frame and complex-term types that the
// filter-bank front ends exchange.
package core
