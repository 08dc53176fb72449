// Package bank computes the geometry of logarithmically spaced analysis
// filter banks: per-bin edge and center frequencies, bandwidths, implied
// quality factors, and perceptual correction summands. The geometry is
// pure math recomputed on demand; it owns no filter state.
package bank
