// Package sos implements second-order-section band-pass IIR filters and
// cascades of them.
//
// Three section topologies are provided. Biquad is the common Direct Form
// II Transposed band-pass. SVF is a topology-preserving-transform state
// variable filter that stays usable where biquad poles crowd the unit
// circle. CytomicSVF is the Cytomic derivation of the SVF, the most
// robust of the three at extreme Q and low center frequencies.
//
// Coefficients are derived in float64 and truncated once; the per-sample
// path runs entirely in float32 so behavior matches GPU-bound ports of
// the same filters.
//
// Cascade chains sections to steepen roll-off outside the pass band, with
// optional Butterworth Q ratios and center-frequency staggering to soften
// ringing.
package sos
