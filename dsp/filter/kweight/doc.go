// Package kweight applies the ITU-R BS.1770 K-weighting pre-filter to
// stereo audio: a high-frequency shelving stage followed by an RLB
// high-pass. A-weighting is another popular choice but was developed for
// pure tones; ISO 226 suits music better yet is harder to apply directly
// to an amplitude signal and more useful for weighting the bins of filter
// banks.
package kweight
