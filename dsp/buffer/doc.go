// Package buffer provides a fixed-capacity, always-full ring for sliding
// window analysis. The ring is sized once at construction, starts filled
// with zero values, and supports exactly one mutation: overwrite the
// oldest element. This matches the occupancy invariant of sliding-window
// detectors (the window always holds exactly capacity terms) and removes
// the read/write index bookkeeping a general-purpose ring would need.
package buffer
