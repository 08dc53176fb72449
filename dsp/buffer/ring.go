package buffer

import "fmt"

// Ring is a fixed-capacity sliding window over values of type T.
//
// The ring is always full: it is created holding capacity zero values and
// PushEvict replaces the oldest element with a new one. Iteration visits
// elements oldest-first, so element 0 of a visit is the value that will be
// evicted by the next PushEvict.
type Ring[T any] struct {
	data []T
	head int // index of the oldest element
}

// NewRing returns a Ring holding capacity zero values.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("buffer: ring capacity must be > 0: %d", capacity)
	}

	return &Ring[T]{data: make([]T, capacity)}, nil
}

// Cap returns the fixed capacity, which is also the occupancy.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// PushEvict overwrites the oldest element with v.
func (r *Ring[T]) PushEvict(v T) {
	r.data[r.head] = v

	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}
}

// At returns the element at logical position i, where 0 is the oldest.
func (r *Ring[T]) At(i int) T {
	i += r.head
	if i >= len(r.data) {
		i -= len(r.data)
	}

	return r.data[i]
}

// Do calls fn for every element, oldest-first. The logical index passed to
// fn counts up from 0 for the oldest element.
func (r *Ring[T]) Do(fn func(i int, v T)) {
	n := len(r.data)
	for i := range n {
		j := r.head + i
		if j >= n {
			j -= n
		}

		fn(i, r.data[j])
	}
}

// Fill sets every element to v and resets the logical order.
func (r *Ring[T]) Fill(v T) {
	for i := range r.data {
		r.data[i] = v
	}

	r.head = 0
}
