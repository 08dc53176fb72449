package buffer

import "testing"

func TestNewRingRejectsBadCapacity(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewRing[int](n); err == nil {
			t.Errorf("NewRing(%d) should fail", n)
		}
	}
}

func TestRingStartsZeroFilled(t *testing.T) {
	r, err := NewRing[float64](4)
	if err != nil {
		t.Fatal(err)
	}

	if r.Cap() != 4 {
		t.Fatalf("Cap() = %d, want 4", r.Cap())
	}

	r.Do(func(i int, v float64) {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	})
}

func TestRingPushEvictOrder(t *testing.T) {
	r, err := NewRing[int](3)
	if err != nil {
		t.Fatal(err)
	}

	// Fill past capacity; the window should hold the last three pushes
	// oldest-first.
	for v := 1; v <= 5; v++ {
		r.PushEvict(v)
	}

	want := []int{3, 4, 5}
	r.Do(func(i, v int) {
		if v != want[i] {
			t.Errorf("element %d = %d, want %d", i, v, want[i])
		}
	})

	for i, w := range want {
		if got := r.At(i); got != w {
			t.Errorf("At(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestRingWrapManyTimes(t *testing.T) {
	r, err := NewRing[int](7)
	if err != nil {
		t.Fatal(err)
	}

	for v := range 1000 {
		r.PushEvict(v)
	}

	// Oldest element is 993, newest is 999.
	r.Do(func(i, v int) {
		if v != 993+i {
			t.Fatalf("element %d = %d, want %d", i, v, 993+i)
		}
	})
}

func TestRingFill(t *testing.T) {
	r, err := NewRing[int](3)
	if err != nil {
		t.Fatal(err)
	}

	r.PushEvict(1)
	r.PushEvict(2)
	r.Fill(9)

	r.Do(func(i, v int) {
		if v != 9 {
			t.Errorf("element %d = %d, want 9", i, v)
		}
	})
}
