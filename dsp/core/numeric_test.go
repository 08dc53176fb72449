package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0.5, 1, 0, 0.5}, // swapped bounds
	}

	for _, c := range cases {
		if got := Clamp(c.value, c.min, c.max); got != c.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func TestDBRoundTrip(t *testing.T) {
	for _, db := range []float64{-120, -20, -6.0206, 0, 6.0206, 20} {
		lin := DBToLinear(db)
		if got := LinearToDB(lin); !NearlyEqual(got, db, 1e-9) {
			t.Errorf("LinearToDB(DBToLinear(%v)) = %v", db, got)
		}
	}

	if !math.IsInf(LinearToDB(0), -1) {
		t.Error("LinearToDB(0) should be -Inf")
	}

	if !math.IsNaN(LinearToDB(-1)) {
		t.Error("LinearToDB(-1) should be NaN")
	}
}

func TestDBPowerConventions(t *testing.T) {
	// 10 dB of power is a factor of 10; 20 dB of amplitude is also a factor of 10.
	if got := DBPowerToLinear(10); !NearlyEqual(got, 10, 1e-12) {
		t.Errorf("DBPowerToLinear(10) = %v, want 10", got)
	}

	if got := DBToLinear(20); !NearlyEqual(got, 10, 1e-12) {
		t.Errorf("DBToLinear(20) = %v, want 10", got)
	}
}

func TestAbsPhase32(t *testing.T) {
	c := complex(float32(3), float32(4))

	if got := Abs32(c); math.Abs(float64(got)-5) > 1e-6 {
		t.Errorf("Abs32(3+4i) = %v, want 5", got)
	}

	up := complex(float32(0), float32(1))
	if got := Phase32(up); math.Abs(float64(got)-math.Pi/2) > 1e-6 {
		t.Errorf("Phase32(i) = %v, want Pi/2", got)
	}
}

func TestStereoComplexScale(t *testing.T) {
	s := StereoComplex{Left: complex(float32(1), float32(-2)), Right: complex(float32(0.5), float32(4))}
	got := s.Scale(2)

	if real(got.Left) != 2 || imag(got.Left) != -4 {
		t.Errorf("left = %v", got.Left)
	}

	if real(got.Right) != 1 || imag(got.Right) != 8 {
		t.Errorf("right = %v", got.Right)
	}
}
