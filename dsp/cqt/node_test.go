package cqt

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

func TestNodeBinLengths(t *testing.T) {
	node, err := NewNode(128, 48000, 60)
	if err != nil {
		t.Fatal(err)
	}

	// High-frequency bins collapse to a constant window equal to the
	// per-refresh floor; low bins keep their full constant-Q length.
	cases := []struct {
		bin       int
		length    int
		effective int
	}{
		{0, 165, 42240},
		{72, 200, 800},
		{127, 800, 800},
	}

	for _, c := range cases {
		b := node.Bin(c.bin)
		if b.Len() != c.length {
			t.Errorf("bin %d len = %d, want %d", c.bin, b.Len(), c.length)
		}

		if b.EffectiveLen() != c.effective {
			t.Errorf("bin %d effective len = %d, want %d", c.bin, b.EffectiveLen(), c.effective)
		}
	}

	if f := float64(node.Bin(0).Produce().Freq); math.Abs(f-20) > 0.01 {
		t.Errorf("first center = %v, want 20", f)
	}

	if f := float64(node.Bin(127).Produce().Freq); math.Abs(f-24000) > 1 {
		t.Errorf("last center = %v, want 24000", f)
	}
}

func TestNodePeaksAtTestTone(t *testing.T) {
	const (
		testFreq   = 5050.0
		sampleRate = 48000.0
	)

	node, err := NewNode(256, sampleRate, 60)
	if err != nil {
		t.Fatal(err)
	}

	raw := stereoTone(testFreq, sampleRate, int(sampleRate))
	for i := 0; i+800 <= len(raw); i += 800 {
		node.Consume(raw[i : i+800])
	}

	out := node.Produce()

	maxPercep, maxMag, closest := 0, 0, 0
	for i, o := range out {
		if o.LeftPerceptual > out[maxPercep].LeftPerceptual {
			maxPercep = i
		}

		if core.Abs32(o.Left) > core.Abs32(out[maxMag].Left) {
			maxMag = i
		}

		if math.Abs(float64(o.Freq)-testFreq) < math.Abs(float64(out[closest].Freq)-testFreq) {
			closest = i
		}
	}

	// The bucket with the most energy is only "near" the test tone; at
	// this resolution the nearest center sits within 2%.
	if r := (float64(out[closest].Freq) - testFreq) / testFreq; math.Abs(r) > 0.02 {
		t.Fatalf("closest bin %v is %.1f%% off the test tone", out[closest].Freq, 100*r)
	}

	if maxPercep != closest {
		t.Errorf("perceptual peak at bin %d (%v Hz), want %d (%v Hz)",
			maxPercep, out[maxPercep].Freq, closest, out[closest].Freq)
	}

	if maxMag != closest {
		t.Errorf("magnitude peak at bin %d (%v Hz), want %d (%v Hz)",
			maxMag, out[maxMag].Freq, closest, out[closest].Freq)
	}
}

func TestNodeOutputCount(t *testing.T) {
	node, err := NewNode(64, 48000, 60)
	if err != nil {
		t.Fatal(err)
	}

	if node.Resolution() != 64 {
		t.Errorf("resolution = %d, want 64", node.Resolution())
	}

	if got := len(node.Produce()); got != 64 {
		t.Errorf("output count = %d, want 64", got)
	}

	if node.Q() <= 0 {
		t.Errorf("q = %v, want positive", node.Q())
	}
}

func TestNewNodeRejectsBadArgs(t *testing.T) {
	cases := []struct {
		name       string
		resolution int
		sampleRate float64
		updateRate float64
	}{
		{"one bin", 1, 48000, 60},
		{"zero sample rate", 128, 0, 60},
		{"zero update rate", 128, 48000, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewNode(c.resolution, c.sampleRate, c.updateRate); err == nil {
				t.Error("expected error")
			}
		})
	}
}
