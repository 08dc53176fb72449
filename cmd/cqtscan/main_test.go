package main

import (
	"testing"

	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

func floatBuffer(channels int, data []float32) *audio.Float32Buffer {
	return &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  48000,
			NumChannels: channels,
		},
		Data: data,
	}
}

func TestToStereoKeepsStereoPairs(t *testing.T) {
	buf := floatBuffer(2, []float32{0.5, -0.5, 0.25, -1})

	got := toStereo(buf)
	want := []core.StereoSample{
		{Left: 0.5, Right: -0.5},
		{Left: 0.25, Right: -1},
	}

	if len(got) != len(want) {
		t.Fatalf("frames = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToStereoDuplicatesMono(t *testing.T) {
	buf := floatBuffer(1, []float32{0.5, -0.25})

	got := toStereo(buf)
	if len(got) != 2 {
		t.Fatalf("frames = %d, want 2", len(got))
	}

	for i, f := range got {
		if f.Left != f.Right {
			t.Errorf("frame %d: left %v != right %v", i, f.Left, f.Right)
		}
	}

	if got[0].Left != 0.5 || got[1].Left != -0.25 {
		t.Errorf("frames = %v", got)
	}
}

func TestToStereoDropsExtraChannels(t *testing.T) {
	buf := floatBuffer(4, []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8})

	got := toStereo(buf)
	want := []core.StereoSample{
		{Left: 0.1, Right: 0.2},
		{Left: 0.5, Right: 0.6},
	}

	if len(got) != len(want) {
		t.Fatalf("frames = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}
