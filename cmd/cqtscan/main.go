// Command cqtscan runs a constant-Q analysis over a WAV file and prints
// the resulting spectrum.
//
// Usage:
//
//	cqtscan [flags] input.wav
//
// Examples:
//
//	cqtscan track.wav
//	cqtscan -bins 256 -top 10 track.wav
//	cqtscan -kweight track.wav
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/cqt"
	"github.com/cwbudde/algo-spectral/dsp/filter/kweight"
	"github.com/cwbudde/algo-spectral/measure/rms"
)

func main() {
	bins := flag.Int("bins", 128, "number of frequency bins")
	update := flag.Float64("update", 60, "analysis refresh rate in Hz")
	weight := flag.Bool("kweight", false, "apply BS.1770 K-weighting before analysis (48 kHz input only)")
	top := flag.Int("top", 0, "print only the N loudest bins (0 = all)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cqtscan [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Runs a constant-Q analysis over a WAV file and prints the spectrum.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *bins, *update, *weight, *top); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, bins int, update float64, weight bool, top int) error {
	frames, sampleRate, err := readWAV(path)
	if err != nil {
		return err
	}

	if weight {
		w, err := kweight.New(float64(sampleRate))
		if err != nil {
			return err
		}

		w.ProcessBlock(frames, frames)
	}

	var level rms.Accumulator
	level.Consume(frames)

	node, err := cqt.NewNode(bins, float64(sampleRate), update)
	if err != nil {
		return err
	}

	chunk := int(math.Ceil(float64(sampleRate) / update))
	for i := 0; i < len(frames); i += chunk {
		node.Consume(frames[i:min(i+chunk, len(frames))])
	}

	out := append([]cqt.Output(nil), node.Produce()...)

	if top > 0 {
		sort.Slice(out, func(i, j int) bool {
			return out[i].LeftPerceptual+out[i].RightPerceptual >
				out[j].LeftPerceptual+out[j].RightPerceptual
		})
		out = out[:min(top, len(out))]
	}

	l := level.Level()
	fmt.Printf("%s: %d frames at %d Hz, RMS L %.4f R %.4f\n\n",
		path, len(frames), sampleRate, l.Left, l.Right)

	return printSpectrum(out)
}

func printSpectrum(out []cqt.Output) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Freq [Hz]\tLeft [dB]\tRight [dB]\tLeft [phon]\tRight [phon]\n"); err != nil {
		return err
	}

	for _, o := range out {
		if _, err := fmt.Fprintf(tw, "%.1f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			o.Freq,
			core.LinearToDB(float64(core.Abs32(o.Left)*o.ISO226Factor)),
			core.LinearToDB(float64(core.Abs32(o.Right)*o.ISO226Factor)),
			o.LeftPerceptual,
			o.RightPerceptual,
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func readWAV(path string) ([]core.StereoSample, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	return toStereo(buf), buf.Format.SampleRate, nil
}

// toStereo reshapes decoded frames, already normalized to [-1, 1], into
// stereo pairs. Mono input is duplicated onto both channels; extra
// channels are dropped.
func toStereo(buf *audio.Float32Buffer) []core.StereoSample {
	ch := buf.Format.NumChannels

	out := make([]core.StereoSample, len(buf.Data)/ch)
	for i := range out {
		left := buf.Data[i*ch]

		right := left
		if ch > 1 {
			right = buf.Data[i*ch+1]
		}

		out[i] = core.StereoSample{Left: left, Right: right}
	}

	return out
}
