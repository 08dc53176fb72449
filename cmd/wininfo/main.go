// Command wininfo prints spectral properties of analysis window functions.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hamming
//	wininfo -size 4096 -attenuation 60 dolph-chebyshev
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/dsp/window"
)

type windowEntry struct {
	name           string
	typ            window.Type
	hasAttenuation bool
	defAttenuation float64
}

var registry = []windowEntry{
	{"boxcar", window.TypeBoxCar, false, 0},
	{"bartlett", window.TypeBartlett, false, 0},
	{"welch", window.TypeWelch, false, 0},
	{"hamming", window.TypeHamming, false, 0},
	{"dolph-chebyshev", window.TypeDolphChebyshev, true, 40},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	attenuation := flag.Float64("attenuation", math.NaN(), "side-lobe attenuation in dB (dolph-chebyshev)")
	list := flag.Bool("list", false, "list available window names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints spectral properties of analysis window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hamming welch\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 4096 -attenuation 60 dolph-chebyshev\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, *attenuation)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	printAnalysis(entries, *size)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedEntry struct {
	windowEntry
	attenuation float64
}

func resolveEntries(names []string, attenuationFlag float64) []resolvedEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		a := e.defAttenuation
		if e.hasAttenuation && !math.IsNaN(attenuationFlag) {
			a = attenuationFlag
		}
		result = append(result, resolvedEntry{e, a})
	}
	return result
}

func printAnalysis(entries []resolvedEntry, size int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Window\tSize\tCOLA [smp]\tCoherent Gain\tENBW [bins]\tBW 3dB [bins]\tSidelobe [dB]\t1st Min [bins]\tScallop [dB]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "------\t----\t----------\t-------------\t----------\t-------------\t-------------\t--------------\t-----------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, e := range entries {
		var opts []window.Option
		if e.hasAttenuation {
			opts = append(opts, window.WithAttenuationDB(e.attenuation))
		}

		coeffs, err := window.Generate(e.typ, size, opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			continue
		}
		a := window.Analyze(coeffs)

		label := e.name
		if e.hasAttenuation {
			label = fmt.Sprintf("%s (%.0f dB)", e.name, e.attenuation)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%.6f\t%.4f\t%.4f\t%.2f\t%.4f\t%.4f\n",
			label,
			size,
			window.Repeat(e.typ, size),
			a.CoherentGain,
			a.ENBW,
			a.Bandwidth3dB,
			a.HighestSidelobedB,
			a.FirstMinimumBins,
			a.ScallopLossdB,
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
