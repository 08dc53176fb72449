package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/filter/sos"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

func ExampleNewDFTFromArgs() {
	args := sos.Args{
		CenterHz:   1000,
		SampleRate: 48000,
		Q:          10,
	}

	d, err := spectrum.NewDFTFromArgs(args, window.TypeDolphChebyshev)
	if err != nil {
		panic(err)
	}

	fmt.Println(d.Length(), d.UpdateInterval())
	// Output:
	// 480 120
}
