package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func BenchmarkDFTProcess(b *testing.B) {
	tone := testutil.Sine32(testCenterHz, testSampleRate, 4096)

	for _, typ := range []window.Type{window.TypeHamming, window.TypeDolphChebyshev} {
		b.Run(typ.String(), func(b *testing.B) {
			d, err := NewDFT(testCenterHz, testSampleRate, testLength, typ)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for _, x := range tone {
					_ = d.Process(x)
				}
			}
		})
	}
}
