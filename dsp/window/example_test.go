package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/window"
)

func ExampleGenerate() {
	w, _ := window.Generate(window.TypeBoxCar, 4)
	fmt.Printf("%.0f\n", window.Sum(w))
	// Output:
	// 4
}

func ExampleRepeat() {
	fmt.Println(window.Repeat(window.TypeHamming, 1024))
	fmt.Println(window.Repeat(window.TypeDolphChebyshev, 1024))
	// Output:
	// 512
	// 256
}
