package savgol_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/dsp/filter/savgol"
)

func ExampleCoefficients() {
	taps, err := savgol.Coefficients(5, 2)
	if err != nil {
		panic(err)
	}
	for _, v := range taps {
		fmt.Printf("%.0f ", v*35)
	}
	fmt.Println()
	// Output: -3 12 17 12 -3
}

func ExampleFilter_Apply() {
	f, err := savgol.New(5, 2)
	if err != nil {
		panic(err)
	}
	out, err := f.Apply([]float64{4, 4, 4, 4, 4, 4})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f\n", out)
	// Output: [4.0 4.0 4.0 4.0 4.0 4.0]
}
