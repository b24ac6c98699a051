package transfer_test

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

func ExampleTopology_Response() {
	r, c := 1e3, 1e-6
	fc := 1 / (2 * math.Pi * r * c)

	h, err := transfer.RCC.Response(fc, transfer.NewParams(transfer.WithR(r), transfer.WithC(c)))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("|H| = %.2f dB, phase = %.1f deg\n",
		20*math.Log10(cmplx.Abs(h)), cmplx.Phase(h)*180/math.Pi)
	// Output:
	// |H| = -3.01 dB, phase = -45.0 deg
}

func ExampleCall() {
	evaluators := []transfer.Response{transfer.RLR.Response, transfer.RLL.Response}
	p := transfer.NewParams(transfer.WithR(100), transfer.WithL(1e-3))

	for _, r := range evaluators {
		h, _ := transfer.Call(r, 0, p)
		fmt.Printf("%.1f\n", real(h))
	}
	// Output:
	// 1.0
	// 0.0
}

func ExampleDescribe() {
	m, err := transfer.Describe("RLC_sC")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s: %s\n", m.Class, m.Description)

	_, err = transfer.Describe("XYZ_bogus")
	fmt.Println(err)
	// Output:
	// low-pass: Series RLC circuit measured over C
	// transfer: unknown topology: "XYZ_bogus"
}

func ExampleTopology_Sweep() {
	h, err := transfer.SeriesC.Sweep([]float64{0, 1e9}, transfer.RLC(10, 1e-3, 1e-6))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f %.3f\n", cmplx.Abs(h[0]), cmplx.Abs(h[1]))
	// Output:
	// 1.000 0.000
}
