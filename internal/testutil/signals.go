package testutil

import (
	"math"
	"math/cmplx"
)

// BinTones returns n samples of sum_k Im(gains[k] * exp(j*2*pi*bins[k]*i/n)),
// a sum of sines that complete an integer number of cycles in the buffer.
// A nil gains slice uses unit gain for every tone.
//
// Passing the transfer function values at the tone frequencies as gains
// yields the steady-state output of that circuit for the unit-gain input.
func BinTones(n int, bins []int, gains []complex128) []float64 {
	out := make([]float64, n)
	for t, k := range bins {
		g := complex(1, 0)
		if gains != nil {
			g = gains[t]
		}
		w := 2 * math.Pi * float64(k) / float64(n)
		for i := range out {
			out[i] += imag(g * cmplx.Exp(complex(0, w*float64(i))))
		}
	}
	return out
}
