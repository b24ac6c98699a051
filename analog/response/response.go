// Package response derives Bode-plot quantities from sampled complex
// frequency responses such as those returned by transfer sweeps.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrLengthMismatch is returned when frequency and response slices differ
	// in length.
	ErrLengthMismatch = errors.New("response: length mismatch")

	// ErrNoCrossing is returned by [Corner] when the magnitude never falls
	// to the requested level.
	ErrNoCrossing = errors.New("response: no -3 dB crossing")
)

type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// split unpacks h into pooled real and imaginary slices.
func split(h []complex128) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	n := len(h)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	} else {
		buf.data = buf.data[:2*n]
	}
	re, im = buf.data[:n], buf.data[n:]
	for i, c := range h {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im, buf
}

// Magnitude returns |H| for every point of h.
func Magnitude(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}
	out := make([]float64, len(h))
	re, im, buf := split(h)
	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// Power returns |H|^2 for every point of h.
func Power(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}
	out := make([]float64, len(h))
	re, im, buf := split(h)
	vecmath.Power(out, re, im)
	scratchPool.Put(buf)
	return out
}

// MagnitudeDB returns 20*log10(|H|). Zero magnitudes map to -Inf.
func MagnitudeDB(h []complex128) []float64 {
	out := Power(h)
	for i, p := range out {
		if p == 0 {
			out[i] = math.Inf(-1)
			continue
		}
		out[i] = 10 * math.Log10(p)
	}
	return out
}

// Phase returns arg(H) in radians, wrapped to [-pi, pi].
func Phase(h []complex128) []float64 {
	if len(h) == 0 {
		return nil
	}
	out := make([]float64, len(h))
	for i, c := range h {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		switch d := phase[i] - phase[i-1]; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// LogSpace returns n frequencies spaced evenly on a log axis from start to
// stop inclusive. start and stop must be positive.
func LogSpace(start, stop float64, n int) ([]float64, error) {
	if start <= 0 || stop <= 0 || math.IsNaN(start) || math.IsNaN(stop) || math.IsInf(start, 0) || math.IsInf(stop, 0) {
		return nil, fmt.Errorf("response: log range must be positive and finite: [%g, %g]", start, stop)
	}
	switch {
	case n <= 0:
		return nil, fmt.Errorf("response: point count must be > 0: %d", n)
	case n == 1:
		return []float64{start}, nil
	}

	lo, hi := math.Log10(start), math.Log10(stop)
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Pow(10, lo+step*float64(i))
	}
	out[0], out[n-1] = start, stop
	return out, nil
}

// Corner returns the first frequency at which the magnitude of h drops
// 3 dB below refDB. Between grid points the crossing is interpolated
// linearly in dB over log-frequency. freqs must be positive and
// increasing.
func Corner(freqs []float64, h []complex128, refDB float64) (float64, error) {
	if len(freqs) != len(h) {
		return 0, fmt.Errorf("%w: %d frequencies, %d points", ErrLengthMismatch, len(freqs), len(h))
	}
	if len(h) == 0 {
		return 0, ErrNoCrossing
	}

	target := refDB - 10*math.Log10(2)
	db := MagnitudeDB(h)
	if db[0] <= target {
		return freqs[0], nil
	}
	for i := 1; i < len(db); i++ {
		if db[i] > target {
			continue
		}
		if math.IsInf(db[i], -1) || freqs[i-1] <= 0 {
			return freqs[i], nil
		}
		t := (db[i-1] - target) / (db[i-1] - db[i])
		lf0, lf1 := math.Log10(freqs[i-1]), math.Log10(freqs[i])
		return math.Pow(10, lf0+t*(lf1-lf0)), nil
	}
	return 0, ErrNoCrossing
}
