package feedback

import (
	"math"
	"math/cmplx"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Reducer maps one buffer of samples to a feedback value. The buffer is
// reused between cycles and must not be retained.
type Reducer func(samples []float64) float64

// Mean returns the arithmetic mean of samples, or 0 for an empty buffer.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	return sum / float64(len(samples))
}

// RMS returns the root mean square of samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sq := make([]float64, len(samples))
	vecmath.MulBlock(sq, samples, samples)
	return math.Sqrt(Mean(sq))
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	peak := 0.0
	for _, v := range samples {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

// ToneAmplitude returns a reducer measuring the amplitude of a sine at
// freqHz, read from the nearest DFT bin of the buffer. The estimate is
// exact for tones that complete an integer number of cycles per buffer.
// Power-of-two buffers go through an FFT plan; other lengths, such as the
// default 2000 samples, evaluate the single bin directly. It returns 0 if
// the buffer cannot be transformed.
func ToneAmplitude(freqHz, sampleRate float64) Reducer {
	t := &toneMeter{freqHz: freqHz, sampleRate: sampleRate}
	return t.reduce
}

type toneMeter struct {
	freqHz     float64
	sampleRate float64

	mu   sync.Mutex
	plan *algofft.Plan[complex128]
	in   []complex128
	out  []complex128
}

func (t *toneMeter) reduce(samples []float64) float64 {
	n := len(samples)
	if n == 0 || t.sampleRate <= 0 {
		return 0
	}

	k := int(math.Round(t.freqHz * float64(n) / t.sampleRate))
	if k < 0 || k > n/2 {
		return 0
	}

	var x complex128
	if n&(n-1) == 0 {
		var ok bool
		if x, ok = t.fftBin(samples, k); !ok {
			return 0
		}
	} else {
		x = dftBin(samples, k)
	}

	mag := cmplx.Abs(x) / float64(n)
	if k != 0 && 2*k != n {
		mag *= 2
	}
	return mag
}

// fftBin returns bin k of the FFT of samples; len(samples) is a power of two.
func (t *toneMeter) fftBin(samples []float64, k int) (complex128, bool) {
	n := len(samples)

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.in) != n {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return 0, false
		}
		t.plan = plan
		t.in = make([]complex128, n)
		t.out = make([]complex128, n)
	}

	for i, v := range samples {
		t.in[i] = complex(v, 0)
	}
	if err := t.plan.Forward(t.out, t.in); err != nil {
		return 0, false
	}
	return t.out[k], true
}

// dftBin evaluates X[k] = sum x[i] * exp(-j*2*pi*k*i/n) directly.
func dftBin(samples []float64, k int) complex128 {
	n := len(samples)
	var re, im float64
	for i, v := range samples {
		// Reduce k*i mod n first to keep the angle small.
		sin, cos := math.Sincos(2 * math.Pi * float64((k*i)%n) / float64(n))
		re += v * cos
		im -= v * sin
	}
	return complex(re, im)
}
