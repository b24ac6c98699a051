package frontend

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

const defaultThreshold = 1e-6

var (
	ErrLengthMismatch    = errors.New("frontend: stimulus and response lengths differ")
	ErrNotPowerOfTwo     = errors.New("frontend: buffer length must be a power of two")
	ErrInvalidSampleRate = errors.New("frontend: sample rate must be > 0")
	ErrNoExcitation      = errors.New("frontend: stimulus has no spectral energy")
)

// Measurement is an estimated frequency response.
type Measurement struct {
	SampleRate  float64
	Bins        []int
	Frequencies []float64
	Response    []complex128
}

// Len returns the number of estimated points.
func (m Measurement) Len() int { return len(m.Response) }

type config struct {
	threshold float64
	includeDC bool
}

// Option configures [Estimate].
type Option func(*config)

// WithThreshold keeps only bins whose stimulus magnitude exceeds rel times
// the strongest stimulus bin. Values outside (0, 1) are ignored.
func WithThreshold(rel float64) Option {
	return func(c *config) {
		if rel > 0 && rel < 1 {
			c.threshold = rel
		}
	}
}

// WithDC includes bin 0 in the estimate.
func WithDC() Option {
	return func(c *config) { c.includeDC = true }
}

// Estimate computes H[k] = Y[k]/X[k] for the excited bins 0..n/2 of a
// stimulus/response capture. Both buffers must have the same power-of-two
// length.
func Estimate(stimulus, response []float64, sampleRate float64, opts ...Option) (Measurement, error) {
	cfg := config{threshold: defaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(stimulus)
	switch {
	case sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0):
		return Measurement{}, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	case n != len(response):
		return Measurement{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(response))
	case n < 2 || n&(n-1) != 0:
		return Measurement{}, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Measurement{}, fmt.Errorf("frontend: failed to create FFT plan: %w", err)
	}

	xFreq, err := forward(plan, stimulus)
	if err != nil {
		return Measurement{}, err
	}
	yFreq, err := forward(plan, response)
	if err != nil {
		return Measurement{}, err
	}

	first := 1
	if cfg.includeDC {
		first = 0
	}
	half := n / 2

	peak := 0.0
	for k := first; k <= half; k++ {
		peak = math.Max(peak, cmplx.Abs(xFreq[k]))
	}
	if peak == 0 {
		return Measurement{}, ErrNoExcitation
	}

	m := Measurement{SampleRate: sampleRate}
	limit := cfg.threshold * peak
	binHz := sampleRate / float64(n)
	for k := first; k <= half; k++ {
		if cmplx.Abs(xFreq[k]) <= limit {
			continue
		}
		m.Bins = append(m.Bins, k)
		m.Frequencies = append(m.Frequencies, float64(k)*binHz)
		m.Response = append(m.Response, yFreq[k]/xFreq[k])
	}
	return m, nil
}

func forward(plan *algofft.Plan[complex128], samples []float64) ([]complex128, error) {
	in := make([]complex128, len(samples))
	for i, v := range samples {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, len(samples))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("frontend: forward FFT failed: %w", err)
	}
	return out, nil
}

// Report summarises the deviation of a measurement from a model.
type Report struct {
	Points int
	// MaxMagnitudeErrorDB is the largest |20*log10(|Hm|/|Hmodel|)|.
	MaxMagnitudeErrorDB float64
	// MaxPhaseError is the largest wrapped phase difference in radians.
	MaxPhaseError  float64
	WorstFrequency float64
}

// Within reports whether both deviations are inside the given limits.
func (r Report) Within(magDB, phaseRad float64) bool {
	return r.MaxMagnitudeErrorDB <= magDB && r.MaxPhaseError <= phaseRad
}

// Compare evaluates model at every measured frequency and reports the
// worst deviation. Model errors (e.g. missing parameters) are returned
// unchanged.
func Compare(m Measurement, model transfer.Response, p transfer.Params) (Report, error) {
	if m.Len() == 0 {
		return Report{}, ErrNoExcitation
	}
	if len(m.Frequencies) != len(m.Response) {
		return Report{}, fmt.Errorf("%w: %d frequencies, %d points", ErrLengthMismatch, len(m.Frequencies), len(m.Response))
	}

	want, err := transfer.CallSweep(model, m.Frequencies, p)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Points: m.Len()}
	worst := -1.0
	for i, got := range m.Response {
		magErr := math.Abs(20 * math.Log10(cmplx.Abs(got)/cmplx.Abs(want[i])))
		phErr := math.Abs(cmplx.Phase(got / want[i]))
		// 0/0 or Inf/Inf has no defined ratio; count it as unbounded error.
		if math.IsNaN(magErr) {
			magErr = math.Inf(1)
		}
		if math.IsNaN(phErr) {
			phErr = math.Inf(1)
		}

		rep.MaxMagnitudeErrorDB = math.Max(rep.MaxMagnitudeErrorDB, magErr)
		rep.MaxPhaseError = math.Max(rep.MaxPhaseError, phErr)
		if magErr > worst {
			worst = magErr
			rep.WorstFrequency = m.Frequencies[i]
		}
	}
	return rep, nil
}
