package transfer

import (
	"fmt"
	"sort"
)

// First-order RC divider, series R feeding a shunt C.
var (
	// RCC is the RC divider measured across C (low-pass).
	RCC = Topology{name: "RC_C", order: 1, requires: R | C, h: func(s complex128, v values) complex128 {
		return 1 / (1 + s*v.r*v.c)
	}}

	// RCR is the RC divider measured across R (high-pass).
	RCR = Topology{name: "RC_R", order: 1, requires: R | C, h: func(s complex128, v values) complex128 {
		rc := s * v.r * v.c
		return rc / (1 + rc)
	}}
)

// Two identical cascaded RC stages, and the asymmetric R-then-C pair.
var (
	// RCRCCC is the two-stage RC measured across the C elements.
	RCRCCC = Topology{name: "RCRC_CC", order: 2, requires: R | C, h: func(s complex128, v values) complex128 {
		d := 1 + s*v.r*v.c
		return 1 / (d * d)
	}}

	// RCRCRR is the two-stage RC measured across the R elements.
	RCRCRR = Topology{name: "RCRC_RR", order: 2, requires: R | C, h: func(s complex128, v values) complex128 {
		rc := s * v.r * v.c
		d := 1 + rc
		return rc * rc / (d * d)
	}}

	// RCRCRC is a low-pass R,C stage followed by a high-pass C2,R2 stage,
	// measured across R2 (band-pass).
	RCRCRC = Topology{name: "RCRC_RC", order: 2, requires: R | R2 | C | C2, h: func(s complex128, v values) complex128 {
		hp := s * v.r2 * v.c2
		return hp / ((1 + s*v.r*v.c) * (1 + hp))
	}}
)

// Series RLC: D(s) = s^2*L*C + s*R*C + 1.
var (
	// SeriesR is the series RLC measured across R.
	SeriesR = Topology{name: "RLC_sR", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return s * v.r * v.c / seriesDen(s, v)
	}}

	// SeriesL is the series RLC measured across L.
	SeriesL = Topology{name: "RLC_sL", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return s * s * v.l * v.c / seriesDen(s, v)
	}}

	// SeriesC is the series RLC measured across C.
	SeriesC = Topology{name: "RLC_sC", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return 1 / seriesDen(s, v)
	}}

	// SeriesRL is the series RLC measured across R and L.
	SeriesRL = Topology{name: "RLC_sRL", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return (v.r + s*v.l) * s * v.c / seriesDen(s, v)
	}}

	// SeriesRC is the series RLC measured across R and C.
	SeriesRC = Topology{name: "RLC_sRC", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return (s*v.r*v.c + 1) / seriesDen(s, v)
	}}

	// SeriesLC is the series RLC measured across L and C (notch).
	SeriesLC = Topology{name: "RLC_sLC", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return (s*s*v.l*v.c + 1) / seriesDen(s, v)
	}}
)

func seriesDen(s complex128, v values) complex128 {
	return s*s*v.l*v.c + s*v.r*v.c + 1
}

// Parallel RLC: D(s) = R + R*L*C*s^2 + L*s.
var (
	// ParallelR is the parallel RLC measured across R.
	ParallelR = Topology{name: "RLC_pR", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return (v.r + v.r*v.l*v.c*s*s) / parallelDen(s, v)
	}}

	// ParallelL is the parallel RLC measured across L.
	ParallelL = Topology{name: "RLC_pL", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return (v.c*v.l*v.r*s*s + v.l*s) / parallelDen(s, v)
	}}

	// ParallelC is the parallel RLC measured across C.
	ParallelC = Topology{name: "RLC_pC", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return (v.l*s + v.r) / parallelDen(s, v)
	}}

	// ParallelRL is the parallel RLC measured across R and L.
	ParallelRL = Topology{name: "RLC_pRL", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return v.r / parallelDen(s, v)
	}}

	// ParallelRC is the parallel RLC measured across R and C.
	ParallelRC = Topology{name: "RLC_pRC", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return v.c * v.l * v.r * s * s / parallelDen(s, v)
	}}

	// ParallelLC is the parallel RLC measured across L and C.
	ParallelLC = Topology{name: "RLC_pLC", order: 2, requires: R | L | C, h: func(s complex128, v values) complex128 {
		return v.l * s / parallelDen(s, v)
	}}

	// ParallelRSeriesR2 is the parallel RLC with an extra series resistor R2
	// in the L branch, measured across R.
	ParallelRSeriesR2 = Topology{name: "RLC_pR_RL", order: 2, requires: R | R2 | L | C, h: func(s complex128, v values) complex128 {
		crr2 := v.c * v.r * v.r2 * s
		lc := v.c * v.l * v.r * s * s
		return (v.r + lc + crr2) / (v.r + v.r2 + lc + v.l*s + crr2)
	}}
)

func parallelDen(s complex128, v values) complex128 {
	return v.r + v.c*v.l*v.r*s*s + v.l*s
}

// RL divider and the resistor-less CL divider.
var (
	// RLR is the RL divider measured across R (low-pass).
	RLR = Topology{name: "RL_R", order: 1, requires: R | L, h: func(s complex128, v values) complex128 {
		return v.r / (v.r + v.l*s)
	}}

	// RLL is the RL divider measured across L (high-pass).
	RLL = Topology{name: "RL_L", order: 1, requires: R | L, h: func(s complex128, v values) complex128 {
		return v.l * s / (v.r + v.l*s)
	}}

	// CLC is the undamped CL divider measured across C.
	CLC = Topology{name: "CL_C", order: 2, requires: L | C, h: func(s complex128, v values) complex128 {
		return 1 / (v.c*v.l*s*s + 1)
	}}

	// CLL is the undamped CL divider measured across L.
	CLL = Topology{name: "CL_L", order: 2, requires: L | C, h: func(s complex128, v values) complex128 {
		lc := v.c * v.l * s * s
		return lc / (lc + 1)
	}}
)

var catalog = func() map[string]Topology {
	all := []Topology{
		RCC, RCR,
		RCRCCC, RCRCRR, RCRCRC,
		SeriesR, SeriesL, SeriesC, SeriesRL, SeriesRC, SeriesLC,
		ParallelR, ParallelL, ParallelC, ParallelRL, ParallelRC, ParallelLC,
		RLR, RLL,
		CLC, CLL,
		ParallelRSeriesR2,
	}
	m := make(map[string]Topology, len(all))
	for _, t := range all {
		if _, dup := m[t.name]; dup {
			panic("transfer: duplicate topology " + t.name)
		}
		m[t.name] = t
	}
	return m
}()

// aliases maps alternative spellings onto canonical identifiers.
var aliases = map[string]string{
	"RLC_sCL": "RLC_sLC",
	"RLC_pCL": "RLC_pLC",
}

func canonical(id string) string {
	if c, ok := aliases[id]; ok {
		return c
	}
	return id
}

// Lookup returns the topology registered under id. The legacy spellings
// "RLC_sCL" and "RLC_pCL" resolve to "RLC_sLC" and "RLC_pLC".
func Lookup(id string) (Topology, error) {
	t, ok := catalog[canonical(id)]
	if !ok {
		return Topology{}, fmt.Errorf("%w: %q", ErrUnknownTopology, id)
	}
	return t, nil
}

// Names returns all evaluator identifiers in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Evaluate looks up id and evaluates it at freqHz.
func Evaluate(id string, freqHz float64, p Params) (complex128, error) {
	t, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	return t.Response(freqHz, p)
}

// EvaluateSweep looks up id and evaluates it at every frequency of freqs.
func EvaluateSweep(id string, freqs []float64, p Params) ([]complex128, error) {
	t, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return t.Sweep(freqs, p)
}
