package transfer

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Response evaluates a transfer function at a single frequency in Hz.
// Every [Topology.Response] method value is a Response.
type Response func(freqHz float64, p Params) (complex128, error)

// values carries the component values of a validated Params record as
// complex numbers, ready for the rational function.
type values struct {
	r, r2, l, c, c2 complex128
}

// Topology is an immutable description of one circuit arrangement and the
// node pair its output is measured across.
type Topology struct {
	name     string
	order    int
	requires Element
	h        func(s complex128, v values) complex128
}

// Name returns the topology identifier, e.g. "RLC_sC".
func (t Topology) Name() string { return t.name }

// Order returns the order of the denominator polynomial in s.
func (t Topology) Order() int { return t.order }

// Requires returns the component values the topology needs.
func (t Topology) Requires() Element { return t.requires }

// String implements fmt.Stringer.
func (t Topology) String() string {
	return fmt.Sprintf("%s(order=%d, %s)", t.name, t.order, t.requires)
}

// Response evaluates H(f) at freqHz.
//
// It fails with [ErrMissingParam] if p lacks a required element. A zero
// denominator is not an error: the result is then NaN or Inf in one or both
// parts, following Go's complex division.
func (t Topology) Response(freqHz float64, p Params) (complex128, error) {
	v, err := t.bind(p)
	if err != nil {
		return 0, err
	}
	return t.h(laplace(freqHz), v), nil
}

// Sweep evaluates H(f) at every frequency of freqs. The result has the
// same length and order as freqs. Parameters are validated once, so a
// sweep either succeeds for every element or fails as a whole.
func (t Topology) Sweep(freqs []float64, p Params) ([]complex128, error) {
	v, err := t.bind(p)
	if err != nil {
		return nil, err
	}
	if len(freqs) == 0 {
		return nil, nil
	}

	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = t.h(laplace(f), v)
	}
	return out, nil
}

// Metadata returns the registry entry for the topology.
func (t Topology) Metadata() (Metadata, error) {
	return Describe(t.name)
}

func (t Topology) bind(p Params) (values, error) {
	if t.h == nil {
		return values{}, fmt.Errorf("%w: zero Topology", ErrUnknownTopology)
	}
	if m := p.missing(t.requires); m != 0 {
		return values{}, fmt.Errorf("%w: %s requires %s, missing %s", ErrMissingParam, t.name, t.requires, m)
	}

	return values{
		r:  complex(p.value(R), 0),
		r2: complex(p.value(R2), 0),
		l:  complex(p.value(L), 0),
		c:  complex(p.value(C), 0),
		c2: complex(p.value(C2), 0),
	}, nil
}

// laplace maps a frequency in Hz onto the imaginary axis, s = j*2*pi*f.
func laplace(freqHz float64) complex128 {
	return complex(0, 2*math.Pi*freqHz)
}

// IsFinite reports whether both parts of h are finite.
func IsFinite(h complex128) bool {
	return !cmplx.IsNaN(h) && !cmplx.IsInf(h)
}

// Call invokes r at freqHz with p and returns its result unchanged. It lets
// callers hold an evaluator as a value and apply it uniformly later.
func Call(r Response, freqHz float64, p Params) (complex128, error) {
	return r(freqHz, p)
}

// CallSweep applies r to every frequency of freqs. The first error aborts
// the sweep and no partial result is returned.
func CallSweep(r Response, freqs []float64, p Params) ([]complex128, error) {
	if len(freqs) == 0 {
		return nil, nil
	}

	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		h, err := r(f, p)
		if err != nil {
			return nil, fmt.Errorf("transfer: at %g Hz: %w", f, err)
		}
		out[i] = h
	}
	return out, nil
}
