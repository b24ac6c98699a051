package transfer

import (
	"math/bits"
	"strings"
)

// Element is a bit set of circuit components.
type Element uint8

const (
	// R is the primary resistance in ohms.
	R Element = 1 << iota
	// R2 is the second resistance in ohms.
	R2
	// L is the inductance in henries.
	L
	// C is the primary capacitance in farads.
	C
	// C2 is the second capacitance in farads.
	C2
)

const numElements = 5

var elementNames = [numElements]string{"R", "R2", "L", "C", "C2"}

// String returns the element names joined by "+", e.g. "R+L+C".
func (e Element) String() string {
	if e == 0 {
		return "none"
	}

	names := make([]string, 0, bits.OnesCount8(uint8(e)))
	for i := range numElements {
		if e&(1<<i) != 0 {
			names = append(names, elementNames[i])
		}
	}

	return strings.Join(names, "+")
}

func (e Element) index() int {
	return bits.TrailingZeros8(uint8(e))
}

// Params holds component values together with their presence. The zero
// value has no component set. A value of zero is a legal (degenerate)
// component value and distinct from an absent one.
type Params struct {
	values [numElements]float64
	set    Element
}

// ParamOption sets one component value on a Params record.
type ParamOption func(*Params)

// WithR sets the resistance R in ohms.
func WithR(ohms float64) ParamOption { return with(R, ohms) }

// WithR2 sets the second resistance R2 in ohms.
func WithR2(ohms float64) ParamOption { return with(R2, ohms) }

// WithL sets the inductance L in henries.
func WithL(henries float64) ParamOption { return with(L, henries) }

// WithC sets the capacitance C in farads.
func WithC(farads float64) ParamOption { return with(C, farads) }

// WithC2 sets the second capacitance C2 in farads.
func WithC2(farads float64) ParamOption { return with(C2, farads) }

func with(e Element, v float64) ParamOption {
	return func(p *Params) {
		*p = p.With(e, v)
	}
}

// NewParams builds a Params record from the given options.
func NewParams(opts ...ParamOption) Params {
	var p Params
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// RLC is shorthand for NewParams(WithR(r), WithL(l), WithC(c)).
func RLC(r, l, c float64) Params {
	return NewParams(WithR(r), WithL(l), WithC(c))
}

// With returns a copy of p with the single element e set to v.
// e must name exactly one element; other values are ignored.
func (p Params) With(e Element, v float64) Params {
	if bits.OnesCount8(uint8(e)) != 1 || e >= 1<<numElements {
		return p
	}
	p.values[e.index()] = v
	p.set |= e
	return p
}

// Get returns the value of the single element e and whether it is set.
func (p Params) Get(e Element) (float64, bool) {
	if bits.OnesCount8(uint8(e)) != 1 || p.set&e == 0 {
		return 0, false
	}
	return p.values[e.index()], true
}

// Has reports whether every element in e is set.
func (p Params) Has(e Element) bool {
	return p.set&e == e
}

// Set returns the elements present in p.
func (p Params) Set() Element {
	return p.set
}

func (p Params) missing(required Element) Element {
	return required &^ p.set
}

// value returns the element value or zero when absent. Callers validate
// presence first.
func (p Params) value(e Element) float64 {
	return p.values[e.index()]
}
