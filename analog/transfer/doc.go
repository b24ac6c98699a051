// Package transfer evaluates closed-form transfer functions of passive
// analog circuits.
//
// Each [Topology] is a first- or second-order voltage divider built from
// resistors, inductors and capacitors, measured across one or two of its
// elements. Its frequency response is the rational function
//
//	H(f) = N(s) / D(s),  s = j*2*pi*f
//
// evaluated in complex128. Evaluators are pure and stateless and may be
// called from any number of goroutines.
//
// Component values are passed as a [Params] record. Every topology declares
// the elements it [Topology.Requires]; a missing element fails with
// [ErrMissingParam], extra elements are ignored. No range checks are applied:
// a denominator that evaluates to zero yields a non-finite result (see
// [IsFinite]) rather than an error.
//
// Topologies are addressable by value ([RCC], [SeriesC], ...) or by their
// identifier ("RC_C", "RLC_sC", ...) through [Lookup]. A read-only metadata
// table classifies every identifier, see [Describe].
package transfer
