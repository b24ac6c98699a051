package transfer

import "errors"

var (
	// ErrMissingParam is returned when a topology is evaluated without one
	// of the component values it requires.
	ErrMissingParam = errors.New("transfer: missing component parameter")

	// ErrUnknownTopology is returned for identifiers that name neither an
	// evaluator nor a metadata entry.
	ErrUnknownTopology = errors.New("transfer: unknown topology")
)
