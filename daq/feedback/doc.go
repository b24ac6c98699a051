// Package feedback runs a buffered read-reduce-write feedback loop on top
// of a data-acquisition device.
//
// The loop repeatedly fills one buffer from a [Reader], reduces it to a
// single value with a [Reducer] and writes that value to a [Writer]. With
// the default 10 kHz sample rate and 5 Hz feedback rate each cycle handles
// 2000 samples, so the reducer has 200 ms of signal per decision.
//
// Device timing, buffering and callback dispatch belong to the driver
// behind Reader and Writer; this package adds no scheduling guarantees,
// retries or emulation of its own.
package feedback
