// Package frontend validates the frequency response of an analog front-end
// against a closed-form circuit model.
//
// [Estimate] recovers H(f) = Y(f)/X(f) from a captured stimulus/response
// pair by FFT, keeping only bins where the stimulus carries energy. [Compare]
// then evaluates a [transfer.Response] at the same frequencies and reports
// the worst magnitude and phase deviation.
//
// Bin-exact multi-tone stimuli give exact estimates; broadband stimuli work
// too but are subject to the usual leakage of a rectangular window.
package frontend
