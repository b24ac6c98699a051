package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). Matching infinities
// compare equal.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// ComplexNearlyEqual reports whether a and b agree within eps, scaled by
// max(1, |b|).
func ComplexNearlyEqual(a, b complex128, eps float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, cmplx.Abs(b))
	return cmplx.Abs(a-b) <= eps*scale
}

// RequireComplexNearlyEqual fails t unless [ComplexNearlyEqual] holds.
func RequireComplexNearlyEqual(t *testing.T, got, want complex128, eps float64) {
	t.Helper()
	if !ComplexNearlyEqual(got, want, eps) {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, cmplx.Abs(got-want), eps)
	}
}

// RequireComplexSliceNearlyEqual is the slice form of
// [RequireComplexNearlyEqual]; lengths must match.
func RequireComplexSliceNearlyEqual(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !ComplexNearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]), eps)
		}
	}
}
