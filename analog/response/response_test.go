package response

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-circuit/analog/transfer"
	"github.com/cwbudde/algo-circuit/internal/testutil"
)

func TestMagnitudeAndPower(t *testing.T) {
	h := []complex128{3 + 4i, -1, 1i, 0}

	testutil.RequireSliceNearlyEqual(t, Magnitude(h), []float64{5, 1, 1, 0}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, Power(h), []float64{25, 1, 1, 0}, 1e-12)

	if Magnitude(nil) != nil || Power(nil) != nil || Phase(nil) != nil {
		t.Fatal("empty input should return nil")
	}
}

func TestMagnitudeDB(t *testing.T) {
	db := MagnitudeDB([]complex128{1, 10, 0.1i, 0})
	testutil.RequireSliceNearlyEqual(t, db[:3], []float64{0, 20, -20}, 1e-12)
	if !math.IsInf(db[3], -1) {
		t.Errorf("0 -> %v dB, want -Inf", db[3])
	}
}

func TestPhaseAndUnwrap(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, Phase([]complex128{1, 1i, -1i}), []float64{0, math.Pi / 2, -math.Pi / 2}, 1e-12)

	out := UnwrapPhase([]float64{2.8, -2.7, -2.6})
	if math.Abs((out[1]-out[0])-(2*math.Pi-5.5)) > 1e-12 {
		t.Fatalf("unexpected unwrap delta: %f", out[1]-out[0])
	}
	if UnwrapPhase(nil) != nil {
		t.Fatal("UnwrapPhase(nil) should be nil")
	}
}

func TestUnwrapSecondOrderPhase(t *testing.T) {
	// Two cascaded RC stages rotate towards -180 deg without wrapping.
	freqs, err := LogSpace(1, 1e7, 400)
	if err != nil {
		t.Fatal(err)
	}
	h, err := transfer.RCRCCC.Sweep(freqs, transfer.NewParams(transfer.WithR(1e3), transfer.WithC(1e-6)))
	if err != nil {
		t.Fatal(err)
	}
	ph := UnwrapPhase(Phase(h))
	for i := 1; i < len(ph); i++ {
		if ph[i] > ph[i-1]+1e-12 {
			t.Fatalf("phase not monotonic at %g Hz", freqs[i])
		}
	}
	if last := ph[len(ph)-1]; math.Abs(last+math.Pi) > 1e-3 {
		t.Errorf("phase at 10 MHz = %v, want -pi", last)
	}
}

func TestLogSpace(t *testing.T) {
	f, err := LogSpace(10, 1e4, 4)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, f, []float64{10, 100, 1000, 1e4}, 1e-9)

	one, err := LogSpace(5, 50, 1)
	if err != nil || len(one) != 1 || one[0] != 5 {
		t.Fatalf("LogSpace n=1 = %v, %v", one, err)
	}

	for _, bad := range [][2]float64{{0, 10}, {-1, 10}, {1, math.Inf(1)}, {math.NaN(), 1}} {
		if _, err := LogSpace(bad[0], bad[1], 10); err == nil {
			t.Errorf("LogSpace(%v) should fail", bad)
		}
	}
	if _, err := LogSpace(1, 10, 0); err == nil {
		t.Error("LogSpace n=0 should fail")
	}
}

func TestCornerRC(t *testing.T) {
	r, c := 1e3, 1e-6
	want := 1 / (2 * math.Pi * r * c)

	freqs, _ := LogSpace(1, 1e5, 2001)
	h, err := transfer.RCC.Sweep(freqs, transfer.NewParams(transfer.WithR(r), transfer.WithC(c)))
	if err != nil {
		t.Fatal(err)
	}

	got, err := Corner(freqs, h, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-want)/want > 1e-3 {
		t.Errorf("corner = %g Hz, want %g Hz", got, want)
	}
}

func TestCornerErrors(t *testing.T) {
	if _, err := Corner([]float64{1}, nil, 0); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := Corner(nil, nil, 0); !errors.Is(err, ErrNoCrossing) {
		t.Errorf("err = %v, want ErrNoCrossing", err)
	}
	flat := []complex128{1, 1, 1}
	if _, err := Corner([]float64{1, 2, 3}, flat, 0); !errors.Is(err, ErrNoCrossing) {
		t.Errorf("err = %v, want ErrNoCrossing", err)
	}
}

func TestCornerAtFirstPoint(t *testing.T) {
	got, err := Corner([]float64{5, 50}, []complex128{0.1, 0.01}, 0)
	if err != nil || got != 5 {
		t.Fatalf("Corner = %v, %v; want 5", got, err)
	}
}

func TestMagnitudeMatchesCmplxAbs(t *testing.T) {
	freqs, _ := LogSpace(10, 1e6, 64)
	h, _ := transfer.SeriesC.Sweep(freqs, transfer.RLC(50, 1e-3, 1e-7))
	mag := Magnitude(h)
	for i := range h {
		if math.Abs(mag[i]-cmplx.Abs(h[i])) > 1e-12*math.Max(1, mag[i]) {
			t.Fatalf("index %d: %v vs %v", i, mag[i], cmplx.Abs(h[i]))
		}
	}
}
