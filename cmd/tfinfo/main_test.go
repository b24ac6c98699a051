package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

func TestParseValue(t *testing.T) {
	tests := map[string]float64{
		"100":   100,
		"4.7k":  4700,
		"100n":  100e-9,
		"1u":    1e-6,
		"2.2m":  2.2e-3,
		"1M":    1e6,
		"1e-6":  1e-6,
		" 33p ": 33e-12,
	}
	for in, want := range tests {
		got, err := parseValue(in)
		if err != nil {
			t.Fatalf("parseValue(%q): %v", in, err)
		}
		if math.Abs(got-want) > 1e-12*math.Abs(want) {
			t.Errorf("parseValue(%q) = %g, want %g", in, got, want)
		}
	}

	for _, bad := range []string{"", "k", "abc", "1x"} {
		if _, err := parseValue(bad); err == nil {
			t.Errorf("parseValue(%q) should fail", bad)
		}
	}
}

func TestParseList(t *testing.T) {
	got, err := parseList("100, 1k,,10k")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 100 || got[1] != 1000 || got[2] != 10000 {
		t.Fatalf("parseList = %v", got)
	}
	if _, err := parseList("1,oops"); err == nil {
		t.Fatal("expected error")
	}
}

func TestResolve(t *testing.T) {
	topos, err := resolve([]string{"RC_C", "RLC_sCL"})
	if err != nil {
		t.Fatal(err)
	}
	if len(topos) != 2 || topos[1].Name() != "RLC_sLC" {
		t.Fatalf("resolve = %v", topos)
	}

	topos, err = resolve([]string{"RC_C", "bogus"})
	if !errors.Is(err, transfer.ErrUnknownTopology) || len(topos) != 1 {
		t.Fatalf("resolve with unknown = %v, %v", topos, err)
	}

	if _, err := resolve([]string{"bogus"}); err == nil {
		t.Fatal("expected error when nothing matches")
	}
}

func TestPrintCatalogAndResponses(t *testing.T) {
	topos, _ := resolve([]string{"RC_C", "RLC_sC"})

	var buf bytes.Buffer
	if err := printCatalog(&buf, topos); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "low-pass") || !strings.Contains(out, "R+L+C") {
		t.Errorf("catalog output missing fields:\n%s", out)
	}

	buf.Reset()
	p := transfer.NewParams(transfer.WithR(1e3), transfer.WithC(1e-6))
	if err := printResponses(&buf, topos, []float64{159.154943}, p); err != nil {
		t.Fatal(err)
	}
	out = buf.String()
	if !strings.Contains(out, "-3.010") || !strings.Contains(out, "-45.00") {
		t.Errorf("RC_C corner not printed:\n%s", out)
	}
	if !strings.Contains(out, "(needs R+L+C)") {
		t.Errorf("missing-parameter row not printed:\n%s", out)
	}
}
