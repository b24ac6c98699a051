package transfer

import (
	"errors"
	"slices"
	"testing"
)

func TestDescribeRegistered(t *testing.T) {
	for _, name := range MetadataNames() {
		m, err := Describe(name)
		if err != nil {
			t.Fatalf("Describe(%q): %v", name, err)
		}
		if m.Description == "" {
			t.Errorf("%s: empty description", name)
		}
		switch m.Class {
		case LowPass, HighPass, Unclassified:
		default:
			t.Errorf("%s: invalid class %q", name, m.Class)
		}
	}
}

func TestDescribeUnknown(t *testing.T) {
	for _, id := range []string{"XYZ_bogus", "", "rc_c", "RLC_s"} {
		if _, err := Describe(id); !errors.Is(err, ErrUnknownTopology) {
			t.Errorf("Describe(%q) err = %v, want ErrUnknownTopology", id, err)
		}
	}
}

func TestRegistryMatchesEvaluators(t *testing.T) {
	if got, want := MetadataNames(), Names(); !slices.Equal(got, want) {
		t.Fatalf("metadata ids %v\nevaluator ids %v", got, want)
	}

	for _, name := range Names() {
		topo, _ := Lookup(name)
		if _, err := topo.Metadata(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestKnownClasses(t *testing.T) {
	tests := map[string]FilterClass{
		"RC_C":    LowPass,
		"RCRC_CC": LowPass,
		"RLC_sC":  LowPass,
		"RC_R":    HighPass,
		"RCRC_RR": HighPass,
		"RL_L":    Unclassified,
	}
	for id, want := range tests {
		m, err := Describe(id)
		if err != nil {
			t.Fatal(err)
		}
		if m.Class != want {
			t.Errorf("%s: class %q, want %q", id, m.Class, want)
		}
	}
}

func TestByClassPartitionsRegistry(t *testing.T) {
	total := len(ByClass(LowPass)) + len(ByClass(HighPass)) + len(ByClass(Unclassified))
	if total != len(MetadataNames()) {
		t.Fatalf("classes cover %d ids, registry has %d", total, len(MetadataNames()))
	}
}

func TestMetadataNamesIsCopy(t *testing.T) {
	a := MetadataNames()
	a[0] = "mutated"
	if MetadataNames()[0] == "mutated" {
		t.Fatal("MetadataNames exposes internal state")
	}
}
