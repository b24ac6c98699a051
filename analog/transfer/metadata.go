package transfer

import (
	"fmt"
	"sort"
)

// FilterClass classifies a topology by the frequency extreme it attenuates.
type FilterClass string

// Filter classes. Topologies that neither pass DC nor block it cleanly are
// left Unclassified.
const (
	LowPass      FilterClass = "low-pass"
	HighPass     FilterClass = "high-pass"
	Unclassified FilterClass = ""
)

// Metadata is the registry entry of one topology.
type Metadata struct {
	Class       FilterClass
	Description string
}

var metadata = map[string]Metadata{
	"RC_C":      {LowPass, "1st order RC circuit measured over C"},
	"RC_R":      {HighPass, "1st order RC circuit measured over R"},
	"RCRC_CC":   {LowPass, "2nd order RC circuit measured over C"},
	"RCRC_RR":   {HighPass, "2nd order RC circuit measured over R"},
	"RCRC_RC":   {Unclassified, "2nd order RC circuit, R2 and C2 in the second stage, measured over R2"},
	"RLC_sR":    {Unclassified, "Series RLC circuit measured over R"},
	"RLC_sL":    {Unclassified, "Series RLC circuit measured over L"},
	"RLC_sC":    {LowPass, "Series RLC circuit measured over C"},
	"RLC_sRL":   {Unclassified, "Series RLC circuit measured over R and L"},
	"RLC_sRC":   {Unclassified, "Series RLC circuit measured over R and C"},
	"RLC_sLC":   {Unclassified, "Series RLC circuit measured over L and C"},
	"RLC_pR":    {Unclassified, "Parallel RLC circuit measured over R"},
	"RLC_pL":    {Unclassified, "Parallel RLC circuit measured over L"},
	"RLC_pC":    {Unclassified, "Parallel RLC circuit measured over C"},
	"RLC_pRL":   {Unclassified, "Parallel RLC circuit measured over R and L"},
	"RLC_pRC":   {Unclassified, "Parallel RLC circuit measured over R and C"},
	"RLC_pLC":   {Unclassified, "Parallel RLC circuit measured over L and C"},
	"RLC_pR_RL": {Unclassified, "Parallel RLC circuit with series R2 on the L branch, measured over R"},
	"RL_R":      {Unclassified, "RL circuit measured over R"},
	"RL_L":      {Unclassified, "RL circuit measured over L"},
	"CL_C":      {Unclassified, "CL circuit measured over C"},
	"CL_L":      {Unclassified, "CL circuit measured over L"},
}

// Describe returns the metadata entry for id. Aliases accepted by [Lookup]
// are accepted here as well.
func Describe(id string) (Metadata, error) {
	m, ok := metadata[canonical(id)]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %q", ErrUnknownTopology, id)
	}
	return m, nil
}

// MetadataNames returns every identifier with a metadata entry, sorted.
func MetadataNames() []string {
	names := make([]string, 0, len(metadata))
	for name := range metadata {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByClass returns the sorted identifiers classified as class.
func ByClass(class FilterClass) []string {
	var names []string
	for name, m := range metadata {
		if m.Class == class {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
