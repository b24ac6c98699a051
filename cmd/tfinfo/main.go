// Command tfinfo prints the catalogue of circuit transfer functions and
// their responses at selected frequencies.
//
// Usage:
//
//	tfinfo [flags] [topology ...]
//
// Without arguments it describes every known topology. When -freq is given
// and the component flags cover a topology's requirements, the magnitude
// and phase at each frequency are printed as well.
//
// Examples:
//
//	tfinfo -list
//	tfinfo RC_C RC_R
//	tfinfo -r 1k -c 100n -freq 100,1591.5,10k RC_C RCRC_CC
//	tfinfo -r 10 -l 1m -c 1u -freq 5033 RLC_sR RLC_sL RLC_sC
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

func main() {
	var (
		p     transfer.Params
		freqs []float64
	)
	for _, c := range []struct {
		name string
		elem transfer.Element
		help string
	}{
		{"r", transfer.R, "resistance R in ohms"},
		{"r2", transfer.R2, "second resistance R2 in ohms"},
		{"l", transfer.L, "inductance L in henries"},
		{"c", transfer.C, "capacitance C in farads"},
		{"c2", transfer.C2, "second capacitance C2 in farads"},
	} {
		elem := c.elem
		flag.Func(c.name, c.help+" (SI suffix allowed, e.g. 4.7k)", func(s string) error {
			v, err := parseValue(s)
			if err != nil {
				return err
			}
			p = p.With(elem, v)
			return nil
		})
	}
	flag.Func("freq", "comma-separated frequencies in Hz", func(s string) error {
		f, err := parseList(s)
		freqs = f
		return err
	})
	list := flag.Bool("list", false, "list available topology names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tfinfo [flags] [topology ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints analog circuit transfer functions and their responses.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tfinfo -list\n")
		fmt.Fprintf(os.Stderr, "  tfinfo -r 1k -c 100n -freq 100,1k,10k RC_C RC_R\n")
	}
	flag.Parse()

	if *list {
		for _, name := range transfer.Names() {
			fmt.Println(name)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = transfer.Names()
	}

	topos, err := resolve(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := printCatalog(os.Stdout, topos); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(freqs) > 0 {
		fmt.Println()
		if err := printResponses(os.Stdout, topos, freqs, p); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func resolve(names []string) ([]transfer.Topology, error) {
	topos := make([]transfer.Topology, 0, len(names))
	var errs []error
	for _, name := range names {
		t, err := transfer.Lookup(strings.TrimSpace(name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		topos = append(topos, t)
	}
	if len(topos) == 0 {
		errs = append(errs, errors.New("no matching topologies (use -list to see available)"))
	}
	return topos, errors.Join(errs...)
}

func printCatalog(w io.Writer, topos []transfer.Topology) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Topology\tOrder\tRequires\tClass\tDescription\n")
	fmt.Fprintf(tw, "--------\t-----\t--------\t-----\t-----------\n")
	for _, t := range topos {
		m, err := t.Metadata()
		if err != nil {
			return err
		}
		class := string(m.Class)
		if class == "" {
			class = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", t.Name(), t.Order(), t.Requires(), class, m.Description)
	}
	return tw.Flush()
}

func printResponses(w io.Writer, topos []transfer.Topology, freqs []float64, p transfer.Params) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Topology\tf [Hz]\t|H| [dB]\tPhase [deg]\tRe\tIm\t\n")
	for _, t := range topos {
		h, err := t.Sweep(freqs, p)
		if errors.Is(err, transfer.ErrMissingParam) {
			fmt.Fprintf(tw, "%s\t(needs %s)\t\t\t\t\t\n", t.Name(), t.Requires())
			continue
		}
		if err != nil {
			return err
		}
		for i, f := range freqs {
			fmt.Fprintf(tw, "%s\t%.6g\t%.3f\t%.2f\t%.6g\t%.6g\t\n",
				t.Name(), f, 20*math.Log10(cmplx.Abs(h[i])), cmplx.Phase(h[i])*180/math.Pi, real(h[i]), imag(h[i]))
		}
	}
	return tw.Flush()
}

var prefixes = map[byte]float64{
	'p': 1e-12, 'n': 1e-9, 'u': 1e-6, 'm': 1e-3,
	'k': 1e3, 'M': 1e6, 'G': 1e9,
}

// parseValue parses a float with an optional SI suffix, e.g. "4.7k", "100n".
func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	scale := 1.0
	if m, ok := prefixes[s[len(s)-1]]; ok {
		scale = m
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return v * scale, nil
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		v, err := parseValue(field)
		if err != nil {
			return nil, fmt.Errorf("frequency %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, nil
}
