// Command tfsweep evaluates one circuit topology over a log-spaced
// frequency range and writes the Bode data as a table, TSV and/or XLSX.
//
// Settings come from defaults, an optional YAML/TOML/JSON file and
// TFSWEEP_* environment variables:
//
//	topology: RLC_sC
//	r: 10
//	l: 1e-3
//	c: 1e-6
//	start: 10
//	stop: 100000
//	points: 61
//	tsv: sweep.tsv
//	xlsx: sweep.xlsx
//
// Usage:
//
//	tfsweep [-config sweep.yaml] [-quiet]
//	TFSWEEP_TOPOLOGY=RC_R TFSWEEP_R=1000 TFSWEEP_C=1e-6 tfsweep
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cwbudde/algo-circuit/analog/response"
	"github.com/cwbudde/algo-circuit/analog/transfer"
	"github.com/cwbudde/algo-circuit/internal/config"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfgPath := flag.String("config", "", "sweep settings file (yaml, toml or json)")
	quiet := flag.Bool("quiet", false, "do not print the table to stdout")
	flag.Parse()

	s, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load sweep settings")
	}

	out := io.Writer(os.Stdout)
	if *quiet {
		out = io.Discard
	}
	if err := run(s, out); err != nil {
		log.Fatal().Err(err).Str("topology", s.Topology).Msg("Sweep failed")
	}
}

func run(s *config.Sweep, out io.Writer) error {
	topo, err := transfer.Lookup(s.Topology)
	if err != nil {
		return err
	}

	sw, err := evaluate(topo, s)
	if err != nil {
		return err
	}

	log.Info().
		Str("topology", topo.Name()).
		Int("points", len(sw.Freqs)).
		Float64("start_hz", s.Start).
		Float64("stop_hz", s.Stop).
		Msg("Sweep evaluated")

	if fc, err := response.Corner(sw.Freqs, sw.H, sw.DB[0]); err == nil {
		log.Info().Float64("corner_hz", fc).Msg("-3 dB point relative to first sample")
	} else if !errors.Is(err, response.ErrNoCrossing) {
		return err
	}

	if err := writeTable(out, sw); err != nil {
		return err
	}
	if s.TSVFile != "" {
		if err := writeTSV(s.TSVFile, sw); err != nil {
			return err
		}
		log.Info().Str("file", s.TSVFile).Msg("TSV saved")
	}
	if s.XLSXFile != "" {
		if err := writeXLSX(s.XLSXFile, sw); err != nil {
			return err
		}
		log.Info().Str("file", s.XLSXFile).Msg("XLSX saved")
	}
	return nil
}

// sweep holds the evaluated Bode data of one topology.
type sweep struct {
	Topology transfer.Topology
	Meta     transfer.Metadata
	Params   transfer.Params
	Freqs    []float64
	H        []complex128
	Mag      []float64
	DB       []float64
	PhaseDeg []float64
}

func evaluate(topo transfer.Topology, s *config.Sweep) (*sweep, error) {
	freqs, err := response.LogSpace(s.Start, s.Stop, s.Points)
	if err != nil {
		return nil, err
	}
	h, err := topo.Sweep(freqs, s.Params)
	if err != nil {
		return nil, err
	}
	meta, err := topo.Metadata()
	if err != nil {
		return nil, err
	}

	phase := response.UnwrapPhase(response.Phase(h))
	for i := range phase {
		phase[i] *= 180 / math.Pi
	}
	return &sweep{
		Topology: topo,
		Meta:     meta,
		Params:   s.Params,
		Freqs:    freqs,
		H:        h,
		Mag:      response.Magnitude(h),
		DB:       response.MagnitudeDB(h),
		PhaseDeg: phase,
	}, nil
}

var columns = []string{"f [Hz]", "|H|", "|H| [dB]", "phase [deg]", "Re", "Im"}

func (s *sweep) row(i int) []float64 {
	return []float64{s.Freqs[i], s.Mag[i], s.DB[i], s.PhaseDeg[i], real(s.H[i]), imag(s.H[i])}
}

func writeTable(w io.Writer, s *sweep) error {
	fmt.Fprintf(w, "%s (%s) %s\n\n", s.Topology.Name(), s.Meta.Description, s.Params.Set())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, c := range columns {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)
	for i := range s.Freqs {
		for _, v := range s.row(i) {
			fmt.Fprintf(tw, "%10.4g\t", v)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
