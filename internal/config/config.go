// Package config loads sweep settings for the command-line tools.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

// EnvPrefix is prepended to every environment variable, e.g. TFSWEEP_R.
const EnvPrefix = "TFSWEEP"

// Sweep holds the settings of one frequency sweep.
type Sweep struct {
	Topology string
	Params   transfer.Params
	Start    float64
	Stop     float64
	Points   int
	TSVFile  string
	XLSXFile string
}

var components = []struct {
	key  string
	elem transfer.Element
}{
	{"r", transfer.R},
	{"r2", transfer.R2},
	{"l", transfer.L},
	{"c", transfer.C},
	{"c2", transfer.C2},
}

// Load reads sweep settings from defaults, an optional config file and
// TFSWEEP_* environment variables, in increasing priority. An empty path
// skips the file.
func Load(path string) (*Sweep, error) {
	v := viper.New()

	v.SetDefault("topology", "RC_C")
	v.SetDefault("start", 10.0)
	v.SetDefault("stop", 100e3)
	v.SetDefault("points", 61)
	v.SetDefault("tsv", "")
	v.SetDefault("xlsx", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, c := range components {
		if err := v.BindEnv(c.key); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", c.key, err)
		}
	}

	s := &Sweep{
		Topology: v.GetString("topology"),
		Start:    v.GetFloat64("start"),
		Stop:     v.GetFloat64("stop"),
		Points:   v.GetInt("points"),
		TSVFile:  v.GetString("tsv"),
		XLSXFile: v.GetString("xlsx"),
	}
	for _, c := range components {
		if v.IsSet(c.key) {
			s.Params = s.Params.With(c.elem, v.GetFloat64(c.key))
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ErrInvalid is returned for sweep settings that cannot be evaluated.
var ErrInvalid = errors.New("config: invalid sweep")

// Validate checks that the topology exists, that every component it
// requires is configured and that the frequency range is usable.
func (s *Sweep) Validate() error {
	topo, err := transfer.Lookup(s.Topology)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !s.Params.Has(topo.Requires()) {
		return fmt.Errorf("%w: %s requires %s, configured %s", ErrInvalid, topo.Name(), topo.Requires(), s.Params.Set())
	}
	if s.Start <= 0 || s.Stop <= s.Start {
		return fmt.Errorf("%w: frequency range [%g, %g]", ErrInvalid, s.Start, s.Stop)
	}
	if s.Points < 2 {
		return fmt.Errorf("%w: points must be >= 2: %d", ErrInvalid, s.Points)
	}
	return nil
}
