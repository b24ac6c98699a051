package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-circuit/analog/transfer"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "sweep.yaml", `
topology: RLC_sC
r: 10
l: 0.001
c: 1e-6
start: 100
stop: 10000
points: 5
tsv: out.tsv
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "RLC_sC", s.Topology)
	assert.Equal(t, 100.0, s.Start)
	assert.Equal(t, 10000.0, s.Stop)
	assert.Equal(t, 5, s.Points)
	assert.Equal(t, "out.tsv", s.TSVFile)
	assert.Empty(t, s.XLSXFile)
	assert.Equal(t, transfer.R|transfer.L|transfer.C, s.Params.Set())

	c, ok := s.Params.Get(transfer.C)
	require.True(t, ok)
	assert.InDelta(t, 1e-6, c, 1e-18)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "sweep.yaml", "topology: RC_C\nr: 100\nc: 1e-6\n")
	t.Setenv("TFSWEEP_R", "2200")
	t.Setenv("TFSWEEP_POINTS", "7")

	s, err := Load(path)
	require.NoError(t, err)

	r, _ := s.Params.Get(transfer.R)
	assert.Equal(t, 2200.0, r)
	assert.Equal(t, 7, s.Points)
}

func TestEnvironmentOnly(t *testing.T) {
	t.Setenv("TFSWEEP_TOPOLOGY", "RL_L")
	t.Setenv("TFSWEEP_R", "50")
	t.Setenv("TFSWEEP_L", "0.01")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "RL_L", s.Topology)
	assert.Equal(t, 61, s.Points)
	assert.True(t, s.Params.Has(transfer.R|transfer.L))
	assert.False(t, s.Params.Has(transfer.C))
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]string{
		"unknown topology": "topology: XYZ_bogus\nr: 1\nc: 1\n",
		"missing element":  "topology: RLC_sC\nr: 1\nc: 1\n",
		"bad range":        "topology: RC_C\nr: 1\nc: 1\nstart: 100\nstop: 10\n",
		"too few points":   "topology: RC_C\nr: 1\nc: 1\npoints: 1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "sweep.yaml", body))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestUnknownTopologyKeepsCause(t *testing.T) {
	_, err := Load(writeFile(t, "sweep.yaml", "topology: nope\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, transfer.ErrUnknownTopology))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
