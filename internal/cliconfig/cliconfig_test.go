package cliconfig_test

import (
	"testing"

	"github.com/katalvlaran/trialitycluster/internal/cliconfig"
	"github.com/stretchr/testify/require"
)

func TestParse_ThreeDimensional(t *testing.T) {
	cfg, err := cliconfig.Parse([]string{"2", "2", "2", "4", "1.0", "100", "42", "/tmp/out"})
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2}, cfg.Sides)
	require.Equal(t, 4, cfg.NB)
	require.Equal(t, 1.0, cfg.Gamma)
	require.Equal(t, 100, cfg.Nsweep)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, "/tmp/out", cfg.Outdir)
}

func TestParse_FourDimensional(t *testing.T) {
	cfg, err := cliconfig.Parse([]string{"3", "3", "3", "1", "3", "0.5", "200", "13", "/tmp/out"})
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 3, 1}, cfg.Sides)
}

func TestParse_RejectsBadArgCount(t *testing.T) {
	_, err := cliconfig.Parse([]string{"2", "2"})
	require.ErrorIs(t, err, cliconfig.ErrArgCount)
}

func TestParse_RejectsTooManyBaryons(t *testing.T) {
	_, err := cliconfig.Parse([]string{"2", "2", "2", "17", "1.0", "10", "1", "/tmp/out"})
	require.ErrorIs(t, err, cliconfig.ErrTooManyBaryons)
}

func TestParse_AllowsBoundaryNB(t *testing.T) {
	// N_B = 2V, spec.md boundary 10: largest permissible value, allowed.
	_, err := cliconfig.Parse([]string{"2", "2", "2", "16", "1.0", "10", "1", "/tmp/out"})
	require.NoError(t, err)
}

func TestParse_RejectsNonNumericSide(t *testing.T) {
	_, err := cliconfig.Parse([]string{"x", "2", "2", "4", "1.0", "10", "1", "/tmp/out"})
	require.ErrorIs(t, err, cliconfig.ErrInvalidSide)
}

func TestParse_RejectsEmptyOutdir(t *testing.T) {
	_, err := cliconfig.Parse([]string{"2", "2", "2", "4", "1.0", "10", "1", ""})
	require.ErrorIs(t, err, cliconfig.ErrEmptyOutdir)
}
