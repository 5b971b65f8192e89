package validate_test

import (
	"testing"

	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/rng"
	"github.com/katalvlaran/trialitycluster/internal/state"
	"github.com/katalvlaran/trialitycluster/internal/validate"
	"github.com/stretchr/testify/require"
)

func TestRun_PassesOnFreshState(t *testing.T) {
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 2, rng.New(1))
	require.NoError(t, err)
	require.NoError(t, validate.Run(lat, st))
}

func TestRun_DetectsQuarkSumDrift(t *testing.T) {
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 2, rng.New(1))
	require.NoError(t, err)
	st.Occ[0]++ // silently corrupt the conserved quantity
	err = validate.Run(lat, st)
	require.ErrorIs(t, err, validate.ErrQuarkSum)
}

func TestRun_DetectsClusterCountDrift(t *testing.T) {
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 0, rng.New(1))
	require.NoError(t, err)
	st.NumCluster-- // desync the maintained counter from reality
	err = validate.Run(lat, st)
	require.ErrorIs(t, err, validate.ErrClusterCount)
}

func TestRun_DetectsBondCountDrift(t *testing.T) {
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 0, rng.New(1))
	require.NoError(t, err)
	st.Bond[0] = true // flip a bond without updating NumBond
	err = validate.Run(lat, st)
	require.ErrorIs(t, err, validate.ErrBondCount)
}
