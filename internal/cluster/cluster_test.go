package cluster_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/trialitycluster/internal/cluster"
	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/rng"
	"github.com/katalvlaran/trialitycluster/internal/state"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*lattice.Lattice, *state.Store) {
	t.Helper()
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 0, rng.New(1))
	require.NoError(t, err)
	return lat, st
}

func TestEnumerate_Singleton(t *testing.T) {
	lat, st := setup(t)
	w := cluster.NewWalker(lat)
	comp := w.Enumerate(lat, st, 0)
	require.Equal(t, []int{0}, comp)
}

func TestEnumerate_FollowsBond(t *testing.T) {
	lat, st := setup(t)
	w := cluster.NewWalker(lat)
	site := 0
	neighbor := lat.Step(site, 0)
	st.Bond[state.BondIndex(lat, site, 0)] = true

	comp := w.Enumerate(lat, st, site)
	sort.Ints(comp)
	want := []int{site, neighbor}
	sort.Ints(want)
	require.Equal(t, want, comp)
}

func TestEnumerate_BackwardBondReachable(t *testing.T) {
	lat, st := setup(t)
	w := cluster.NewWalker(lat)
	// bond stored on forward side at 'site'; the backward neighbor of
	// site in direction 0 must still see it as present.
	site := 0
	st.Bond[state.BondIndex(lat, site, 0)] = true
	backward := lat.Step(site, lat.Dim()+0)

	comp := w.Enumerate(lat, st, backward)
	sort.Ints(comp)
	want := []int{site, backward}
	sort.Ints(want)
	require.Equal(t, want, comp)
}

func TestConnected_SameComponent(t *testing.T) {
	lat, st := setup(t)
	w := cluster.NewWalker(lat)
	site := 0
	neighbor := lat.Step(site, 0)
	st.Bond[state.BondIndex(lat, site, 0)] = true

	ok, comp := w.Connected(lat, st, site, neighbor)
	require.True(t, ok)
	require.Nil(t, comp)
}

func TestConnected_DifferentComponents(t *testing.T) {
	lat, st := setup(t)
	w := cluster.NewWalker(lat)
	ok, comp := w.Connected(lat, st, 0, 1)
	require.False(t, ok)
	require.Contains(t, comp, 0)
	require.NotContains(t, comp, 1)
}

// TestWalkerReuseAcrossCalls exercises the scratch-buffer reuse: a
// second flood after a first on a different start must not see stale
// visited entries from the first.
func TestWalkerReuseAcrossCalls(t *testing.T) {
	lat, st := setup(t)
	w := cluster.NewWalker(lat)
	_ = w.Enumerate(lat, st, 0)
	comp := w.Enumerate(lat, st, 1)
	require.Equal(t, []int{1}, comp)
}

func TestEnumerate_FullLatticeWhenAllBondsPresent(t *testing.T) {
	lat, st := setup(t)
	for s := 0; s < lat.Volume(); s++ {
		for d := 0; d < lat.Dim(); d++ {
			st.Bond[state.BondIndex(lat, s, d)] = true
		}
	}
	w := cluster.NewWalker(lat)
	comp := w.Enumerate(lat, st, 0)
	require.Len(t, comp, lat.Volume())
}
