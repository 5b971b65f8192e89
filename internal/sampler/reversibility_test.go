package sampler

import (
	"testing"

	"github.com/katalvlaran/trialitycluster/internal/cluster"
	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/rng"
	"github.com/katalvlaran/trialitycluster/internal/state"
	"github.com/katalvlaran/trialitycluster/internal/unionfind"
	"github.com/stretchr/testify/require"
)

// forceBaryonHop applies move 1's occupation mutation from i to j
// directly, bypassing the random site/direction draw, so property 7
// (spec.md §8: baryon-hop reversibility) can be checked along a chosen
// edge instead of waiting on the RNG to pick one.
func (k *Kernel) forceBaryonHop(i, j int) bool {
	if k.st.Occ[i] <= 2 {
		return false
	}
	if k.st.Occ[j] >= 4 {
		return false
	}
	k.st.Occ[i] -= 3
	k.st.Occ[j] += 3

	return true
}

// TestBaryonHop_Reversibility matches spec.md property 7: proposing
// (i->j) then (j->i) from matching states restores the original
// configuration.
func TestBaryonHop_Reversibility(t *testing.T) {
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 0, rng.New(1))
	require.NoError(t, err)
	k := New(lat, st, rng.New(1), 0)

	i, j := 0, lat.Step(0, 0)
	st.Occ[i] = 6
	st.Occ[j] = 0
	before := append([]uint8(nil), st.Occ...)

	require.True(t, k.forceBaryonHop(i, j))
	require.Equal(t, uint8(3), st.Occ[i])
	require.Equal(t, uint8(3), st.Occ[j])

	require.True(t, k.forceBaryonHop(j, i))
	require.Equal(t, before, st.Occ)
}

// forceMerge applies move 3's merge-branch mutation unconditionally,
// bypassing the p_merge acceptance draw.
func (k *Kernel) forceMerge(i, j, idx int) {
	ri := unionfind.Find(k.st.Root, int32(i))
	rj := unionfind.Find(k.st.Root, int32(j))
	k.st.Bond[idx] = true
	k.st.NumBond++
	k.st.NumCluster--
	k.st.Root[rj] = ri
}

// forceSplit applies move 3's split-branch mutation unconditionally,
// bypassing the triality-gate and p_split acceptance draws.
func (k *Kernel) forceSplit(i, j, idx int) {
	k.st.Bond[idx] = false
	k.st.NumBond--
	k.st.NumCluster++
	compI := k.walker.Enumerate(k.lat, k.st, i)
	compJ := k.walker.Enumerate(k.lat, k.st, j)
	for _, s := range compI {
		k.st.Root[s] = int32(i)
	}
	for _, s := range compJ {
		k.st.Root[s] = int32(j)
	}
}

// TestBondToggle_AddThenRemoveRestoresState checks spec.md property 8's
// round trip in the add-then-remove order: merging the bond between two
// singleton clusters and then splitting it again restores the exact
// bond/counter/root state, up to the equivalent labeling unionfind.Find
// already normalizes away.
func TestBondToggle_AddThenRemoveRestoresState(t *testing.T) {
	lat, err := lattice.New([]int{2, 2, 2})
	require.NoError(t, err)
	st, err := state.New(lat, 0, rng.New(1))
	require.NoError(t, err)
	k := New(lat, st, rng.New(1), 0)
	k.walker = cluster.NewWalker(lat)

	i, d := 0, 0
	j := lat.Step(i, d)
	idx := state.BondIndex(lat, i, d)

	beforeNumBond := st.NumBond
	beforeNumCluster := st.NumCluster
	beforeRootI := unionfind.Find(st.Root, int32(i))
	beforeRootJ := unionfind.Find(st.Root, int32(j))

	k.forceMerge(i, j, idx)
	require.True(t, st.Bond[idx])
	require.Equal(t, beforeNumBond+1, st.NumBond)
	require.Equal(t, beforeNumCluster-1, st.NumCluster)

	k.forceSplit(i, j, idx)
	require.False(t, st.Bond[idx])
	require.Equal(t, beforeNumBond, st.NumBond)
	require.Equal(t, beforeNumCluster, st.NumCluster)
	require.Equal(t, beforeRootI, unionfind.Find(st.Root, int32(i)))
	require.Equal(t, beforeRootJ, unionfind.Find(st.Root, int32(j)))
}
