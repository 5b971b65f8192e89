// Package validate recomputes the sampler's three primary invariants
// from scratch each sweep and compares them against the incrementally
// maintained counters (spec.md §4.F/§7/§8). Any mismatch indicates a
// code defect, never a user error, so Run returns a wrapped error the
// caller is expected to treat as fatal.
package validate

import (
	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/state"
	"github.com/katalvlaran/trialitycluster/internal/unionfind"
	"github.com/pkg/errors"
)

// Run performs the three checks spec.md §4.F requires:
//  1. sum(n[i]) == NQ
//  2. count of roots (i with find(i)==i) == NumCluster
//  3. count of present bonds == NumBond
//
// It returns the first mismatch found, wrapped with observed-vs-expected
// counts via github.com/pkg/errors so the CLI boundary can print a
// diagnostic identifying which invariant failed (spec.md §7).
func Run(lat *lattice.Lattice, st *state.Store) error {
	var quarkSum int
	for _, n := range st.Occ {
		quarkSum += int(n)
	}
	if quarkSum != st.NQ {
		return errors.Wrapf(ErrQuarkSum, "observed=%d expected=%d", quarkSum, st.NQ)
	}

	roots := 0
	for i := range st.Root {
		if unionfind.Find(st.Root, int32(i)) == int32(i) {
			roots++
		}
	}
	if roots != st.NumCluster {
		return errors.Wrapf(ErrClusterCount, "observed=%d expected=%d", roots, st.NumCluster)
	}

	bonds := 0
	for _, present := range st.Bond {
		if present {
			bonds++
		}
	}
	if bonds != st.NumBond {
		return errors.Wrapf(ErrBondCount, "observed=%d expected=%d", bonds, st.NumBond)
	}

	return nil
}
