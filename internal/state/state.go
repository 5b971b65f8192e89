// Package state owns the mutable configuration of a single sampler run:
// per-site occupation, per-edge bond flags, the union-find forest, and
// the two incrementally-maintained counters NumBond/NumCluster
// (spec.md §3/§4.C). It is the analogue of core.Graph in the teacher
// package, but shaped for a fixed D-dimensional lattice rather than a
// general string-keyed graph: one flat array per field, sized once at
// construction and never resized.
//
// Store is not safe for concurrent use. The sampler is strictly
// sequential (spec.md §5); adding core.Graph's sync.RWMutex pair here
// would protect against a race that cannot occur and would cost every
// hot-loop access a lock/unlock pair.
package state

import (
	"fmt"

	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/rng"
)

// Store holds the full mutable state of one run.
type Store struct {
	Occ []uint8 // occupation n[i], 0..6, len == V
	Bond []bool // bond flags, forward side only, len == V*D
	Root []int32 // union-find forest, len == V

	NumBond    int
	NumCluster int

	NQ int // conserved total quark count, 3*NB
}

// New constructs a Store for lat with NB baryons. Refuses to construct
// if NB > 2*Volume (spec.md §4.C). Initial placement follows spec.md
// §4.C exactly: if NB <= V, start empty and add baryons one at a time
// to sites with n < 4, resampling on rejection; otherwise start full
// and remove baryons from sites with n > 2, resampling on rejection.
// Bonds start absent, Root[i] = i, NumBond = 0, NumCluster = V.
func New(lat *lattice.Lattice, nb int, stream *rng.Stream) (*Store, error) {
	v := lat.Volume()
	if nb > 2*v {
		return nil, fmt.Errorf("%w: N_B=%d, 2V=%d", ErrTooManyBaryons, nb, 2*v)
	}
	if nb < 0 {
		return nil, fmt.Errorf("%w: N_B=%d", ErrNegativeBaryons, nb)
	}

	d := lat.Dim()
	st := &Store{
		Occ:  make([]uint8, v),
		Bond: make([]bool, v*d),
		Root: make([]int32, v),
		NQ:   3 * nb,
	}
	for i := range st.Root {
		st.Root[i] = int32(i)
	}
	st.NumCluster = v

	if nb <= v {
		for placed := 0; placed < nb; {
			site := stream.IntN(v)
			if st.Occ[site] < 4 { // n[site] in {0,3}
				st.Occ[site] += 3
				placed++
			}
		}
	} else {
		for i := range st.Occ {
			st.Occ[i] = 6
		}
		toRemove := 2*v - nb
		for removed := 0; removed < toRemove; {
			site := stream.IntN(v)
			if st.Occ[site] > 2 { // n[site] in {3,6}
				st.Occ[site] -= 3
				removed++
			}
		}
	}

	return st, nil
}

// BondIndex returns the flat index of bond (site, d) for d < D, the
// forward-side storage convention of spec.md §3.
func BondIndex(lat *lattice.Lattice, site, d int) int {
	return site*lat.Dim() + d
}
