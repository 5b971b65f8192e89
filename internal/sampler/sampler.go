// Package sampler implements the triality cluster update kernel
// (spec.md §4.G): a sweep of V repetitions of three independent move
// proposals — baryon hop, intra-cluster quark hop, bond toggle — each
// with its own acceptance rule derived from the coupling gamma.
//
// Kernel bundles the mutable per-run state the three moves share,
// mirroring bfs.walker / dfs.dfsWalker in the teacher package: one
// struct constructed per run, holding the lattice, the configuration
// store, the RNG stream, and a reusable cluster Walker, so none of the
// three move functions need to thread five parameters by hand.
package sampler

import (
	"math"

	"github.com/katalvlaran/trialitycluster/internal/cluster"
	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/rng"
	"github.com/katalvlaran/trialitycluster/internal/state"
	"github.com/katalvlaran/trialitycluster/internal/unionfind"
)

// Constants holds the three precomputed acceptance probabilities and
// the base factor q, derived once per run from gamma (spec.md §4.G).
// Never recompute these inside the sweep loop.
type Constants struct {
	Gamma  float64
	Q      float64 // exp(-gamma)
	PAdd   float64 // 1 - q
	PSplit float64 // 3q / (1 + 2q)
	PMerge float64 // (1-q) / (1+2q)
}

// NewConstants derives the four acceptance constants from gamma.
func NewConstants(gamma float64) Constants {
	q := math.Exp(-gamma)
	return Constants{
		Gamma:  gamma,
		Q:      q,
		PAdd:   1 - q,
		PSplit: 3 * q / (1 + 2*q),
		PMerge: (1 - q) / (1 + 2*q),
	}
}

// SweepStats carries the per-move acceptance numerators for one sweep.
// Denominators are always V (spec.md §9's accounting convention: a
// move that could not even be attempted, e.g. n[i]==0 on move 2, is
// neither an accept nor a reject — only successful mutations are
// counted in the numerator).
type SweepStats struct {
	AcceptBaryonHop int
	AcceptQuarkHop  int
	AcceptBondToggle int
}

// Kernel is the mutable state shared by one run's sweep loop.
type Kernel struct {
	lat    *lattice.Lattice
	st     *state.Store
	rng    *rng.Stream
	walker *cluster.Walker
	c      Constants
}

// New constructs a Kernel over lat/st/stream with acceptance constants
// derived from gamma.
func New(lat *lattice.Lattice, st *state.Store, stream *rng.Stream, gamma float64) *Kernel {
	return &Kernel{
		lat:    lat,
		st:     st,
		rng:    stream,
		walker: cluster.NewWalker(lat),
		c:      NewConstants(gamma),
	}
}

// Constants exposes the kernel's precomputed acceptance constants, used
// by the observable emitter's action-proxy calculation.
func (k *Kernel) Constants() Constants { return k.c }

// Sweep runs V repetitions of the compound triple-move and returns the
// per-move acceptance counts for this sweep.
func (k *Kernel) Sweep() SweepStats {
	var stats SweepStats
	v := k.lat.Volume()
	for iter := 0; iter < v; iter++ {
		if k.baryonHop() {
			stats.AcceptBaryonHop++
		}
		if k.quarkHop() {
			stats.AcceptQuarkHop++
		}
		if k.bondToggle() {
			stats.AcceptBondToggle++
		}
	}

	return stats
}

// randomDirection draws a uniform direction in [0, 2D).
func (k *Kernel) randomDirection() int {
	return k.rng.IntN(k.lat.NumDirections())
}

// baryonHop implements move 1 (spec.md §4.G). The baryon (three quarks)
// carries triality 0, so it is unconditional on cluster identity: it
// may cross cluster boundaries without ever breaking the per-cluster
// triality invariant.
func (k *Kernel) baryonHop() bool {
	i := k.rng.IntN(k.lat.Volume())
	if k.st.Occ[i] <= 2 {
		return false
	}
	d := k.randomDirection()
	j := k.lat.Step(i, d)
	if k.st.Occ[j] >= 4 {
		return false
	}
	k.st.Occ[i] -= 3
	k.st.Occ[j] += 3

	return true
}

// quarkHop implements move 2 (spec.md §4.G). A single quark carries
// nonzero triality, so the same-cluster condition is mandatory: it is
// checked with two O(alpha(V)) find() calls, never a traversal.
func (k *Kernel) quarkHop() bool {
	i := k.rng.IntN(k.lat.Volume())
	if k.st.Occ[i] == 0 {
		return false
	}
	d := k.randomDirection()
	j := k.lat.Step(i, d)
	if k.st.Occ[j] >= 6 {
		return false
	}
	if unionfind.Find(k.st.Root, int32(i)) != unionfind.Find(k.st.Root, int32(j)) {
		return false
	}
	k.st.Occ[i]--
	k.st.Occ[j]++

	return true
}

// bondToggle implements move 3 (spec.md §4.G): removal with a
// triality-gated split decision, or addition with a loop/merge
// distinction. Returns true iff the bond state actually changed.
func (k *Kernel) bondToggle() bool {
	i := k.rng.IntN(k.lat.Volume())
	d := k.rng.IntN(k.lat.Dim())
	j := k.lat.Step(i, d)
	idx := state.BondIndex(k.lat, i, d)

	if k.st.Bond[idx] {
		return k.tryRemove(i, j, idx)
	}

	return k.tryAdd(i, j, idx)
}

// tryRemove handles the E=present branch of move 3.
func (k *Kernel) tryRemove(i, j, idx int) bool {
	k.st.Bond[idx] = false
	stillConnected, compI := k.walker.Connected(k.lat, k.st, i, j)

	if stillConnected {
		// Component unchanged: Metropolis factor against removing a
		// bond that carries weight (1-q).
		if k.rng.Float64() < k.c.Q {
			k.st.NumBond--
			return true
		}
		k.st.Bond[idx] = true
		return false
	}

	// Component split into C_i (enumerated) and the as-yet-unknown C_j.
	sigma := 0
	for _, s := range compI {
		sigma += int(k.st.Occ[s])
	}
	if sigma%3 != 0 {
		k.st.Bond[idx] = true
		return false
	}
	if k.rng.Float64() >= k.c.PSplit {
		k.st.Bond[idx] = true
		return false
	}

	k.st.NumBond--
	k.st.NumCluster++
	compJ := k.walker.Enumerate(k.lat, k.st, j)
	for _, s := range compI {
		k.st.Root[s] = int32(i)
	}
	for _, s := range compJ {
		k.st.Root[s] = int32(j)
	}

	return true
}

// tryAdd handles the E=absent branch of move 3. idx is the forward
// bond index bondToggle already resolved for (i, d).
func (k *Kernel) tryAdd(i, j, idx int) bool {
	ri := unionfind.Find(k.st.Root, int32(i))
	rj := unionfind.Find(k.st.Root, int32(j))

	if ri == rj {
		if k.rng.Float64() >= k.c.PAdd {
			return false
		}
		k.st.Bond[idx] = true
		k.st.NumBond++
		return true
	}

	if k.rng.Float64() >= k.c.PMerge {
		return false
	}
	k.st.Bond[idx] = true
	k.st.NumBond++
	k.st.NumCluster--
	k.st.Root[rj] = ri

	return true
}
