// Package potts implements the reference single-spin Metropolis–
// Rosenbluth–Teller sampler for the zero-density three-state Potts
// model (spec.md §6), carried for completeness and smoke-testing. It
// is not the focus of this module — the triality cluster sampler in
// internal/sampler is — so it gets a minimal surface and no CSV
// plumbing of its own beyond what cmd/trialitycluster's "potts"
// subcommand wires up directly.
package potts

import (
	"math"

	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/rng"
)

// NumStates is the fixed number of Potts states (spec.md §6: s in {0,1,2}).
const NumStates = 3

// State holds the per-site spin assignment for the MRT sampler.
type State struct {
	Spin []uint8 // s[i] in {0,1,2}
}

// NewState returns a State with every spin initialized to 0.
func NewState(lat *lattice.Lattice) *State {
	return &State{Spin: make([]uint8, lat.Volume())}
}

// SweepStats carries the single acceptance count an MRT sweep produces.
type SweepStats struct {
	Accepted int
}

// Sweep runs V single-site MRT proposals (spec.md §6): draw a site,
// draw a candidate state uniformly; if it matches the current state
// that counts as accepted without any energy evaluation; otherwise
// accept iff the energy delta is non-negative or a uniform draw falls
// under exp(delta).
func Sweep(lat *lattice.Lattice, st *State, stream *rng.Stream, gamma float64) SweepStats {
	var stats SweepStats
	v := lat.Volume()
	d := lat.Dim()
	for iter := 0; iter < v; iter++ {
		i := stream.IntN(v)
		s := uint8(stream.IntN(NumStates))
		if s == st.Spin[i] {
			stats.Accepted++
			continue
		}

		var sameAsNew, sameAsOld int
		for dir := 0; dir < 2*d; dir++ {
			n := lat.Step(i, dir)
			if st.Spin[n] == s {
				sameAsNew++
			}
			if st.Spin[n] == st.Spin[i] {
				sameAsOld++
			}
		}
		delta := gamma * float64(sameAsNew-sameAsOld)
		if delta > 0 || stream.Float64() < math.Exp(delta) {
			st.Spin[i] = s
			stats.Accepted++
		}
	}

	return stats
}

// Populations returns the per-state site counts, spec.md §6's
// "per-state population counts" observable.
func Populations(st *State) [NumStates]int {
	var pop [NumStates]int
	for _, s := range st.Spin {
		pop[s]++
	}
	return pop
}

// Action computes -gamma * sum over forward edges of [s_i == s_j],
// spec.md §6's action observable.
func Action(lat *lattice.Lattice, st *State, gamma float64) float64 {
	d := lat.Dim()
	v := lat.Volume()
	equal := 0
	for i := 0; i < v; i++ {
		for dir := 0; dir < d; dir++ {
			if st.Spin[i] == st.Spin[lat.Step(i, dir)] {
				equal++
			}
		}
	}

	return -gamma * float64(equal)
}
