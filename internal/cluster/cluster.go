// Package cluster implements the bond-graph flood used to enumerate a
// connected component or test connectivity between two sites
// (spec.md §4.E). Both operations use an explicit index queue, never
// recursion, the same style as gridgraph.ConnectedComponents —
// necessary here because components can span the entire lattice and a
// recursive flood would need a raised stack limit (spec.md §9's
// "Recursion limit" design note).
package cluster

import (
	"github.com/katalvlaran/trialitycluster/internal/lattice"
	"github.com/katalvlaran/trialitycluster/internal/state"
)

// Walker holds reusable flood-fill scratch space: a visited bitmap and
// a frontier queue, both sized once to the lattice volume and reused
// across every sweep's bond-removal decisions (spec.md §5's memory
// budget: one persistent allocation per scratch buffer).
type Walker struct {
	visited []bool
	queue   []int
}

// NewWalker allocates a Walker sized for lat.
func NewWalker(lat *lattice.Lattice) *Walker {
	return &Walker{
		visited: make([]bool, lat.Volume()),
		queue:   make([]int, 0, lat.Volume()),
	}
}

// reset clears the visited bitmap for a fresh flood. Only the entries
// touched by the previous flood are cleared, via the queue recorded
// during that flood, so this stays O(|previous component|) rather than
// O(V) per call.
func (w *Walker) reset() {
	for _, s := range w.queue {
		w.visited[s] = false
	}
	w.queue = w.queue[:0]
}

// neighborsOf enumerates the sites reachable from s over present bonds,
// calling visit(neighbor) for each. Bond presence is tested on the
// forward side per spec.md §4.E: the forward neighbor f = step(s,d) is
// reachable iff b[s,d]; the backward neighbor r = step(s,D+d) is
// reachable iff b[r,d].
func neighborsOf(lat *lattice.Lattice, st *state.Store, s int, visit func(int)) {
	d := lat.Dim()
	for dir := 0; dir < d; dir++ {
		if st.Bond[state.BondIndex(lat, s, dir)] {
			visit(lat.Step(s, dir))
		}
		back := lat.Step(s, d+dir)
		if st.Bond[state.BondIndex(lat, back, dir)] {
			visit(back)
		}
	}
}

// Enumerate floods from start over present bonds and returns every site
// in its connected component, including start itself.
// Complexity: O(|component| * D).
func (w *Walker) Enumerate(lat *lattice.Lattice, st *state.Store, start int) []int {
	w.reset()
	w.visited[start] = true
	w.queue = append(w.queue, start)
	for qi := 0; qi < len(w.queue); qi++ {
		s := w.queue[qi]
		neighborsOf(lat, st, s, func(n int) {
			if !w.visited[n] {
				w.visited[n] = true
				w.queue = append(w.queue, n)
			}
		})
	}
	out := make([]int, len(w.queue))
	copy(out, w.queue)

	return out
}

// Connected floods from start, stopping as soon as target is popped
// from the frontier. It reports (true, nil) on success without paying
// for the rest of the component. On failure (start and target are in
// different components) it returns (false, component) where component
// is the fully enumerated set containing start — the caller needs
// exactly this set to evaluate the triality gate on a bond split
// (spec.md §4.G, move 3).
// Complexity: O(|component| * D).
func (w *Walker) Connected(lat *lattice.Lattice, st *state.Store, start, target int) (bool, []int) {
	w.reset()
	w.visited[start] = true
	w.queue = append(w.queue, start)
	for qi := 0; qi < len(w.queue); qi++ {
		s := w.queue[qi]
		if s == target {
			return true, nil
		}
		neighborsOf(lat, st, s, func(n int) {
			if !w.visited[n] {
				w.visited[n] = true
				w.queue = append(w.queue, n)
			}
		})
	}
	out := make([]int, len(w.queue))
	copy(out, w.queue)

	return false, out
}
