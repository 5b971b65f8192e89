// Package unionfind provides the find/union primitives the cluster
// sampler uses to track connected components (spec.md §4.D). It
// operates directly on the caller's root slice rather than wrapping it
// in a type, the same way prim_kruskal.Kruskal inlines its DSU over a
// map the caller already owns — here the backing array is
// internal/state.Store's Root slice, already owned and sized by the
// run's lifetime.
//
// union is never called across a split: splits require a full rebuild
// of both resulting components (no O(1) split exists for union-find).
// internal/sampler does that rebuild from internal/cluster's component
// enumerations, without calling this package.
package unionfind

// Find follows root until a fixed point root[r] == r, applying path
// compression along the way. Path compression does not affect the
// Markov chain; it only flattens future lookups.
// Complexity: amortized O(alpha(V)).
func Find(root []int32, i int32) int32 {
	// Walk to the fixed point first without mutating, then compress.
	r := i
	for root[r] != r {
		r = root[r]
	}
	// Path compression: point every visited node directly at the root.
	for root[i] != r {
		root[i], i = r, root[i]
	}

	return r
}

// Union merges the cluster containing j into the cluster containing i:
// root[find(j)] <- find(i). This is asymmetric by design (spec.md
// §4.D): the root of i's cluster is always the surviving root label
// after a merge. internal/sampler's bond-toggle merge applies the same
// rule inline (root[rj] = ri) rather than calling Union.
// Complexity: amortized O(alpha(V)).
func Union(root []int32, i, j int32) {
	ri := Find(root, i)
	rj := Find(root, j)
	if ri == rj {
		return
	}
	root[rj] = ri
}
