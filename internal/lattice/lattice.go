// Package lattice provides site indexing and neighbor traversal for a
// D-dimensional periodic box, D in {3,4}. Sites are numbered by the
// row-major mixed-radix scheme i = i_0 + L_0*(i_1 + L_1*(i_2 + ...)).
// Directions 0..D-1 are the forward +e_d step; D..2D-1 are the matching
// backward -e_d step, with the pairing d <-> D+d held fixed for the
// life of a Lattice.
//
// Complexity: every exported method here is O(D) or O(1); D is at most
// 4 for this package's scope, so all of these are effectively O(1).
package lattice

import (
	"fmt"
)

// Lattice is an immutable D-dimensional periodic box with side lengths
// Sides. It records per-dimension strides at construction; Site, Coords
// and Step do not read them. Coords returns a freshly allocated slice,
// and Step allocates one through Coords on every call.
type Lattice struct {
	sides   []int // side length per dimension, len == dim
	strides []int // strides[d] = product of sides[0:d]
	volume  int
	dim     int
}

// New constructs a Lattice from side lengths. dim is implied by
// len(sides) and must be 3 or 4. Every side must be >= 1.
// Complexity: O(D).
func New(sides []int) (*Lattice, error) {
	dim := len(sides)
	if dim != 3 && dim != 4 {
		return nil, fmt.Errorf("%w: got %d side lengths", ErrInvalidDimension, dim)
	}
	strides := make([]int, dim)
	vol := 1
	for d, l := range sides {
		if l < 1 {
			return nil, fmt.Errorf("%w: side %d is %d", ErrInvalidSide, d, l)
		}
		strides[d] = vol
		vol *= l
	}
	// Defensive copy so later mutation of the caller's slice cannot
	// invalidate the Lattice.
	own := make([]int, dim)
	copy(own, sides)

	return &Lattice{sides: own, strides: strides, volume: vol, dim: dim}, nil
}

// Dim returns D, the number of spatial dimensions (3 or 4).
func (lat *Lattice) Dim() int { return lat.dim }

// NumDirections returns 2D, the count of forward+backward directions.
func (lat *Lattice) NumDirections() int { return 2 * lat.dim }

// Volume returns V = product of all side lengths.
func (lat *Lattice) Volume() int { return lat.volume }

// Side returns the side length of dimension d.
func (lat *Lattice) Side(d int) int { return lat.sides[d] }

// Site maps a coordinate tuple to its row-major index. coords must have
// length Dim() and each component already reduced mod its side (callers
// that add/subtract 1 to a coordinate should use Step instead of calling
// Site directly on the raw arithmetic result).
func (lat *Lattice) Site(coords []int) int {
	idx := 0
	for d := lat.dim - 1; d >= 0; d-- {
		idx = idx*lat.sides[d] + ((coords[d] % lat.sides[d]) + lat.sides[d]) % lat.sides[d]
	}
	return idx
}

// Coords decodes a site index back into its coordinate tuple.
func (lat *Lattice) Coords(site int) []int {
	out := make([]int, lat.dim)
	for d := 0; d < lat.dim; d++ {
		out[d] = site % lat.sides[d]
		site /= lat.sides[d]
	}
	return out
}

// Step advances one unit from site in the given direction, wrapping
// modulo the relevant side length. Forward directions 0..D-1 increment
// coordinate d; backward directions D..2D-1 decrement coordinate d-D.
// Step(Step(i, d), D+d) == i for every i and d < D.
func (lat *Lattice) Step(site, direction int) int {
	d := direction
	delta := 1
	if d >= lat.dim {
		d -= lat.dim
		delta = -1
	}
	coords := lat.Coords(site)
	side := lat.sides[d]
	coords[d] = ((coords[d]+delta)%side + side) % side

	return lat.Site(coords)
}
