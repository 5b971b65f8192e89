package validate

import "errors"

var (
	// ErrQuarkSum indicates sum(n[i]) drifted from the conserved total.
	ErrQuarkSum = errors.New("validate: quark sum invariant violated")
	// ErrClusterCount indicates the recounted root set disagrees with
	// the incrementally maintained NumCluster.
	ErrClusterCount = errors.New("validate: cluster count invariant violated")
	// ErrBondCount indicates the recounted present-bond total disagrees
	// with the incrementally maintained NumBond.
	ErrBondCount = errors.New("validate: bond count invariant violated")
)
