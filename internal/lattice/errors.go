package lattice

import "errors"

var (
	// ErrInvalidDimension indicates a side-length slice whose length is
	// not 3 or 4 (this system supports only 3D and 4D periodic boxes).
	ErrInvalidDimension = errors.New("lattice: dimension must be 3 or 4")
	// ErrInvalidSide indicates a side length less than 1.
	ErrInvalidSide = errors.New("lattice: side length must be >= 1")
)
