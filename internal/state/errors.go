package state

import "errors"

var (
	// ErrTooManyBaryons indicates N_B > 2V: more baryons than the
	// lattice can hold at 6 quarks per site.
	ErrTooManyBaryons = errors.New("state: N_B exceeds 2*volume")
	// ErrNegativeBaryons indicates a negative baryon count was requested.
	ErrNegativeBaryons = errors.New("state: N_B must be >= 0")
)
