package main

import "errors"

// exitError tags an error with the process exit code it should produce,
// distinguishing bad-argument failures from invariant violations
// (spec.md §6: "Exit code 0 on success, nonzero on bad args or
// invariant violation" — we go one step further and keep the two
// nonzero codes distinct, as xtaci-kcptun's client/server mains do for
// their own failure classes).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

const (
	exitBadArgs    = 1
	exitInvariant  = 2
	exitGenericErr = 1
)

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// exitCodeFor extracts the intended exit code from err, defaulting to 1
// for any error that was not explicitly tagged.
func exitCodeFor(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	return exitGenericErr
}
