// Package solver implements the three hard algorithmic pieces: the
// moves-equals-pushes BFS solver, the b-type bidirectional solver, and the
// LURD-to-puzzle reconstructor.
package solver

import "errors"

var (
	// ErrNoSolution is returned when a search exhausts its open queue.
	ErrNoSolution = errors.New("solver: no solution")
	// ErrCancelled is returned when the caller's context is done.
	ErrCancelled = errors.New("solver: cancelled")
	// ErrOutOfMemory is returned when free memory drops below the solver's
	// threshold mid-search.
	ErrOutOfMemory = errors.New("solver: out of memory")
	// ErrInvalidLURD is returned by the reconstructor for a malformed trace.
	ErrInvalidLURD = errors.New("solver: invalid lurd string")
	// ErrDeadlockAtStart is returned by the b-type solver when the lower
	// bound estimator reports the start position cannot be solved.
	ErrDeadlockAtStart = errors.New("solver: deadlock at start")
)
