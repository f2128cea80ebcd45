// Package schwarz - the distributed direct variant: exact local solves in
// place of Jacobi relaxation.
package schwarz

import "errors"

// ErrLocalSolve indicates that one rank's local linear system could not be
// factorized (numerically singular or not positive definite). It is
// reported per rank, wrapped with the rank index, after the failing rank
// has released its peers through the abort protocol.
var ErrLocalSolve = errors.New("schwarz: local system factorization failed")
