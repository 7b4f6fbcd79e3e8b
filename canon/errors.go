// Package canon: sentinel error set.
// All functions return these sentinels (optionally wrapped with an op tag
// via %w) and tests check them via errors.Is.

package canon

import "errors"

var (
	// ErrSingular is returned when a matrix that must be inverted during
	// canonicalization (W*, V*, or an action parameter) is not invertible.
	// In the intended input domain this indicates a data-integrity defect,
	// not an expected path: well-formed factorizations with an exact
	// identity-producing factor always have invertible V* and W*.
	ErrSingular = errors.New("canon: singular matrix")

	// ErrNilAction indicates that an Action with a nil A, B or C matrix
	// was passed to Apply.
	ErrNilAction = errors.New("canon: action matrix is nil")

	// ErrDimensionMismatch indicates that an action matrix is not N×N for
	// the N of the matricized factorization it is applied to.
	ErrDimensionMismatch = errors.New("canon: action dimension mismatch")
)
