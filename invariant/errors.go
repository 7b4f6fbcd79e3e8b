// Package invariant: sentinel error set.
// Matched via errors.Is; optionally wrapped with op context at facades.

package invariant

import "errors"

var (
	// ErrSVDFailed indicates that the singular value decomposition used
	// for numerical rank did not converge. Practically unreachable for
	// the small exact-integer matrices this package targets.
	ErrSVDFailed = errors.New("invariant: singular value decomposition failed")

	// ErrCoeffNotIntegral is returned when a characteristic-polynomial
	// coefficient deviates from the nearest integer by more than
	// Options.CoeffTol. It means the exact-small-integer input assumption
	// was violated; rounding anyway could fabricate equivalences.
	ErrCoeffNotIntegral = errors.New("invariant: characteristic polynomial coefficient is not integral")
)
