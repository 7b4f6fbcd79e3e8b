// Package factor: validation and matricization.
//
// Purpose:
//   - Provide a single, canonical source of truth for shape checks.
//   - Keep the invariant packages minimal by delegating validation here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly.
//
// Determinism & Performance:
//   - All functions are pure and deterministic.
//   - Validate runs O(R) over triple headers; Matricize copies O(R·S).
package factor

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Validate checks the structural contract of a Factorization and returns
// the shared vector length S.
//
// Contract:
//   - f must contain at least one triple (ErrEmptyFactorization).
//   - every vector of every triple must have the same length S
//     (ErrRaggedTriple). S itself may be any positive value here;
//     squareness is Dim's concern.
//
// Complexity: O(R) time, O(1) space.
func Validate(f Factorization) (int, error) {
	if len(f) == 0 {
		return 0, ErrEmptyFactorization
	}

	// The first U vector fixes S; every other vector must agree.
	span := len(f[0][RoleU])
	if span == 0 {
		return 0, ErrRaggedTriple
	}
	for _, t := range f {
		for role := RoleU; role < RoleCount; role++ {
			if len(t[role]) != span {
				return 0, ErrRaggedTriple
			}
		}
	}

	return span, nil
}

// Dim computes N = √S for a perfect-square span, or ErrNotSquare.
//
// The float square root is verified by exact integer multiplication, so
// values like S=10⁶+1 cannot slip through on rounding.
//
// Complexity: O(1).
func Dim(span int) (int, error) {
	if span <= 0 {
		return 0, ErrNotSquare
	}
	n := int(math.Round(math.Sqrt(float64(span))))
	if n*n != span {
		return 0, ErrNotSquare
	}

	return n, nil
}

// Matricize reshapes a Factorization of shape [R,3,S] into the [R,3,N,N]
// Matricized form, laying each length-S vector out row-major into an N×N
// matrix (vector index i·N+j → cell (i,j)).
//
// Behavior highlights:
//   - Pure: f is never mutated; every matrix is a fresh copy of its vector.
//   - Deterministic: fixed r→role order, no data-dependent branches.
//
// Errors:
//   - ErrEmptyFactorization, ErrRaggedTriple (from Validate).
//   - ErrNotSquare (from Dim).
//
// Complexity: O(R·S) time, O(R·S) space.
func Matricize(f Factorization) (Matricized, error) {
	span, err := Validate(f)
	if err != nil {
		return nil, err
	}
	n, err := Dim(span)
	if err != nil {
		return nil, err
	}

	out := make(Matricized, len(f))
	for r, t := range f {
		for role := RoleU; role < RoleCount; role++ {
			// NewDense aliases the backing slice, so copy first: the
			// caller's vectors stay immutable.
			data := make([]float64, span)
			copy(data, t[role])
			out[r][role] = mat.NewDense(n, n, data)
		}
	}

	return out, nil
}

// Identity returns a fresh N×N identity matrix.
// Complexity: O(N²).
func Identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id
}
