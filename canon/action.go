// Package canon: the (A,B,C) action as a pure transform.
//
// Design notes:
//   - The action is a symmetry of the underlying bilinear map, not of the
//     array representation; it is modeled as a pure function over triples
//     of square matrices, parameterized by three invertible matrices.
//     There is no mutable shared state anywhere in this file.
//   - Inverses are computed once per Apply call, not per triple.

package canon

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bilinv/factor"
)

// Action carries the three invertible N×N matrices parameterizing one
// element of the symmetry group. The zero value is invalid; construct all
// three matrices explicitly.
type Action struct {
	A *mat.Dense
	B *mat.Dense
	C *mat.Dense
}

// IdentityAction returns the neutral element for dimension n.
// Complexity: O(N²).
func IdentityAction(n int) Action {
	return Action{
		A: factor.Identity(n),
		B: factor.Identity(n),
		C: factor.Identity(n),
	}
}

// validate checks that all three matrices are present, square, and match
// dimension n. Returns plain sentinels; callers wrap with an op tag.
func (act Action) validate(n int) error {
	for _, a := range []*mat.Dense{act.A, act.B, act.C} {
		if a == nil {
			return ErrNilAction
		}
		r, c := a.Dims()
		if r != c || r != n {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// Apply transforms every triple of m by the action:
//
//	(U_r, V_r, W_r) ↦ (A·U_r·B⁻¹, B·V_r·C⁻¹, C·W_r·A⁻¹)
//
// The encoded bilinear tensor is unchanged by construction; only the
// representation moves along its orbit.
//
// Behavior highlights:
//   - Pure: m is never mutated; the result owns fresh matrices.
//   - Deterministic: fixed r order, inverses computed once up front.
//
// Errors:
//   - ErrNilAction / ErrDimensionMismatch on malformed actions.
//   - ErrSingular if A, B or C is not invertible.
//
// Complexity: O(R·N³) time, O(R·N²) space.
func Apply(m factor.Matricized, act Action) (factor.Matricized, error) {
	n := m.Dim()
	if err := act.validate(n); err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	aInv, err := invert(act.A)
	if err != nil {
		return nil, fmt.Errorf("Apply: A: %w", err)
	}
	bInv, err := invert(act.B)
	if err != nil {
		return nil, fmt.Errorf("Apply: B: %w", err)
	}
	cInv, err := invert(act.C)
	if err != nil {
		return nil, fmt.Errorf("Apply: C: %w", err)
	}

	out := make(factor.Matricized, len(m))
	for r, t := range m {
		out[r][factor.RoleU] = mulPair(act.A, t[factor.RoleU], bInv)
		out[r][factor.RoleV] = mulPair(act.B, t[factor.RoleV], cInv)
		out[r][factor.RoleW] = mulPair(act.C, t[factor.RoleW], aInv)
	}

	return out, nil
}

// invert returns the inverse of a or ErrSingular. Any failure from the LU
// path (exact zero pivot or hopeless conditioning) maps to the same
// sentinel: in the exact-integer input domain both mean broken data.
func invert(a *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		return nil, ErrSingular
	}

	return &inv, nil
}

// mulPair computes l·x·r into a fresh matrix. Fixed association (l·x)·r.
func mulPair(l, x, r *mat.Dense) *mat.Dense {
	var lx, out mat.Dense
	lx.Mul(l, x)
	out.Mul(&lx, r)

	return &out
}
