// Package canon: the canonicalizer Φ.

package canon

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bilinv/factor"
)

// IdentityTriples returns the indices r for which U_r·V_r·W_r equals the
// N×N identity matrix exactly.
//
// The comparison is element-wise equality with NO tolerance: the intended
// inputs are exact small integers, where float64 products are exact, and a
// tolerance could merge genuinely distinct factorizations. Callers with
// noisy inputs must pre-quantize.
//
// Complexity: O(R·N³) time, O(N²) space.
func IdentityTriples(m factor.Matricized) []int {
	n := m.Dim()
	id := factor.Identity(n)

	var (
		hits []int
		uv   mat.Dense
		uvw  mat.Dense
	)
	for r, t := range m {
		uv.Mul(t[factor.RoleU], t[factor.RoleV])
		uvw.Mul(&uv, t[factor.RoleW])
		if mat.Equal(&uvw, id) {
			hits = append(hits, r)
		}
		uv.Reset()
		uvw.Reset()
	}

	return hits
}

// Canonicalize applies Φ to a matricized factorization.
//
// Stages:
//  1. Locate identity-composing triples (IdentityTriples).
//  2. Count ≠ 1 ⇒ inapplicable: return (nil, false, nil). This is a
//     named expected outcome, not an error — all inapplicable inputs are
//     indistinguishable downstream by design.
//  3. Count = 1 ⇒ derive A = I, C = (W*)⁻¹, B = C·(V*)⁻¹ from the
//     distinguished triple (U*,V*,W*) and Apply the action everywhere.
//
// The choices in stage 3 are forced (up to A = I) by requiring the action
// to send (U*,V*,W*) to (I,I,I): since U*·V*·W* = I,
// A·U*·B⁻¹ = U*·(V*·W*) = I, B·V*·C⁻¹ = (W*)⁻¹·(V*)⁻¹·V*·W* = I, and
// C·W*·A⁻¹ = (W*)⁻¹·W* = I.
//
// Returns:
//   - factor.Matricized: canonical representative; its r*-th triple is
//     exactly (I,I,I) up to float rounding in the inverse products.
//   - bool: false when Φ is inapplicable (zero or ≥2 identity triples).
//   - error: ErrSingular if V* or W* is not invertible (data defect).
//
// Complexity: O(R·N³) time, O(R·N²) space.
func Canonicalize(m factor.Matricized) (factor.Matricized, bool, error) {
	hits := IdentityTriples(m)
	if len(hits) != 1 {
		return nil, false, nil
	}

	star := m[hits[0]]
	cMat, err := invert(star[factor.RoleW])
	if err != nil {
		return nil, false, fmt.Errorf("Canonicalize: W*: %w", err)
	}
	vInv, err := invert(star[factor.RoleV])
	if err != nil {
		return nil, false, fmt.Errorf("Canonicalize: V*: %w", err)
	}

	var bMat mat.Dense
	bMat.Mul(cMat, vInv)

	n := m.Dim()
	out, err := Apply(m, Action{A: factor.Identity(n), B: &bMat, C: cMat})
	if err != nil {
		return nil, false, fmt.Errorf("Canonicalize: %w", err)
	}

	return out, true, nil
}
