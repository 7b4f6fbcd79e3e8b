// Package canon implements the (A,B,C) group action on matricized
// factorizations and the canonicalizer Φ that normalizes the unique
// identity-composing factor to the triple (I,I,I).
//
// 🚀 Why a canonical form?
//
//	The array representation of a factorization is not unique: for any
//	invertible N×N matrices A, B, C the action
//
//	  (U_r, V_r, W_r) ↦ (A·U_r·B⁻¹, B·V_r·C⁻¹, C·W_r·A⁻¹)
//
//	leaves the encoded bilinear tensor unchanged. Spectral signatures of
//	the factors are therefore only comparable after picking one orbit
//	representative. Φ does exactly that along one axis of the orbit.
//
// ✨ How Φ picks the representative:
//  1. Find every r with U_r·V_r·W_r = I exactly (element-wise, no
//     tolerance — inputs are exact small integers).
//  2. If the count is not exactly 1, Φ is inapplicable (a value, not an
//     error): no canonical form exists or the choice is ambiguous.
//  3. Otherwise take A = I, C = (W*)⁻¹, B = C·(V*)⁻¹ — the unique choice
//     (given A = I) sending the distinguished triple to (I,I,I) — and
//     apply the action to every triple.
//
// ⚙️ Usage:
//
//	m, _ := factor.Matricize(f)
//	cm, ok, err := canon.Canonicalize(m)
//	if err != nil { ... }          // canon.ErrSingular: data-integrity defect
//	if !ok { ... }                 // inapplicable: no unique identity factor
//
// Performance:
//
//   - IdentityTriples: O(R·N³) time.
//   - Canonicalize/Apply: O(R·N³) time, O(R·N²) memory (fresh output).
//
// The exact-equality identity check is a documented faithfulness choice:
// with floating-point-noisy inputs it would need a tolerance, but a
// tolerance on exact integer data could merge distinct classes.
package canon
