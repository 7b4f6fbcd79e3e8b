// Package invariant computes the two equivalence-class invariants of a
// factorization: the rank invariant (R) and the Kronecker spectral
// invariant (K).
//
// 🚀 What do the invariants mean?
//
//	Two factorizations of the same bilinear tensor are equivalent when an
//	invertible (A,B,C) action maps one onto the other. Both invariants
//	are constant along such orbits, so differing values prove
//	inequivalence:
//	  • Rank: the multiset of sorted per-factor matrix-rank triples.
//	    Ranks survive any invertible multiplication, and the two-level
//	    sort removes factor-order and role-order freedom.
//	  • Kronecker: after Φ-canonicalization, the set of integer
//	    characteristic-polynomial coefficient tuples of U_r⊗V_r⊗W_r.
//	    Conjugation-invariant spectra become comparable once Φ has fixed
//	    the orbit representative.
//
// ✨ Canonical value types:
//   - Every result is sorted at each nesting level and exposed through a
//     Key() string, so values are directly usable as map keys. No
//     floating-point value ever reaches an equality-based container:
//     ranks are integers, coefficients are rounded to int64 first.
//   - The empty SpectralSet is the shared "inapplicable" sentinel: all
//     factorizations without a unique identity-composing factor collapse
//     into one bucket by design.
//
// ⚙️ Usage:
//
//	opts := invariant.DefaultOptions()
//	sig, err := invariant.Compute(f, opts)
//	if err != nil { ... }
//	classes[sig.Key()] = append(classes[sig.Key()], idx)
//
// Performance (R triples, N×N matrices, M = N³):
//
//   - Rank: O(R·N³) via one SVD per matrix.
//   - Kronecker: O(R·M³) = O(R·N⁹) dominated by the Faddeev–LeVerrier
//     recurrence on the M×M Kronecker products. Fine for the small N
//     (2–4) this library targets.
//
// Numeric policy: rank tolerance scales with max(dim)·ε·σ_max unless
// overridden; characteristic-polynomial coefficients must sit within
// CoeffTol of an integer or ErrCoeffNotIntegral is returned — silently
// rounding garbage would fabricate equivalences.
package invariant
