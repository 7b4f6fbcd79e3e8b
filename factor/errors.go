// Package factor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// factor package. All functions MUST return these sentinels and tests MUST
// check them via errors.Is. No function panics on user-triggered error
// conditions.

package factor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "factor: ..." for consistency and easy
// grepping. Do not %w wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers will still use errors.Is to match.

var (
	// ErrEmptyFactorization is returned when a factorization has no triples.
	// The invariants are defined only for R ≥ 1.
	ErrEmptyFactorization = errors.New("factor: factorization has no triples")

	// ErrRaggedTriple indicates that the three vectors of a triple (or of
	// different triples) do not all share the same length S.
	ErrRaggedTriple = errors.New("factor: triple vectors have mismatched lengths")

	// ErrNotSquare signals that the vector length S is not a perfect square,
	// so no N×N matricization exists.
	ErrNotSquare = errors.New("factor: vector length is not a perfect square")
)
