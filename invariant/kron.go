// Package invariant: the Kronecker spectral invariant (K).
//
// Implementation notes:
//   - The characteristic polynomial is computed with the Faddeev–LeVerrier
//     trace recurrence rather than from eigenvalues: for exact-integer
//     inputs it stays exact up to float64 rounding, whereas rebuilding a
//     polynomial from complex eigenvalue approximations reintroduces the
//     noise the integer rounding is meant to absorb.
//   - Duplicate signatures collapse: the invariant records WHICH spectra
//     occur, not how often.

package invariant

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bilinv/canon"
	"github.com/katalvlaran/bilinv/factor"
)

// Kronecker computes the spectral invariant of a factorization.
//
// Stages:
//  1. Matricize, then Φ-canonicalize (canon.Canonicalize).
//  2. Φ inapplicable ⇒ return the empty SpectralSet sentinel and nil
//     error: all such factorizations share one indistinguishable bucket
//     (a deliberate lossy fallback, not a failure).
//  3. For every canonicalized triple — the identity triple included, it
//     contributes the constant (x−1)^(N³) signature — build U_r⊗V_r⊗W_r
//     (N³×N³), take its characteristic polynomial, round the
//     coefficients to int64, and collect the tuples as a sorted
//     deduplicated set.
//
// Errors:
//   - factor shape sentinels from Matricize.
//   - canon.ErrSingular from a defective canonicalization.
//   - ErrCoeffNotIntegral when a coefficient strays from the nearest
//     integer by more than Options.CoeffTol.
//
// Complexity: O(R·N⁹) time, O(N⁶) space (one Kronecker product at a time).
func Kronecker(f factor.Factorization, opts Options) (SpectralSet, error) {
	m, err := factor.Matricize(f)
	if err != nil {
		return nil, err
	}

	cm, ok, err := canon.Canonicalize(m)
	if err != nil {
		return nil, err
	}
	if !ok {
		return SpectralSet{}, nil
	}

	tol := opts.coeffTol()
	seen := make(map[string]struct{}, len(cm))
	set := make(SpectralSet, 0, len(cm))
	for _, t := range cm {
		k := kron3(t[factor.RoleU], t[factor.RoleV], t[factor.RoleW])
		coeffs, cerr := roundCoeffs(charPoly(k), tol)
		if cerr != nil {
			return nil, cerr
		}
		if _, dup := seen[coeffs.key()]; dup {
			continue
		}
		seen[coeffs.key()] = struct{}{}
		set = append(set, coeffs)
	}
	sort.Slice(set, func(i, j int) bool { return set[i].less(set[j]) })

	return set, nil
}

// Compute evaluates both invariants and returns the combined signature.
// A convenience facade over Rank and Kronecker with shared options.
func Compute(f factor.Factorization, opts Options) (Signature, error) {
	ranks, err := Rank(f, opts)
	if err != nil {
		return Signature{}, fmt.Errorf("Compute: %w", err)
	}
	spectra, err := Kronecker(f, opts)
	if err != nil {
		return Signature{}, fmt.Errorf("Compute: %w", err)
	}

	return Signature{Ranks: ranks, Spectra: spectra}, nil
}

// kron3 builds U⊗V⊗W with fixed association (U⊗V)⊗W.
// Complexity: O(N⁶) time and space for the final N³×N³ matrix.
func kron3(u, v, w *mat.Dense) *mat.Dense {
	var uv, uvw mat.Dense
	uv.Kronecker(u, v)
	uvw.Kronecker(&uv, w)

	return &uvw
}

// charPoly returns the characteristic polynomial det(xI − A) of a square
// matrix as float64 coefficients in descending degree (leading 1 first,
// length n+1), via the Faddeev–LeVerrier recurrence:
//
//	N₁ = A,            c₁ = −tr(N₁)
//	Nₖ = A·(Nₖ₋₁ + cₖ₋₁·I),  cₖ = −tr(Nₖ)/k
//
// Deterministic: fixed k order, no pivoting, no randomness.
// Complexity: O(n⁴) time, O(n²) space.
func charPoly(a *mat.Dense) []float64 {
	n, _ := a.Dims()
	coeffs := make([]float64, n+1)
	coeffs[0] = 1

	nk := mat.DenseCopyOf(a)
	coeffs[1] = -mat.Trace(nk)
	for k := 2; k <= n; k++ {
		for i := 0; i < n; i++ {
			nk.Set(i, i, nk.At(i, i)+coeffs[k-1])
		}
		var next mat.Dense
		next.Mul(a, nk)
		nk = &next
		coeffs[k] = -mat.Trace(nk) / float64(k)
	}

	return coeffs
}

// roundCoeffs quantizes charpoly coefficients to int64, rejecting any
// coefficient further than tol from its nearest integer.
func roundCoeffs(coeffs []float64, tol float64) (CoeffVector, error) {
	out := make(CoeffVector, len(coeffs))
	for i, c := range coeffs {
		r := math.Round(c)
		if math.Abs(c-r) > tol {
			return nil, fmt.Errorf("coefficient %d deviates by %.3e: %w",
				i, math.Abs(c-r), ErrCoeffNotIntegral)
		}
		out[i] = int64(r)
	}

	return out, nil
}
