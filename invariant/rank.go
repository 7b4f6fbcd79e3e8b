// Package invariant: the rank invariant (R).

package invariant

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bilinv/factor"
)

// Rank computes the rank invariant of a factorization: for every factor r
// the sorted triple of matrix ranks of (U_r, V_r, W_r), all R triples
// sorted lexicographically.
//
// Invariance: matrix rank is unchanged by multiplication with invertible
// matrices, so the (A,B,C) action preserves every individual rank; the
// two-level sort then removes the remaining representational freedom
// (factor reordering and role permutation within a triple).
//
// Edge cases: a zero matrix has rank 0 — a valid value, not an error.
//
// Errors: factor shape sentinels from Matricize; ErrSVDFailed on a
// non-converging decomposition (defensive).
//
// Complexity: O(R·N³) time, O(R·N²) space.
func Rank(f factor.Factorization, opts Options) (RankProfile, error) {
	m, err := factor.Matricize(f)
	if err != nil {
		return nil, err
	}

	profile := make(RankProfile, len(m))
	for r, t := range m {
		for role := factor.RoleU; role < factor.RoleCount; role++ {
			rank, rerr := matrixRank(t[role], opts.RankTol)
			if rerr != nil {
				return nil, rerr
			}
			profile[r][role] = rank
		}
	}
	profile.normalize()

	return profile, nil
}

// matrixRank counts the singular values of a above tol. When tol ≤ 0 the
// cutoff is max(rows,cols)·ε·σ_max, the standard numerical-rank
// convention: it scales with the matrix norm, so exact-integer inputs
// with moderate entries are classified robustly.
//
// Complexity: O(N³).
func matrixRank(a *mat.Dense, tol float64) (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, ErrSVDFailed
	}
	vals := svd.Values(nil)

	if tol <= 0 {
		rows, cols := a.Dims()
		dim := rows
		if cols > dim {
			dim = cols
		}
		// Values are sorted descending; vals[0] is σ_max. A zero matrix
		// yields tol = 0 and rank 0 (strict > below).
		eps := math.Nextafter(1, 2) - 1
		tol = float64(dim) * eps * vals[0]
	}

	rank := 0
	for _, s := range vals {
		if s > tol {
			rank++
		}
	}

	return rank, nil
}
