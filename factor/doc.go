// Package factor defines the factorization value types shared by every
// bilinv computation and the matricization that turns flat vectors into
// square matrices.
//
// 🚀 What is a factorization here?
//
//	A rank-R factorization of a bilinear tensor: R ordered triples of
//	vectors (U_r, V_r, W_r), each of length S = N². Entries are expected
//	to be exact small integers ({-1,0,1} in practice) stored as float64.
//
// ✨ Key guarantees:
//   - Inputs are never mutated: Matricize allocates fresh matrices.
//   - Row-major reshape: vector index i·N+j lands at matrix cell (i,j).
//   - Strict fail-fast validation with sentinel errors (errors.Is friendly).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bilinv/factor"
//
//	f := factor.Factorization{
//	  {[]float64{1, 0, 0, 1}, []float64{1, 0, 0, 1}, []float64{1, 0, 0, 1}},
//	}
//	m, err := factor.Matricize(f) // [1][3] of 2×2 matrices
//
// Performance:
//
//   - Matricize: O(R·S) time, O(R·S) memory (one copy of the input).
//
// See invariant and canon for the computations built on these types.
package factor
