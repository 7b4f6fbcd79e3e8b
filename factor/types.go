// Package factor: domain types shared by the invariant computations.
// This file intentionally contains ONLY value types; validation lives in
// matricize.go and errors in errors.go per the package conventions.
package factor

import "gonum.org/v1/gonum/mat"

// Role indexes the three slots of a triple: U, V, W.
// The order is fixed by the bilinear-map convention U·V·W.
type Role int

const (
	// RoleU is the first slot of a triple.
	RoleU Role = iota
	// RoleV is the second slot of a triple.
	RoleV
	// RoleW is the third slot of a triple.
	RoleW

	// RoleCount is the number of roles per triple; the [3] array types
	// below enforce it structurally.
	RoleCount = 3
)

// Triple is one rank-1 factor: the (U, V, W) vectors, each of length S = N².
// Treated as read-only input everywhere in this module.
type Triple [RoleCount][]float64

// Factorization is an ordered sequence of R triples describing one
// candidate factorization of the fixed bilinear tensor.
//
// Invariants (checked by Validate):
//   - R = len(f) ≥ 1
//   - every vector of every triple has the same length S
//   - S is a perfect square (checked by Dim/Matricize, not Validate)
type Factorization []Triple

// Rank returns R, the number of rank-1 triples.
// Complexity: O(1).
func (f Factorization) Rank() int { return len(f) }

// MatTriple is the matricized form of one Triple: three N×N matrices.
type MatTriple [RoleCount]*mat.Dense

// Matricized is the [R,3,N,N] view of a Factorization produced by
// Matricize. It owns its matrices; mutating them never touches the source
// Factorization.
type Matricized []MatTriple

// Dim returns N, the side length of the square matrices, derived from the
// first triple's U vector. Valid only on values produced by Matricize.
// Complexity: O(1).
func (m Matricized) Dim() int {
	if len(m) == 0 {
		return 0
	}
	r, _ := m[0][RoleU].Dims()

	return r
}
