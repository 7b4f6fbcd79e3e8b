// Package bilinv classifies tensor factorizations of bilinear maps
// (matrix-multiplication-style algorithms) into equivalence classes by
// computing invariants of the (A,B,C) group action.
//
// 🚀 What is bilinv?
//
//	A small, deterministic library that answers one question: given many
//	rank-R factorizations of the same bilinear tensor, how many of them
//	are genuinely different? It brings together:
//		• Matricization: flat [R,3,S] factorizations → triples of N×N matrices
//		• Rank invariant: multiset of per-factor matrix-rank triples
//		• Canonicalizer Φ: normalize the unique identity-composing factor to (I,I,I)
//		• Kronecker invariant: characteristic-polynomial signatures of U⊗V⊗W
//		• Batch classifier: parallel driver that counts distinct classes
//
// ✨ Why choose bilinv?
//
//   - Deterministic – sorted canonical values, no randomness, no global state
//   - Honest numerics – norm-scaled rank tolerances, integer-rounding diagnostics
//   - Pure functions – immutable inputs, fresh outputs, sentinel errors only
//
// Under the hood, everything is organized in small focused packages:
//
//	factor/    — factorization value types, validation & matricization
//	canon/     — the (A,B,C) action and the Φ canonical form
//	invariant/ — the rank (R) and Kronecker spectral (K) invariants
//	classify/  — batch driver: worker pool, per-item errors, class counts
//	cmd/bilinv — thin CLI around classify (JSON in, class summary out)
//
// Quick sketch, for N=2 and a single factor with U=V=W=I:
//
//	[[1 0]   [[1 0]   [[1 0]        rank triple (2,2,2)
//	 [0 1]] · [0 1]] · [0 1]]  ⇒    charpoly of I₈ = (x−1)⁸
//
// Two factorizations related by any invertible (A,B,C) share both
// invariants; differing invariants prove inequivalence.
//
//	go get github.com/katalvlaran/bilinv
package bilinv
