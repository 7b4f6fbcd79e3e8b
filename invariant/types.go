// Package invariant: canonical value types and options.
// This file contains ONLY value types (with their ordering and Key
// methods) and the Options struct; algorithms live in rank.go / kron.go.
package invariant

import (
	"sort"
	"strconv"
	"strings"
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultRankTol ≤ 0 selects the automatic numerical-rank tolerance
	// max(rows,cols) · ε · σ_max (the standard convention).
	DefaultRankTol = 0.0

	// DefaultCoeffTol is the maximum accepted deviation of a
	// characteristic-polynomial coefficient from the nearest integer.
	DefaultCoeffTol = 1e-6
)

// Options configures the numeric policy of both invariants.
//
// Fields:
//   - RankTol  — absolute singular-value cutoff for matrix rank.
//     ≤ 0 means automatic (norm-scaled, recommended).
//   - CoeffTol — integer-rounding diagnostic threshold for the Kronecker
//     invariant. ≤ 0 falls back to DefaultCoeffTol.
type Options struct {
	RankTol  float64
	CoeffTol float64
}

// DefaultOptions returns the recommended numeric policy.
func DefaultOptions() Options {
	return Options{RankTol: DefaultRankTol, CoeffTol: DefaultCoeffTol}
}

// coeffTol resolves the effective rounding threshold.
func (o Options) coeffTol() float64 {
	if o.CoeffTol > 0 {
		return o.CoeffTol
	}

	return DefaultCoeffTol
}

// RankTriple holds the three matrix ranks of one factor, sorted ascending
// so that role order (U,V,W) carries no information.
type RankTriple [3]int

// less orders triples lexicographically for the profile-level sort.
func (t RankTriple) less(u RankTriple) bool {
	for i := 0; i < len(t); i++ {
		if t[i] != u[i] {
			return t[i] < u[i]
		}
	}

	return false
}

// RankProfile is the rank invariant: R sorted RankTriples, themselves
// sorted lexicographically. Produced canonical by Rank; treat as
// immutable.
type RankProfile []RankTriple

// normalize sorts the profile in place at both nesting levels.
// Called once by Rank; kept separate so tests can exercise it directly.
func (p RankProfile) normalize() {
	for i := range p {
		if p[i][0] > p[i][1] {
			p[i][0], p[i][1] = p[i][1], p[i][0]
		}
		if p[i][1] > p[i][2] {
			p[i][1], p[i][2] = p[i][2], p[i][1]
		}
		if p[i][0] > p[i][1] {
			p[i][0], p[i][1] = p[i][1], p[i][0]
		}
	}
	sort.Slice(p, func(i, j int) bool { return p[i].less(p[j]) })
}

// Key renders the profile as a compact stable string, e.g.
// "1,2,2|2,2,2", suitable as a map key. Equal profiles ⇔ equal keys.
// Complexity: O(R).
func (p RankProfile) Key() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, r := range t {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(r))
		}
	}

	return b.String()
}

// CoeffVector is one spectral signature: the rounded integer coefficients
// of a degree-N³ characteristic polynomial, descending degree with
// leading coefficient 1 (length N³+1).
type CoeffVector []int64

// less orders coefficient vectors lexicographically (shorter first).
func (c CoeffVector) less(d CoeffVector) bool {
	for i := 0; i < len(c) && i < len(d); i++ {
		if c[i] != d[i] {
			return c[i] < d[i]
		}
	}

	return len(c) < len(d)
}

// key renders one vector as "1,-8,28,...".
func (c CoeffVector) key() string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(v, 10))
	}

	return b.String()
}

// SpectralSet is the Kronecker invariant: the deduplicated, sorted set of
// CoeffVectors occurring among the canonicalized factors. The EMPTY set
// is the shared "inapplicable" sentinel (Φ precondition not met); every
// applicable factorization yields at least one element.
type SpectralSet []CoeffVector

// Applicable reports whether Φ succeeded for the originating
// factorization (a non-sentinel value).
func (s SpectralSet) Applicable() bool { return len(s) > 0 }

// Key renders the set as "1,-8,...;1,0,..." with elements in canonical
// order; the sentinel renders as "". Equal sets ⇔ equal keys.
func (s SpectralSet) Key() string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(c.key())
	}

	return b.String()
}

// Signature is the combined invariant pair used for classification.
type Signature struct {
	Ranks   RankProfile
	Spectra SpectralSet
}

// Key joins both invariant keys; distinct keys ⇔ provably inequivalent
// factorizations (the converse does not hold — invariants are necessary,
// not sufficient).
func (sig Signature) Key() string {
	return sig.Ranks.Key() + "#" + sig.Spectra.Key()
}
