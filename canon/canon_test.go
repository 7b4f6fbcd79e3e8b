package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bilinv/canon"
	"github.com/katalvlaran/bilinv/factor"
)

// identityVec is I₂ flattened row-major.
func identityVec() []float64 { return []float64{1, 0, 0, 1} }

// tripleOf builds a triple from three flat vectors.
func tripleOf(u, v, w []float64) factor.Triple {
	return factor.Triple{u, v, w}
}

// matricize is a require-wrapped factor.Matricize.
func matricize(t *testing.T, f factor.Factorization) factor.Matricized {
	t.Helper()
	m, err := factor.Matricize(f)
	require.NoError(t, err)

	return m
}

// TestIdentityTriples_Single finds exactly the identity-composing triple.
func TestIdentityTriples_Single(t *testing.T) {
	f := factor.Factorization{
		// U·V·W = [2 0;0 2] ≠ I
		tripleOf([]float64{2, 0, 0, 2}, identityVec(), identityVec()),
		// U·V·W = I
		tripleOf(identityVec(), identityVec(), identityVec()),
	}

	hits := canon.IdentityTriples(matricize(t, f))
	assert.Equal(t, []int{1}, hits, "only the second triple composes to I")
}

// TestIdentityTriples_Inverse recognizes U·V·W = I for non-trivial
// factors: U = [1 1;0 1], V = I, W = U⁻¹ = [1 -1;0 1].
func TestIdentityTriples_Inverse(t *testing.T) {
	f := factor.Factorization{
		tripleOf([]float64{1, 1, 0, 1}, identityVec(), []float64{1, -1, 0, 1}),
	}

	hits := canon.IdentityTriples(matricize(t, f))
	assert.Equal(t, []int{0}, hits)
}

// TestCanonicalize_Inapplicable covers both failure modes of Φ's
// structural precondition: zero identity triples and two of them.
func TestCanonicalize_Inapplicable(t *testing.T) {
	none := factor.Factorization{
		tripleOf([]float64{2, 0, 0, 2}, identityVec(), identityVec()),
	}
	out, ok, err := canon.Canonicalize(matricize(t, none))
	require.NoError(t, err, "inapplicable is not an error")
	assert.False(t, ok)
	assert.Nil(t, out)

	two := factor.Factorization{
		tripleOf(identityVec(), identityVec(), identityVec()),
		tripleOf(identityVec(), identityVec(), identityVec()),
	}
	out, ok, err = canon.Canonicalize(matricize(t, two))
	require.NoError(t, err)
	assert.False(t, ok, "two identity triples are ambiguous")
	assert.Nil(t, out)
}

// TestCanonicalize_NormalizesStar verifies that the distinguished triple
// of the canonical form is exactly (I,I,I) for a scrambled input.
func TestCanonicalize_NormalizesStar(t *testing.T) {
	// Start from (I,I,I) plus a filler triple, then scramble everything
	// with a non-identity action so the identity triple is no longer
	// literally (I,I,I) — only its composition is I.
	f := factor.Factorization{
		tripleOf(identityVec(), identityVec(), identityVec()),
		tripleOf([]float64{1, 1, 0, 0}, []float64{0, 1, 1, 0}, []float64{1, 0, 1, 1}),
	}
	m := matricize(t, f)

	act := canon.Action{
		A: mat.NewDense(2, 2, []float64{1, 1, 0, 1}),
		B: mat.NewDense(2, 2, []float64{2, 0, 0, 1}),
		C: mat.NewDense(2, 2, []float64{1, 0, 1, 1}),
	}
	scrambled, err := canon.Apply(m, act)
	require.NoError(t, err)

	// The action preserves the composition U·V·W per triple index 0.
	hits := canon.IdentityTriples(scrambled)
	require.Equal(t, []int{0}, hits, "action must keep exactly one identity triple")

	cm, ok, err := canon.Canonicalize(scrambled)
	require.NoError(t, err)
	require.True(t, ok)

	id := factor.Identity(2)
	for role := factor.RoleU; role < factor.RoleCount; role++ {
		assert.True(t, mat.EqualApprox(cm[0][role], id, 1e-12),
			"canonical star triple role %d must be I", role)
	}
}

// TestApply_RoundTrip checks that applying an action and then its inverse
// action restores the original matricized factorization.
func TestApply_RoundTrip(t *testing.T) {
	f := factor.Factorization{
		tripleOf([]float64{1, 2, 3, 4}, []float64{0, 1, 1, 0}, []float64{1, 0, 1, 1}),
	}
	m := matricize(t, f)

	a := mat.NewDense(2, 2, []float64{1, 1, 0, 1})
	b := mat.NewDense(2, 2, []float64{0, 1, 1, 0})
	c := mat.NewDense(2, 2, []float64{2, 0, 0, 1})

	fwd, err := canon.Apply(m, canon.Action{A: a, B: b, C: c})
	require.NoError(t, err)

	var aInv, bInv, cInv mat.Dense
	require.NoError(t, aInv.Inverse(a))
	require.NoError(t, bInv.Inverse(b))
	require.NoError(t, cInv.Inverse(c))

	back, err := canon.Apply(fwd, canon.Action{A: &aInv, B: &bInv, C: &cInv})
	require.NoError(t, err)

	for role := factor.RoleU; role < factor.RoleCount; role++ {
		assert.True(t, mat.EqualApprox(back[0][role], m[0][role], 1e-12),
			"round-trip must restore role %d", role)
	}
}

// TestApply_SingularAction maps non-invertible parameters to ErrSingular.
func TestApply_SingularAction(t *testing.T) {
	m := matricize(t, factor.Factorization{
		tripleOf(identityVec(), identityVec(), identityVec()),
	})

	singular := mat.NewDense(2, 2, []float64{1, 1, 1, 1})
	_, err := canon.Apply(m, canon.Action{
		A: singular,
		B: factor.Identity(2),
		C: factor.Identity(2),
	})
	assert.ErrorIs(t, err, canon.ErrSingular)
}

// TestApply_BadAction covers nil and mis-dimensioned action matrices.
func TestApply_BadAction(t *testing.T) {
	m := matricize(t, factor.Factorization{
		tripleOf(identityVec(), identityVec(), identityVec()),
	})

	_, err := canon.Apply(m, canon.Action{A: factor.Identity(2), B: factor.Identity(2)})
	assert.ErrorIs(t, err, canon.ErrNilAction, "nil C must error")

	_, err = canon.Apply(m, canon.Action{
		A: factor.Identity(3),
		B: factor.Identity(2),
		C: factor.Identity(2),
	})
	assert.ErrorIs(t, err, canon.ErrDimensionMismatch, "3×3 A on N=2 must error")
}

// TestCanonicalize_SingularStar: an identity-composing triple forces V*
// and W* invertible, so ErrSingular from Canonicalize requires inputs
// that lie about their composition. We simulate the defensive path via
// Apply instead (covered above) and here assert the honest-path absence:
// a well-formed star never errors.
func TestCanonicalize_SingularStar(t *testing.T) {
	m := matricize(t, factor.Factorization{
		tripleOf(identityVec(), identityVec(), identityVec()),
	})
	_, ok, err := canon.Canonicalize(m)
	assert.NoError(t, err)
	assert.True(t, ok)
}
