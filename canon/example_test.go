package canon_test

import (
	"fmt"

	"github.com/katalvlaran/bilinv/canon"
	"github.com/katalvlaran/bilinv/factor"
)

// ExampleCanonicalize normalizes a factorization whose only
// identity-composing triple is non-trivial: U = [1 1;0 1], V = I,
// W = U⁻¹. Φ sends that triple to exactly (I,I,I).
//
// Complexity: O(R·N³).
func ExampleCanonicalize() {
	f := factor.Factorization{
		{
			[]float64{1, 1, 0, 1},
			[]float64{1, 0, 0, 1},
			[]float64{1, -1, 0, 1},
		},
	}

	m, err := factor.Matricize(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	cm, ok, err := canon.Canonicalize(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	if !ok {
		fmt.Println("inapplicable")

		return
	}

	u := cm[0][factor.RoleU]
	fmt.Printf("U* = [%g %g; %g %g]\n", u.At(0, 0), u.At(0, 1), u.At(1, 0), u.At(1, 1))
	// Output:
	// U* = [1 0; 0 1]
}
