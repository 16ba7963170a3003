package color

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
	"github.com/katalvlaran/amgkernels/mis"
)

// JonesPlassmann colors by running exactly one Luby round per color: z is a
// caller-supplied priority (expected to carry a random fractional part) to
// which this function adds each vertex's degree as a tie-break before the
// first round. Each round's winners take the round's color directly; losers
// revert to uncolored and retry at the next color.
//
// Returns the highest color actually assigned (not necessarily the round
// count, since first-fit may lower some vertices below their round's
// color).
// Complexity: O((V+E) * K).
func JonesPlassmann[I csr.Signed, W csr.Float](g *csr.Graph[I], x []I, z []W) (I, error) {
	if I(len(x)) != g.N {
		return 0, fmt.Errorf("color.JonesPlassmann: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}
	if I(len(z)) != g.N {
		return 0, fmt.Errorf("color.JonesPlassmann: len(z)=%d want %v: %w", len(z), g.N, ErrSizeMismatch)
	}

	for i := range x {
		x[i] = Uncolored
	}
	for i := I(0); i < g.N; i++ {
		z[i] += W(g.Degree(i))
	}

	k := I(0)
	for {
		if _, err := mis.Parallel(g, Uncolored, reverting, k, x, z, 1); err != nil {
			return 0, err
		}
		for i := range x {
			if x[i] == reverting {
				x[i] = Uncolored
			}
		}
		if err := FirstFit(g, x, k); err != nil {
			return 0, err
		}
		k++

		if allColored(x) {
			return maxColor(x), nil
		}
	}
}

func allColored[I csr.Signed](x []I) bool {
	for _, c := range x {
		if c < 0 {
			return false
		}
	}
	return true
}

func maxColor[I csr.Signed](x []I) I {
	max := I(-1)
	for _, c := range x {
		if c > max {
			max = c
		}
	}
	return max
}
