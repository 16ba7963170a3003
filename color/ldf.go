package color

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
	"github.com/katalvlaran/amgkernels/mis"
)

// LDF (Largest-Degree-First) colors with the same per-color Luby-round loop
// as JonesPlassmann, but recomputes priorities every round: weight[i] = y[i]
// plus the number of still-uncolored neighbors of i. This biases promotion
// toward vertices whose neighborhoods are most contested, the way a
// largest-degree-first ordering would, without a static precomputed degree.
//
// Complexity: O((V+E) * K).
func LDF[I csr.Signed, W csr.Float](g *csr.Graph[I], x []I, y []W) (I, error) {
	if I(len(x)) != g.N {
		return 0, fmt.Errorf("color.LDF: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}
	if I(len(y)) != g.N {
		return 0, fmt.Errorf("color.LDF: len(y)=%d want %v: %w", len(y), g.N, ErrSizeMismatch)
	}

	for i := range x {
		x[i] = Uncolored
	}
	weights := make([]W, g.N)

	k := I(0)
	for {
		for i := I(0); i < g.N; i++ {
			if x[i] != Uncolored {
				continue
			}
			var uncoloredNeighbors W
			for _, j := range g.Row(i) {
				if j != i && x[j] == Uncolored {
					uncoloredNeighbors++
				}
			}
			weights[i] = y[i] + uncoloredNeighbors
		}

		if _, err := mis.Parallel(g, Uncolored, reverting, k, x, weights, 1); err != nil {
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
