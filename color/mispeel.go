package color

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
	"github.com/katalvlaran/amgkernels/mis"
)

// MISPeel colors every vertex by repeatedly carving a maximal independent
// set out of the uncolored remainder: round k picks an MIS among vertices
// still uncolored, assigns them color k, and moves on. Sentinels are
// shifted per round (active=-1-k, excluded=-2-k) so a round's bookkeeping
// never collides with colors already assigned by earlier rounds.
//
// Returns the number of colors used (the final K).
// Complexity: O((V+E) * K) where K is the returned color count.
func MISPeel[I csr.Signed](g *csr.Graph[I], x []I) (I, error) {
	if I(len(x)) != g.N {
		return 0, fmt.Errorf("color.MISPeel: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}

	for i := range x {
		x[i] = Uncolored
	}

	k := I(0)
	for {
		active := -1 - k
		excluded := -2 - k

		for i := range x {
			if x[i] == Uncolored {
				x[i] = active
			}
		}

		if _, err := mis.Serial(g, active, excluded, k, x); err != nil {
			return 0, err
		}

		remaining := false
		for i := range x {
			if x[i] == excluded {
				x[i] = Uncolored
				remaining = true
			}
		}

		k++
		if !remaining {
			return k, nil
		}
	}
}
