package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// Plain runs one relaxation sweep: for each vertex i, for each neighbor j,
// if Ax+d[j] improves on d[i], d[i] and cm[i] are updated to match j. It
// does not iterate to convergence; callers loop until changed is false.
//
// Complexity: O(V + E) per call.
func Plain[I csr.Signed, W csr.Float](g *csr.Weighted[I, W], d []W, cm []I) (changed bool, err error) {
	if I(len(d)) != g.N {
		return false, fmt.Errorf("bellmanford.Plain: len(d)=%d want %v: %w", len(d), g.N, ErrSizeMismatch)
	}
	if I(len(cm)) != g.N {
		return false, fmt.Errorf("bellmanford.Plain: len(cm)=%d want %v: %w", len(cm), g.N, ErrSizeMismatch)
	}

	for i := I(0); i < g.N; i++ {
		weights := g.RowWeights(i)
		for jj, j := range g.Row(i) {
			cand := weights[jj] + d[j]
			if cand < d[i] {
				d[i] = cand
				cm[i] = cm[j]
				changed = true
			}
		}
	}
	return changed, nil
}
