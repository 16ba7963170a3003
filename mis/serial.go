package mis

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// Serial computes a greedy maximal independent set over the vertices
// currently marked active in x.
//
// Walks vertices in ascending index order. For each i with x[i]==active, it
// sets x[i]=inMIS, increments the count, and demotes every neighbor j with
// x[j]==active to x[j]=excluded. Vertices already excluded or in the MIS are
// skipped.
//
// Guarantees: the promoted set is independent (no two inMIS vertices among
// the original actives are adjacent) and maximal with respect to this greedy
// order — every non-promoted originally-active vertex has a promoted
// neighbor.
//
// Complexity: O(V + E).
func Serial[I csr.Signed](g *csr.Graph[I], active, excluded, inMIS I, x []I) (int, error) {
	if I(len(x)) != g.N {
		return 0, fmt.Errorf("mis.Serial: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}

	count := 0
	for i := I(0); i < g.N; i++ {
		if x[i] != active {
			continue
		}
		x[i] = inMIS
		count++
		for _, j := range g.Row(i) {
			if x[j] == active {
				x[j] = excluded
			}
		}
	}
	return count, nil
}
