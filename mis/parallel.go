package mis

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
	"golang.org/x/exp/constraints"
)

// Parallel computes a maximal independent set over the active subset of x
// using Luby-style randomized rounds, with priorities y supplied by the
// caller (this package never generates randomness itself).
//
// Within a round, every active vertex i compares against every active
// neighbor j using the pair (y[i], i): larger y wins, and on a tie the
// larger index wins. A vertex outranked by any active neighbor stays active
// for a future round; a vertex that sees an already-promoted neighbor is
// excluded immediately; a vertex outranking every active neighbor is
// promoted, demoting all its active neighbors.
//
// Terminates when a full sweep promotes/excludes every remaining active
// vertex, or after maxIters rounds (maxIters == -1 means unbounded).
// Comparisons are always made in ascending CSR row order so results are
// reproducible for a fixed y.
//
// Complexity: O((V + E) * rounds).
func Parallel[I csr.Signed, Y constraints.Ordered](g *csr.Graph[I], active, excluded, inMIS I, x []I, y []Y, maxIters int) (int, error) {
	if I(len(x)) != g.N {
		return 0, fmt.Errorf("mis.Parallel: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}
	if I(len(y)) != g.N {
		return 0, fmt.Errorf("mis.Parallel: len(y)=%d want %v: %w", len(y), g.N, ErrSizeMismatch)
	}

	count := 0
	iters := 0
	activeRemains := true
	for activeRemains && (maxIters == -1 || iters < maxIters) {
		activeRemains = false
		iters++

		for i := I(0); i < g.N; i++ {
			if x[i] != active {
				continue
			}

			yi := y[i]
			outranked := false
			sawPromotedNeighbor := false
			for _, j := range g.Row(i) {
				xj := x[j]
				if xj == inMIS {
					sawPromotedNeighbor = true
					break
				}
				if xj == active {
					yj := y[j]
					if yj > yi || (yj == yi && j > i) {
						outranked = true
						break
					}
				}
			}

			switch {
			case sawPromotedNeighbor:
				x[i] = excluded
			case outranked:
				activeRemains = true
			default:
				for _, j := range g.Row(i) {
					if x[j] == active {
						x[j] = excluded
					}
				}
				x[i] = inMIS
				count++
			}
		}
	}
	return count, nil
}
