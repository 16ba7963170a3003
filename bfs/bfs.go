package bfs

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// Traverse computes a level-set BFS from seed. level must be pre-filled
// with -1 by the caller; order and level must both have length N. On
// return, order[:count] is a permutation of reached vertices in visitation
// order (order[0] == seed), level[j] holds the unweighted distance from
// seed for every reached j, and unreached vertices keep level == -1 and are
// absent from order[:count].
//
// Complexity: O(V + E).
func Traverse[I csr.Signed](g *csr.Graph[I], seed I, order []I, level []I) (count I, err error) {
	if I(len(order)) != g.N {
		return 0, fmt.Errorf("bfs.Traverse: len(order)=%d want %v: %w", len(order), g.N, ErrSizeMismatch)
	}
	if I(len(level)) != g.N {
		return 0, fmt.Errorf("bfs.Traverse: len(level)=%d want %v: %w", len(level), g.N, ErrSizeMismatch)
	}
	if seed < 0 || seed >= g.N {
		return 0, fmt.Errorf("bfs.Traverse: seed=%v: %w", seed, ErrSeedOutOfRange)
	}

	order[0] = seed
	level[seed] = 0
	count = 1

	levelBegin, levelEnd := I(0), I(1)
	curLevel := I(0)
	for levelBegin < levelEnd {
		curLevel++
		for idx := levelBegin; idx < levelEnd; idx++ {
			v := order[idx]
			for _, j := range g.Row(v) {
				if level[j] == -1 {
					level[j] = curLevel
					order[count] = j
					count++
				}
			}
		}
		levelBegin = levelEnd
		levelEnd = count
	}
	return count, nil
}
