package misk

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// Parallel computes a maximal independent set with pairwise unweighted
// distance strictly greater than k between any two chosen vertices, using
// repeated rounds of max-propagation rather than per-candidate BFS.
//
// Each outer round: propagate (index, y) max outward k times so every
// vertex learns the argmax over its k-ball; a vertex that is its own k-ball
// maximum and still active is promoted (x[i]=1); the promotion signal is
// then propagated outward k more times so every vertex within distance k of
// a promotion is deactivated; remaining active vertices retry next round
// with the same priorities y (inactive vertices relay value -1). Terminates when no active vertex remains or after
// maxIters rounds (maxIters == -1 means unbounded).
//
// Complexity: O((V+E) * k * rounds).
func Parallel[I csr.Signed, W csr.Float](g *csr.Graph[I], k I, x []I, y []W, maxIters int) (int, error) {
	if I(len(x)) != g.N {
		return 0, fmt.Errorf("misk.Parallel: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}
	if I(len(y)) != g.N {
		return 0, fmt.Errorf("misk.Parallel: len(y)=%d want %v: %w", len(y), g.N, ErrSizeMismatch)
	}

	n := int(g.N)
	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}

	keysA := make([]I, n)
	valsA := make([]W, n)
	keysB := make([]I, n)
	valsB := make([]W, n)

	xKeysA := make([]I, n)
	xValsA := make([]I, n)
	xKeysB := make([]I, n)
	xValsB := make([]I, n)

	count := 0
	iters := 0
	for {
		if maxIters != -1 && iters >= maxIters {
			break
		}
		iters++

		anyActive := false
		for i := 0; i < n; i++ {
			keysA[i] = I(i)
			if active[i] {
				valsA[i] = y[i]
				anyActive = true
			} else {
				valsA[i] = W(-1)
			}
		}
		if !anyActive {
			break
		}

		winKeys, _ := propagateRounds(g, k, keysA, valsA, keysB, valsB)

		for i := 0; i < n; i++ {
			if active[i] && winKeys[i] == I(i) {
				x[i] = 1
				count++
			}
		}

		for i := 0; i < n; i++ {
			xKeysA[i] = I(i)
			xValsA[i] = x[i]
		}
		_, winXVals := propagateRounds(g, k, xKeysA, xValsA, xKeysB, xValsB)

		stillActive := false
		for i := 0; i < n; i++ {
			if winXVals[i] == 1 {
				active[i] = false
			} else if active[i] {
				stillActive = true
			}
		}
		if !stillActive {
			break
		}
	}
	return count, nil
}
