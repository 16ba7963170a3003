package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// Balanced self-iterates a relaxation sweep to quiescence. For each vertex
// i and neighbor j, i switches to j's cluster on strict distance
// improvement, or, on an exact tie, when j's cluster is strictly smaller
// than i's current cluster and i has no dependents of its own
// (predCount[i]==0) — a rebalance heuristic that favors shrinking the
// larger cluster while never destabilizing a vertex other nodes route
// through.
//
// pred, predCount and clusterSize are caller-owned scratch that must be
// consistent with the initial d/cm on entry (pred[i]=-1 and predCount[i]=0
// for every unrouted vertex, clusterSize[a] equal to the initial count of
// cm==a). Balanced maintains them across the call.
//
// Terminates when a full sweep makes no change, or aborts with
// ErrIterationCap past n^3 sweeps — the safety bound under which the
// rebalance heuristic is not guaranteed to converge on pathological
// weights.
func Balanced[I csr.Signed, W csr.Float](g *csr.Weighted[I, W], d []W, cm []I, pred []I, predCount []I, clusterSize []I) (int, error) {
	n := g.N
	if I(len(d)) != n || I(len(cm)) != n || I(len(pred)) != n || I(len(predCount)) != n {
		return 0, fmt.Errorf("bellmanford.Balanced: array size mismatch: %w", ErrSizeMismatch)
	}

	cap64 := int64(n) * int64(n) * int64(n)
	iters := 0
	for {
		changed := false
		for i := I(0); i < n; i++ {
			weights := g.RowWeights(i)
			for jj, j := range g.Row(i) {
				cand := weights[jj] + d[j]
				switchNow := cand < d[i]
				if !switchNow && cm[i] >= 0 && cand == d[i] && cm[j] >= 0 &&
					clusterSize[cm[j]] < clusterSize[cm[i]] && predCount[i] == 0 {
					switchNow = true
				}
				if !switchNow {
					continue
				}

				if cm[i] >= 0 {
					clusterSize[cm[i]]--
				}
				clusterSize[cm[j]]++
				if pred[i] >= 0 {
					predCount[pred[i]]--
				}
				pred[i] = j
				predCount[j]++
				d[i] = cand
				cm[i] = cm[j]
				changed = true
			}
		}
		iters++
		if !changed {
			return iters, nil
		}
		if int64(iters) > cap64 {
			return iters, fmt.Errorf("bellmanford.Balanced: n=%v: %w", n, ErrIterationCap)
		}
	}
}
