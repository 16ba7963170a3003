package lloyd

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/bellmanford"
	"github.com/katalvlaran/amgkernels/cluster"
	"github.com/katalvlaran/amgkernels/csr"
)

// Exact runs one Lloyd iteration using the balanced relaxation sweep and
// relocates each cluster's seed to its true graph center (the
// Floyd-Warshall eccentricity minimizer) rather than Approximate's
// boundary heuristic.
//
// pred, predCount and clusterSize are scratch with the same contract as
// bellmanford.Balanced; Exact (re)initializes them from c before the sweep.
func Exact[I csr.Signed, W csr.Float](g *csr.Weighted[I, W], c []I, d []W, cm []I, pred []I, predCount []I, clusterSize []I) error {
	n := g.N
	if I(len(d)) != n || I(len(cm)) != n || I(len(pred)) != n || I(len(predCount)) != n {
		return fmt.Errorf("lloyd.Exact: array size mismatch: %w", ErrSizeMismatch)
	}
	k := I(len(c))
	if I(len(clusterSize)) != k {
		return fmt.Errorf("lloyd.Exact: len(clusterSize)=%d want %v: %w", len(clusterSize), k, ErrSizeMismatch)
	}

	inf := csr.Inf[W]()
	for i := range d {
		d[i] = inf
		cm[i] = -1
		pred[i] = -1
		predCount[i] = 0
	}
	for a := range clusterSize {
		clusterSize[a] = 0
	}
	for a, seed := range c {
		if seed < 0 || seed >= n {
			return fmt.Errorf("lloyd.Exact: seed %d=%v: %w", a, seed, ErrSeedOutOfRange)
		}
		d[seed] = 0
		cm[seed] = I(a)
		clusterSize[a] = 1
	}

	if _, err := bellmanford.Balanced(g, d, cm, pred, predCount, clusterSize); err != nil {
		return fmt.Errorf("lloyd.Exact: %w", err)
	}

	ICp, ICi, L, err := cluster.Incidence(cm, k)
	if err != nil {
		return fmt.Errorf("lloyd.Exact: %w", err)
	}

	for a := I(0); a < k; a++ {
		center, err := cluster.Center(g, cm, ICp, ICi, L, a)
		if err != nil {
			return fmt.Errorf("lloyd.Exact: cluster %v: %w", a, err)
		}
		if cm[center] != a {
			return fmt.Errorf("lloyd.Exact: cluster %v center %v: %w", a, center, ErrSeedClusterMismatch)
		}
		c[a] = center
	}
	return nil
}
