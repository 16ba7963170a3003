package lloyd

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/bellmanford"
	"github.com/katalvlaran/amgkernels/csr"
)

// Approximate runs one Lloyd iteration: seeds d/cm from c, propagates
// outward to settle cluster membership, resets d at cluster boundaries,
// propagates inward to rank interior points by distance from the
// boundary, then moves each seed to its cluster's farthest-from-boundary
// member.
func Approximate[I csr.Signed, W csr.Float](g *csr.Weighted[I, W], c []I, d []W, cm []I) error {
	n := g.N
	if I(len(d)) != n || I(len(cm)) != n {
		return fmt.Errorf("lloyd.Approximate: array size mismatch: %w", ErrSizeMismatch)
	}

	inf := csr.Inf[W]()
	for i := range d {
		d[i] = inf
		cm[i] = -1
	}
	for a, seed := range c {
		if seed < 0 || seed >= n {
			return fmt.Errorf("lloyd.Approximate: seed %d=%v: %w", a, seed, ErrSeedOutOfRange)
		}
		d[seed] = 0
		cm[seed] = I(a)
	}

	if err := propagate(g, d, cm, n); err != nil {
		return fmt.Errorf("lloyd.Approximate: outward: %w", err)
	}

	for i := range d {
		d[i] = inf
	}
	for i := I(0); i < n; i++ {
		for _, j := range g.Row(i) {
			if cm[j] != cm[i] {
				d[i] = 0
				break
			}
		}
	}

	if err := propagate(g, d, cm, n); err != nil {
		return fmt.Errorf("lloyd.Approximate: inward: %w", err)
	}

	for i := I(0); i < n; i++ {
		a := cm[i]
		if a < 0 {
			continue
		}
		if d[c[a]] < d[i] {
			c[a] = i
		}
	}
	return nil
}

// propagate repeatedly runs a plain Bellman-Ford sweep until distances stop
// changing, bounded by n passes: no shortest path in an n-vertex graph has
// more than n-1 hops.
func propagate[I csr.Signed, W csr.Float](g *csr.Weighted[I, W], d []W, cm []I, n I) error {
	for iters := I(0); ; iters++ {
		changed, err := bellmanford.Plain(g, d, cm)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
		if iters > n {
			return ErrIterationCap
		}
	}
}
