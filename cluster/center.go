package cluster

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
	"gonum.org/v1/gonum/mat"
)

// Center returns the global index of cluster a's graph center: the member
// minimizing eccentricity (the maximum intra-cluster shortest-path distance
// to any other member), ties broken by smallest local index.
//
// ICp, ICi, L must come from Incidence over the same cm. g must be the
// weighted graph cm was clustered over; only edges between two members of
// cluster a are used. The cluster must be internally connected.
//
// Complexity: O(N^3) time, O(N^2) space, where N is the cluster's size.
func Center[I csr.Signed, W csr.Float](g *csr.Weighted[I, W], cm []I, ICp, ICi, L []I, a I) (I, error) {
	if a < 0 || a+1 >= I(len(ICp)) {
		return 0, fmt.Errorf("cluster.Center: cluster %v out of range: %w", a, ErrClusterOutOfRange)
	}
	n := ICp[a+1] - ICp[a]

	inf := csr.Inf[W]()
	dist := mat.NewDense(int(n), int(n), nil)
	for r := 0; r < int(n); r++ {
		for c := 0; c < int(n); c++ {
			dist.Set(r, c, float64(inf))
		}
	}

	for m := I(0); m < n; m++ {
		i := ICi[ICp[a]+m]
		weights := g.RowWeights(i)
		for jj, j := range g.Row(i) {
			if cm[j] != a {
				continue
			}
			nn := L[j]
			dist.Set(int(m), int(nn), float64(weights[jj]))
		}
		dist.Set(int(m), int(m), 0)
	}

	for l := 0; l < int(n); l++ {
		for m := 0; m < int(n); m++ {
			dml := dist.At(m, l)
			for nn := 0; nn < int(n); nn++ {
				alt := dml + dist.At(l, nn)
				if alt < dist.At(m, nn) {
					dist.Set(m, nn, alt)
				}
			}
		}
	}

	infFloat := float64(inf)
	for r := 0; r < int(n); r++ {
		for c := 0; c < int(n); c++ {
			if dist.At(r, c) >= infFloat {
				return 0, fmt.Errorf("cluster.Center: cluster %v: %w", a, ErrDisconnected)
			}
		}
	}

	bestLocal, bestEcc := I(0), W(0)
	for m := 0; m < int(n); m++ {
		ecc := 0.0
		for nn := 0; nn < int(n); nn++ {
			if d := dist.At(m, nn); d > ecc {
				ecc = d
			}
		}
		w := W(ecc)
		if m == 0 || w < bestEcc {
			bestLocal, bestEcc = I(m), w
		}
	}

	return ICi[ICp[a]+bestLocal], nil
}
