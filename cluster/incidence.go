package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/amgkernels/csr"
)

// Incidence builds a CSC-style index over a per-vertex cluster labeling cm
// (length n, every entry in [0,k)). ICi lists every vertex grouped by
// cluster ascending, with ties inside a cluster broken by descending index;
// ICp gives each cluster a's window [ICp[a], ICp[a+1]) into ICi; L maps
// each vertex to its local offset inside that window.
//
// Invariant: ICi[ICp[cm[i]] + L[i]] == i for every vertex i, and every
// cluster in [0,k) is non-empty.
func Incidence[I csr.Signed](cm []I, k I) (ICp, ICi, L []I, err error) {
	n := I(len(cm))
	for i, a := range cm {
		if a < 0 || a >= k {
			return nil, nil, nil, fmt.Errorf("cluster.Incidence: cm[%d]=%v out of [0,%v): %w", i, a, k, ErrClusterOutOfRange)
		}
	}

	ICi = make([]I, n)
	for i := range ICi {
		ICi[i] = I(i)
	}
	sort.Slice(ICi, func(x, y int) bool {
		i, j := ICi[x], ICi[y]
		if cm[i] != cm[j] {
			return cm[i] < cm[j]
		}
		return i > j
	})

	ICp = make([]I, k+1)
	a := I(0)
	for pos := I(0); pos < n; pos++ {
		for cm[ICi[pos]] != a {
			a++
			ICp[a] = pos
		}
	}
	a++
	ICp[a] = n
	for ; a < k; a++ {
		ICp[a+1] = n
	}

	for a := I(0); a < k; a++ {
		if ICp[a+1] <= ICp[a] {
			return nil, nil, nil, fmt.Errorf("cluster.Incidence: cluster %v: %w", a, ErrEmptyCluster)
		}
	}

	L = make([]I, n)
	for a := I(0); a < k; a++ {
		base := ICp[a]
		for m := I(0); m < ICp[a+1]-base; m++ {
			L[ICi[base+m]] = m
		}
	}
	return ICp, ICi, L, nil
}
