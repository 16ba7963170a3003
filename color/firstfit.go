package color

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// FirstFit lowers every vertex currently holding color k to the smallest
// color not used by any neighbor, considering only neighbors that already
// hold a real color (x[j] >= 0). It never increases a vertex's color: the
// mask always includes slot k itself as a candidate final value.
//
// Complexity: O(V*k + E) — a size-k boolean mask per recolored vertex.
func FirstFit[I csr.Signed](g *csr.Graph[I], x []I, k I) error {
	if I(len(x)) != g.N {
		return fmt.Errorf("color.FirstFit: len(x)=%d want %v: %w", len(x), g.N, ErrSizeMismatch)
	}

	mask := make([]bool, k)
	for i := I(0); i < g.N; i++ {
		if x[i] != k {
			continue
		}

		for idx := range mask {
			mask[idx] = false
		}
		for _, j := range g.Row(i) {
			if j == i || x[j] < 0 {
				continue
			}
			if x[j] < k {
				mask[x[j]] = true
			}
		}

		assigned := k
		for idx := I(0); idx < k; idx++ {
			if !mask[idx] {
				assigned = idx
				break
			}
		}
		x[i] = assigned
	}
	return nil
}
