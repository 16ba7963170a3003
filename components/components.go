package components

import (
	"fmt"

	"github.com/katalvlaran/amgkernels/csr"
)

// ConnectedComponents fills labels with a component id in [0, k) per vertex,
// where two vertices share a label iff a path connects them, and returns k.
// labels must be pre-allocated with length N; its contents are overwritten.
//
// Each unlabeled vertex seeds an iterative DFS over an explicit stack:
// push the vertex, label it, then repeatedly pop and push any unlabeled
// neighbor. No recursion.
//
// Complexity: O(V + E).
func ConnectedComponents[I csr.Signed](g *csr.Graph[I], labels []I) (I, error) {
	if I(len(labels)) != g.N {
		return 0, fmt.Errorf("components.ConnectedComponents: len(labels)=%d want %v: %w", len(labels), g.N, ErrSizeMismatch)
	}

	for i := range labels {
		labels[i] = -1
	}

	var stack []I
	component := I(0)
	for start := I(0); start < g.N; start++ {
		if labels[start] != -1 {
			continue
		}

		labels[start] = component
		stack = append(stack[:0], start)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, j := range g.Row(v) {
				if labels[j] == -1 {
					labels[j] = component
					stack = append(stack, j)
				}
			}
		}
		component++
	}
	return component, nil
}
