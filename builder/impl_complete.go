// SPDX-License-Identifier: MIT
// Package: lvlath/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once,
//     and mirrors to j→i only if g.Directed() is true.
//   • Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//   • Honors core mode flags (Directed/Loops/Multigraph) without silent degrade.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges emission.
//   • Space: O(n) extra for the precomputed ID slice.
//
// Determinism:
//   • Deterministic IDs via cfg.idFn.
//   • Deterministic pair order: lexicographic by (i,j), i<j.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"github.com/katalvlaran/amgkernels/core"
)

// minCompleteNodes is the smallest meaningful size for K_n; like RandomSparse
// and RandomRegular it has no dedicated constants.go entry, and a single isolated
// vertex (K_1) is itself a valid, if degenerate, complete graph.
const minCompleteNodes = 1

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	// The returned closure captures n; BuildGraph supplies (g,cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation: K_n is defined for n≥1.
		if err := validateMin(MethodComplete, n, minCompleteNodes); err != nil {
			return err
		}

		// Add vertices and keep their IDs in index order for the edge pass below.
		ids := make([]string, n) // O(n) space for stable reuse below
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
		}
		if err := addVerticesWithIDFn(MethodComplete, g, n, func(i int) string { return ids[i] }); err != nil {
			return err
		}

		// Cache whether weights are observed by the core graph for single-branch logic.
		useWeight := g.Weighted()
		weightFn := func() int64 {
			if useWeight {
				return cfg.weightFn(cfg.rng)
			}
			return 0
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order,
		// mirrored to j→i when g.Directed().
		if err := addCompleteEdges(MethodComplete, g, ids, weightFn); err != nil {
			return err
		}

		// Success: complete graph constructed deterministically.
		return nil
	}
}
