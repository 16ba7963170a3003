// Package builder provides internal helper functions and constants
// used by GraphConstructor implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: every method-prefixed error mirrors the caller's own
//     "<Method>: <detail>: %w" convention for uniform reporting.
//   - Performance: avoid unnecessary allocations; reuse loop variables.
//   - Readability: explicit naming, minimal nesting, consistent style.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/amgkernels/core"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1) to g, in ascending index
// order. Shared by every topology constructor that lays out its vertex set
// as a flat 0..n-1 range (Cycle, Path, Complete, CompleteBipartite,
// RandomSparse, RandomRegular, and Wheel's rim via Cycle).
//
// Parameters:
//   - method: constructor name for error context, e.g. MethodCycle.
//   - g:      target graph.
//   - n:      number of vertices to add.
//   - idFn:   maps index -> vertex ID.
//
// Complexity: O(n) time, O(1) extra space.
func addVerticesWithIDFn(method string, g *core.Graph, n int, idFn IDFn) error {
	var (
		i   int
		vid string
		err error
	)
	for i = 0; i < n; i++ {
		vid = idFn(i)
		if err = g.AddVertex(vid); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, vid, err)
		}
	}

	return nil
}

// addCompleteEdges connects every unordered pair in ids with an edge, one
// weight draw per edge via weightFn. For directed graphs, mirrors each edge
// in the opposite direction with its own independent draw. Used by
// Complete's "every pair" edge emission.
//
// Parameters:
//   - method:   constructor name for error context.
//   - g:        target graph.
//   - ids:      slice of vertex IDs, already in emission order.
//   - weightFn: called once per directed arc to pick that arc's weight.
//
// Complexity: O(m²) time where m = len(ids), O(1) extra space.
func addCompleteEdges(method string, g *core.Graph, ids []string, weightFn func() int64) error {
	var (
		i, j int
		u, v string
		err  error
	)
	// outer loop over vertex IDs
	for i = 0; i < len(ids); i++ {
		u = ids[i] // source vertex ID
		// inner loop over subsequent IDs to avoid duplicates
		for j = i + 1; j < len(ids); j++ {
			v = ids[j] // target vertex ID
			w := weightFn()
			// add edge u -> v
			if _, err = g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
			}
			// if the graph is directed, also add edge v -> u
			if g.Directed() {
				w = weightFn()
				if _, err = g.AddEdge(v, u, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
				}
			}
		}
	}

	// all pairs connected successfully
	return nil
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
//
// Parameters:
//   - prefix: string prefix for each ID.
//   - n:      number of IDs to generate.
//
// Returns a slice of length n.
//
// Complexity: O(n) time and space.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n) // allocate slice once
	var i int
	for i = 0; i < n; i++ { // fill each element
		ids[i] = vertexID(prefix, i)
	}

	return ids
}

// vertexID returns a vertex identifier by concatenating prefix and index.
// Example: vertexID("R",2) → "R2".
//
// Parameters:
//   - prefix: string to prepend.
//   - i:      integer index.
//
// Complexity: O(len(prefix) + digits(i)), negligible.
func vertexID(prefix string, i int) string {
	// strconv.Itoa is preferred for simple integer-to-string conversion
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
// Example: gridVertexID(0,1) → "0,1".
//
// Parameters:
//   - r: row index.
//   - c: column index.
//
// Complexity: O(digits(r)+digits(c)), negligible.
func gridVertexID(r, c int) string {
	// strconv.Itoa is more efficient than fmt.Sprintf for simple int→string
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
