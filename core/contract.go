// File: contract.go
// Role: Vertex contraction — the mutation graph coarsening is built on.
// Determinism:
//   - Parallel edges created by a merge are combined by summing Weight, never
//     left as duplicates, regardless of the graph's Multigraph() policy.
// Concurrency:
//   - Single atomic operation under both muVert and muEdgeAdj write locks.

package core

// Contract merges v into u: every edge incident to v is redirected so its v
// endpoint becomes u, the direct u-v edge (if any) is dropped rather than
// turned into a self-loop, and v is removed from the graph. When redirecting
// creates two edges between the same ordered pair with the same Directed
// flag, their weights are summed instead of leaving a parallel edge behind —
// Contract itself never introduces a parallel edge or a self-loop.
//
// This is the coarsening primitive the AMG setup phase drives: a maximal
// independent set (see the mis package) supplies the aggregate seeds, and
// every non-seed vertex is contracted into the seed whose aggregate it
// joins, so the post-contraction graph is the next coarse level.
//
// Complexity: O(E) (one scan of the edge catalog).
// Concurrency: acquires muVert and muEdgeAdj write locks for the duration.
func (g *Graph) Contract(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; !ok {
		return ErrVertexNotFound
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if e.From != v && e.To != v {
			continue
		}

		fromV := e.From == v
		other := e.To
		if !fromV {
			other = e.From
		}

		// Drop the u-v edge itself and true self-loops on v; neither survives
		// contraction as a meaningful coarse-level connection.
		if other == u || other == v {
			removeAdjacency(g, e)
			delete(g.edges, eid)
			continue
		}

		removeAdjacency(g, e)
		delete(g.edges, eid)

		newFrom, newTo := other, u
		if fromV {
			newFrom, newTo = u, other
		}

		if merged := findParallelEdge(g, newFrom, newTo, e.Directed); merged != nil {
			merged.Weight += e.Weight
			continue
		}

		neid := nextEdgeID(g)
		ne := &Edge{ID: neid, From: newFrom, To: newTo, Weight: e.Weight, Directed: e.Directed}
		g.edges[neid] = ne
		ensureAdjacency(g, newFrom, newTo)
		g.adjacencyList[newFrom][newTo][neid] = struct{}{}
		if !ne.Directed && newFrom != newTo {
			ensureAdjacency(g, newTo, newFrom)
			g.adjacencyList[newTo][newFrom][neid] = struct{}{}
		}
	}

	delete(g.vertices, v)
	cleanupAdjacency(g)

	return nil
}

// findParallelEdge returns an edge between from and to with the given
// Directed flag, or nil if none is cataloged. Must be called under
// muEdgeAdj; used by Contract to merge weights instead of leaving
// duplicate edges behind.
func findParallelEdge(g *Graph, from, to string, directed bool) *Edge {
	for candidate := range g.adjacencyList[from][to] {
		if e := g.edges[candidate]; e != nil && e.Directed == directed {
			return e
		}
	}

	return nil
}
