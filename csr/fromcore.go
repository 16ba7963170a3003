package csr

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/amgkernels/core"
)

// FromCore exports a *core.Graph into an unweighted Graph[int] snapshot.
// Vertex IDs are assigned dense indices 0..n-1 by ascending lexicographic
// order of their string ID; the returned lookup slice maps index back to ID.
//
// Undirected edges are expanded to both (from,to) and (to,from) rows so the
// CSR view is symmetric, matching the contract every traversal/MIS/coloring
// kernel assumes. Directed edges are stored once, in their stated direction.
// Self-loops and parallel edges are preserved as separate Aj entries.
//
// Implementation: classic two-pass CSR assembly — first count each row's
// out-degree, prefix-sum into Ap, then fill Aj at per-row cursors.
// Complexity: O(V + E).
func FromCore(g *core.Graph) (*Graph[int], []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ids := g.Vertices()
	sort.Strings(ids)
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	edges := g.Edges()
	degree := make([]int, n)
	type rowEdge struct {
		from, to int
	}
	expanded := make([]rowEdge, 0, len(edges)*2)
	for _, e := range edges {
		u, ok := index[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("csr: edge references unknown vertex %q: %w", e.From, ErrColumnOutOfRange)
		}
		v, ok := index[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("csr: edge references unknown vertex %q: %w", e.To, ErrColumnOutOfRange)
		}
		directed := g.Directed() || e.Directed
		degree[u]++
		expanded = append(expanded, rowEdge{u, v})
		if !directed && u != v {
			degree[v]++
			expanded = append(expanded, rowEdge{v, u})
		}
	}

	ap := make([]int, n+1)
	for i := 0; i < n; i++ {
		ap[i+1] = ap[i] + degree[i]
	}

	aj := make([]int, ap[n])
	cursor := make([]int, n)
	copy(cursor, ap[:n])
	for _, re := range expanded {
		aj[cursor[re.from]] = re.to
		cursor[re.from]++
	}
	for i := 0; i < n; i++ {
		sort.Ints(aj[ap[i]:ap[i+1]])
	}

	csrGraph, err := New(n, ap, aj)
	if err != nil {
		return nil, nil, err
	}
	return csrGraph, ids, nil
}

// FromCoreWeighted is FromCore plus a parallel Ax array taken from each
// core.Edge.Weight, converted to W. Weight is duplicated onto both expanded
// directions of an undirected edge.
func FromCoreWeighted[W Float](g *core.Graph) (*Weighted[int, W], []string, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	ids := g.Vertices()
	sort.Strings(ids)
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	edges := g.Edges()
	degree := make([]int, n)
	type rowEdge struct {
		from, to int
		weight   W
	}
	expanded := make([]rowEdge, 0, len(edges)*2)
	for _, e := range edges {
		u, ok := index[e.From]
		if !ok {
			return nil, nil, fmt.Errorf("csr: edge references unknown vertex %q: %w", e.From, ErrColumnOutOfRange)
		}
		v, ok := index[e.To]
		if !ok {
			return nil, nil, fmt.Errorf("csr: edge references unknown vertex %q: %w", e.To, ErrColumnOutOfRange)
		}
		w := W(e.Weight)
		directed := g.Directed() || e.Directed
		degree[u]++
		expanded = append(expanded, rowEdge{u, v, w})
		if !directed && u != v {
			degree[v]++
			expanded = append(expanded, rowEdge{v, u, w})
		}
	}

	ap := make([]int, n+1)
	for i := 0; i < n; i++ {
		ap[i+1] = ap[i] + degree[i]
	}

	aj := make([]int, ap[n])
	ax := make([]W, ap[n])
	cursor := make([]int, n)
	copy(cursor, ap[:n])
	for _, re := range expanded {
		c := cursor[re.from]
		aj[c] = re.to
		ax[c] = re.weight
		cursor[re.from]++
	}
	for i := 0; i < n; i++ {
		sortRowByColumn(aj[ap[i]:ap[i+1]], ax[ap[i]:ap[i+1]])
	}

	wg, err := NewWeighted(n, ap, aj, ax)
	if err != nil {
		return nil, nil, err
	}
	return wg, ids, nil
}

// sortRowByColumn sorts a (column, weight) row in place by column index,
// keeping the weight aligned with its column. Insertion sort is sufficient:
// rows are short (bounded by graph degree) relative to n.
func sortRowByColumn[W Float](cols []int, weights []W) {
	for i := 1; i < len(cols); i++ {
		for j := i; j > 0 && cols[j-1] > cols[j]; j-- {
			cols[j-1], cols[j] = cols[j], cols[j-1]
			weights[j-1], weights[j] = weights[j], weights[j-1]
		}
	}
}
