// Package bellmanford relaxes per-vertex distance and cluster-label arrays
// over a weighted CSR graph: Plain does one sweep and lets the caller
// iterate to convergence; Balanced self-iterates, folding in a tie-break
// that favors shrinking the larger of two equal-distance clusters.
package bellmanford
