// Package amgkernels collects the graph kernels that back the coarsening
// and smoothing stages of an algebraic multigrid setup phase: maximal
// independent sets (serial and Luby-parallel), vertex coloring
// (first-fit, MIS-peel, Jones-Plassmann, LDF), distance-k independent
// sets, BFS, connected components, cluster incidence, cluster centers via
// Floyd-Warshall, plain and balanced Bellman-Ford relaxation, and Lloyd
// clustering (approximate and exact).
//
// Every kernel operates on a compressed-sparse-row view (package csr)
// built once from a mutable, thread-safe core.Graph (package core) via
// csr.FromCore: construction and testing happen on the host graph, while
// every kernel itself is a pure, sequential, allocation-scoped function
// over plain index and weight slices.
//
// Subpackages:
//
//	core/             — thread-safe Graph/Vertex/Edge primitives (construction, not kernels)
//	builder/          — deterministic topology constructors (Cycle, Grid, RandomSparse, ...)
//	csr/              — the read-only CSR view every kernel takes by reference
//	mis/              — maximal independent set: serial and Luby-parallel
//	color/            — vertex coloring: first-fit, MIS-peel, Jones-Plassmann, LDF
//	misk/             — distance-k maximal independent set
//	bfs/              — level-set breadth-first search
//	components/       — connected components via iterative DFS
//	cluster/          — cluster incidence index and cluster center (Floyd-Warshall)
//	bellmanford/      — plain and balanced relaxation sweeps
//	lloyd/            — Lloyd clustering, approximate and exact
//	cmd/amgkern-demo/ — a diagnostics CLI exercising one kernel pipeline end to end
package amgkernels
