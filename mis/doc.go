// Package mis computes maximal independent sets over a CSR graph, either
// by a deterministic greedy sweep (Serial) or by Luby-style randomized
// rounds (Parallel). Both operate over a caller-chosen "active" subset of
// vertices, encoded via sentinel values in a shared state array x, so
// callers (notably package color) can run MIS repeatedly with different
// sentinel triples to build a layered algorithm on top.
package mis
