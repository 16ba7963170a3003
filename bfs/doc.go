// Package bfs computes a level-set breadth-first traversal of a CSR graph
// from a single seed vertex.
package bfs
