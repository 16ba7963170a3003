// Package cluster builds a CSC-style incidence index over a per-vertex
// cluster labeling (cluster incidence) and, given that index, locates each
// cluster's center by an all-pairs shortest path search restricted to the
// cluster's members (cluster center via Floyd-Warshall).
package cluster
