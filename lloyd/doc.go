// Package lloyd recomputes cluster seeds for one Lloyd-style clustering
// iteration over a weighted CSR graph. Approximate alternates outward and
// inward Bellman-Ford propagation to pick each cluster's interior point
// farthest from its boundary; Exact runs a balanced relaxation sweep and
// locates each cluster's true graph center via Floyd-Warshall. Both leave
// further iteration (repeated calls) to the caller.
package lloyd
