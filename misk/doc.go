// Package misk computes a maximal independent set subject to a minimum
// unweighted-distance separation of k+1 between chosen vertices, via
// repeated max-propagation message passing (PropagateMax) rather than
// an explicit BFS per candidate.
package misk
