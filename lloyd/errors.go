package lloyd

import "errors"

// ErrSizeMismatch indicates an array does not have the length a kernel
// requires.
var ErrSizeMismatch = errors.New("lloyd: array size mismatch")

// ErrSeedOutOfRange indicates a seed index in c falls outside [0,N).
var ErrSeedOutOfRange = errors.New("lloyd: seed index out of range")

// ErrIterationCap indicates an inner propagation pass failed to settle
// within N sweeps, which should not happen on a graph with N vertices.
var ErrIterationCap = errors.New("lloyd: propagation iteration cap exceeded")

// ErrSeedClusterMismatch indicates the exact variant's recomputed center
// for cluster a did not map back to cluster a (Balanced left an
// inconsistency between cm and the seed's own cluster membership).
var ErrSeedClusterMismatch = errors.New("lloyd: center does not map back to its cluster")
