// Package csr defines the read-only compressed-sparse-row graph view shared
// by every kernel package, plus the bridge that exports one from a mutable
// github.com/katalvlaran/amgkernels/core.Graph.
//
// A csr.Graph never resizes after construction: kernels borrow its slices
// for the duration of a call and never grow or shrink them. Index and weight
// types are generic so callers can pick the narrowest representation that
// fits their problem (int32/int64 indices, float32/float64 weights).
package csr
