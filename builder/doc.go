// Package builder provides reusable “functional‐options”‐style building blocks
// for assembling core.Graph topologies that feed the kernel packages' CSR
// views. It centralizes common configuration, ID schemes, weight
// distributions, and validation logic, keeping the topology constructors
// (Grid, Cycle, Path, Star, Wheel, Complete, CompleteBipartite, RandomSparse,
// RandomRegular) DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function, etc.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//     – validatePartition: ensure bipartition sizes ≥1.
//     – validateProbability: ensure p ∈ [0.0,1.0].
//   - Shared construction helpers (helpers.go):
//     – addVerticesWithIDFn: bulk-insert a 0..n-1 vertex range under an IDFn.
//     – addCompleteEdges:    emit every pairwise edge over an ID slice.
//     – makeIDs/vertexID/gridVertexID: prefix- and coordinate-based ID schemes.
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MaxPartition.
//     – DefaultEdgeWeight, MinProbability, MaxProbability.
//     – MethodCycle, MethodPath, … tokens passed to the validate* helpers and
//       wrapped into every sentinel error for context.
//
// Guarantees:
//
//   - Idempotent vertex insertion (core AddVertex): re-running a constructor on g
//     adds no duplicate vertices; its edges are added again, which core rejects
//     with ErrMultiEdgeNotAllowed unless g permits multi-edges, in which case
//     they become parallel edges.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping context tokens for easy filtering.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//   - Fully testable: all IDFn, WeightFn, BuilderOption, and validation branches
//     are covered by unit tests across builder/*_test.go.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
