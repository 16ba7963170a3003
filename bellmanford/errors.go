package bellmanford

import "errors"

// ErrSizeMismatch indicates an array does not have length N.
var ErrSizeMismatch = errors.New("bellmanford: array size mismatch")

// ErrIterationCap indicates Balanced failed to reach quiescence within n^3
// sweeps, the safety bound carried over from the reference algorithm.
var ErrIterationCap = errors.New("bellmanford: iteration cap exceeded")
