package csr

import "errors"

// Sentinel errors for CSR construction and the core bridge. Kernel packages
// define their own sentinels for algorithm-level preconditions; these cover
// only the view itself.
var (
	// ErrSizeMismatch indicates Ap/Aj/Ax lengths are inconsistent with n or nnz.
	ErrSizeMismatch = errors.New("csr: array size mismatch")

	// ErrBadOffsets indicates Ap is not a non-decreasing length-(n+1) sequence
	// starting at 0.
	ErrBadOffsets = errors.New("csr: row offsets invalid")

	// ErrColumnOutOfRange indicates an entry of Aj falls outside [0, n).
	ErrColumnOutOfRange = errors.New("csr: column index out of range")

	// ErrNilGraph indicates a nil *core.Graph was passed to the bridge.
	ErrNilGraph = errors.New("csr: source graph is nil")
)
