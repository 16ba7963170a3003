package bfs

import "errors"

var (
	// ErrSizeMismatch indicates order or level does not have the expected length.
	ErrSizeMismatch = errors.New("bfs: array size mismatch")

	// ErrSeedOutOfRange indicates seed does not lie in [0, n).
	ErrSeedOutOfRange = errors.New("bfs: seed out of range")
)
