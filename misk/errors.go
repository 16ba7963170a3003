package misk

import "errors"

// ErrSizeMismatch indicates x or y does not have length N.
var ErrSizeMismatch = errors.New("misk: array size mismatch")
