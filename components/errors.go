package components

import "errors"

// ErrSizeMismatch indicates the labels array does not have length N.
var ErrSizeMismatch = errors.New("components: array size mismatch")
