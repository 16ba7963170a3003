package mis

import "errors"

// ErrSizeMismatch indicates x or y does not have length N.
var ErrSizeMismatch = errors.New("mis: array size mismatch")
