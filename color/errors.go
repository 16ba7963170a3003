package color

import "errors"

// ErrSizeMismatch indicates a state or weight array does not have length N.
var ErrSizeMismatch = errors.New("color: array size mismatch")

// Uncolored is the sentinel value x[i] holds before a color is assigned.
const Uncolored = -1

// reverting is the transient sentinel used while a one-round MIS call is in
// flight; it is always folded back to Uncolored before first-fit runs.
const reverting = -2
