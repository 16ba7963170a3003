package csr

import "golang.org/x/exp/constraints"

// Signed is the set of index/label types the kernels accept: any signed
// integer width. Sentinel conventions (-1, -2, ...) require a signed type.
type Signed interface {
	constraints.Signed
}

// Float is the set of edge-weight/distance types the kernels accept.
// "Infinity" is the type's largest finite value, never an IEEE infinity.
type Float interface {
	constraints.Float
}
