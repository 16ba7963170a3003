package misk

import (
	"github.com/katalvlaran/amgkernels/csr"
	"golang.org/x/exp/constraints"
)

// PropagateMax runs one step of max-propagation: every vertex adopts the
// (key, val) pair of the neighborhood argmax by val, ties broken by the
// larger key, with its own current entry participating in the comparison.
// Reading from (keysIn, valsIn) and writing to (keysOut, valsOut) keeps one
// step's updates from leaking into the same step's comparisons.
//
// Complexity: O(V + E) per step.
func PropagateMax[I csr.Signed, V constraints.Ordered](g *csr.Graph[I], keysIn []I, valsIn []V, keysOut []I, valsOut []V) {
	for i := I(0); i < g.N; i++ {
		bestKey := keysIn[i]
		bestVal := valsIn[i]
		for _, j := range g.Row(i) {
			vj, kj := valsIn[j], keysIn[j]
			if vj > bestVal || (vj == bestVal && kj > bestKey) {
				bestVal, bestKey = vj, kj
			}
		}
		keysOut[i] = bestKey
		valsOut[i] = bestVal
	}
}

// propagateRounds runs PropagateMax s times, ping-ponging between two
// scratch buffer pairs, and returns whichever pair holds the final result.
func propagateRounds[I csr.Signed, V constraints.Ordered](g *csr.Graph[I], rounds I, keysA []I, valsA []V, keysB []I, valsB []V) ([]I, []V) {
	curKeys, curVals := keysA, valsA
	nextKeys, nextVals := keysB, valsB
	for s := I(0); s < rounds; s++ {
		PropagateMax(g, curKeys, curVals, nextKeys, nextVals)
		curKeys, nextKeys = nextKeys, curKeys
		curVals, nextVals = nextVals, curVals
	}
	return curKeys, curVals
}
