// Package components labels the connected components of a CSR graph using
// an iterative, explicit-stack depth-first search. No recursion is used:
// graphs in this domain can have millions of vertices, and an unbounded
// call stack is not an acceptable cost for a kernel this hot.
package components
