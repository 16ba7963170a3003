package cluster

import "errors"

// ErrSizeMismatch indicates an output array does not have the length the
// kernel requires.
var ErrSizeMismatch = errors.New("cluster: array size mismatch")

// ErrEmptyCluster indicates some cluster id in [0,k) has no member vertex.
var ErrEmptyCluster = errors.New("cluster: empty cluster")

// ErrDisconnected indicates a cluster passed to Center is not internally
// connected: some pair of members has no intra-cluster path.
var ErrDisconnected = errors.New("cluster: disconnected cluster")

// ErrClusterOutOfRange indicates a cluster label outside [0,k).
var ErrClusterOutOfRange = errors.New("cluster: label out of range")
