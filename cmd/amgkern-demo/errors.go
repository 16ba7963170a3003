package main

import "errors"

var errUnknownTopology = errors.New("amgkern-demo: unknown topology")

var errUnknownPipeline = errors.New("amgkern-demo: unknown pipeline")
