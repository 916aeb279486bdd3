// Package buffer provides reusable float64 scratch buffers for
// dot-product pipelines that need per-call intermediate storage
// without allocating on every Execute.
package buffer
