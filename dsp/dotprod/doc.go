// Package dotprod provides a structured inner-product primitive between a
// fixed real coefficient vector and streaming complex sample vectors.
//
// A [DotProduct] is built once from a coefficient slice and applied many
// times via Execute, which computes sum(h[i] * x[i]) over matching-length
// inputs. Construction lays the coefficients out duplicated and interleaved
// so the vectorized kernels can apply one real coefficient to the real and
// imaginary component of a complex sample with a single lane-wise multiply.
//
// Execution dispatches between two kernel strategies on a single length
// threshold: a single-accumulator loop for short coefficient sets and a
// 4-way unrolled loop for long ones. Kernel implementations register with an
// internal registry and the best one for the detected CPU is picked on first
// use; [Dot] and [Dot4] are the plain scalar references.
//
// This package provides the runtime primitive only. Filters, resamplers and
// correlators that consume it live elsewhere.
package dotprod
