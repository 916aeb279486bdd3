// Package highway implements the dot-product kernels on the portable SIMD
// primitives of github.com/ajroetker/go-highway.
//
// Both kernels treat the duplicated coefficient storage and the interleaved
// sample buffer as flat real arrays. Because coefficients are duplicated
// pairwise, a plain lane-wise multiply applies each coefficient to the real
// and imaginary component of one complex sample; even accumulator lanes then
// carry real partial products and odd lanes imaginary ones, and the final
// reduction folds the two lane sets separately.
package highway

import (
	"github.com/ajroetker/go-highway/hwy"

	"github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/generic"
)

// maxFold bounds the lane scratch used by the even/odd reduction.
const maxFold = 64

// DotSingle processes the largest lanes-multiple prefix with one vector
// accumulator, folds even/odd lanes into the two scalar sums and finishes
// the tail two reals at a time. len(h) == len(x), both even.
func DotSingle(h, x []float32) (re, im float32) {
	n := len(x)

	sum := hwy.Zero[float32]()
	lanes := sum.NumLanes()
	if lanes < 2 || lanes&1 != 0 || lanes > maxFold {
		return generic.DotSingle(h, x)
	}

	var i int
	for ; i+lanes <= n; i += lanes {
		v := hwy.Load(x[i:])
		c := hwy.Load(h[i:])
		sum = hwy.Add(sum, hwy.Mul(v, c))
	}

	re, im = foldEvenOdd(sum, lanes)

	for ; i < n; i += 2 {
		re += x[i] * h[i]
		im += x[i+1] * h[i+1]
	}
	return re, im
}

// DotUnrolled4 issues four independent load/multiply pairs per iteration,
// covering 4x the vector width, before accumulating all four products.
// The unroll buys instruction-level parallelism on long inputs at the cost
// of setup overhead that only pays off past a few hundred reals.
func DotUnrolled4(h, x []float32) (re, im float32) {
	n := len(x)

	sum := hwy.Zero[float32]()
	lanes := sum.NumLanes()
	if lanes < 2 || lanes&1 != 0 || lanes > maxFold {
		return generic.DotUnrolled4(h, x)
	}

	block := 4 * lanes

	var i int
	for ; i+block <= n; i += block {
		v0 := hwy.Load(x[i:])
		v1 := hwy.Load(x[i+lanes:])
		v2 := hwy.Load(x[i+2*lanes:])
		v3 := hwy.Load(x[i+3*lanes:])

		c0 := hwy.Load(h[i:])
		c1 := hwy.Load(h[i+lanes:])
		c2 := hwy.Load(h[i+2*lanes:])
		c3 := hwy.Load(h[i+3*lanes:])

		s0 := hwy.Mul(v0, c0)
		s1 := hwy.Mul(v1, c1)
		s2 := hwy.Mul(v2, c2)
		s3 := hwy.Mul(v3, c3)

		sum = hwy.Add(sum, s0)
		sum = hwy.Add(sum, s1)
		sum = hwy.Add(sum, s2)
		sum = hwy.Add(sum, s3)
	}

	re, im = foldEvenOdd(sum, lanes)

	for ; i < n; i += 2 {
		re += x[i] * h[i]
		im += x[i+1] * h[i+1]
	}
	return re, im
}

// foldEvenOdd reduces the accumulator into the real (even lanes) and
// imaginary (odd lanes) scalar sums.
func foldEvenOdd(sum hwy.Vec[float32], lanes int) (re, im float32) {
	var lanebuf [maxFold]float32
	hwy.Store(sum, lanebuf[:lanes])
	for j := 0; j < lanes; j += 2 {
		re += lanebuf[j]
		im += lanebuf[j+1]
	}
	return re, im
}
