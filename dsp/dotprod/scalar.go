package dotprod

// Dot computes the inner product of real coefficients h and complex samples
// x in natural order with a single complex accumulator:
//
//	y = sum_{i} h[i] * x[i]
//
// Only the minimum length of the two slices is used. This is the portability
// baseline and the correctness oracle for the structured kernels.
func Dot(h []float32, x []complex64) complex64 {
	n := min(len(h), len(x))

	var r complex64
	for i := 0; i < n; i++ {
		r += complex(h[i], 0) * x[i]
	}
	return r
}

// Dot4 computes the same inner product with the loop unrolled by four,
// accumulating groups of four partial products before an ordinal cleanup of
// the remaining n mod 4 elements. The summation order differs from Dot, so
// results agree only up to floating-point reassociation.
func Dot4(h []float32, x []complex64) complex64 {
	n := min(len(h), len(x))

	// t = 4*floor(n/4)
	t := n &^ 3

	var r complex64
	var i int
	for ; i < t; i += 4 {
		r += complex(h[i], 0) * x[i]
		r += complex(h[i+1], 0) * x[i+1]
		r += complex(h[i+2], 0) * x[i+2]
		r += complex(h[i+3], 0) * x[i+3]
	}
	for ; i < n; i++ {
		r += complex(h[i], 0) * x[i]
	}
	return r
}
