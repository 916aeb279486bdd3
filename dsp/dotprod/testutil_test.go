package dotprod

import (
	"fmt"
	"math"
)

// Shared test helpers.

const tol = 1e-5

func closeScalar(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < tol
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < tol
}

func closeCx(a, b complex64) bool {
	return closeScalar(float64(real(a)), float64(real(b))) &&
		closeScalar(float64(imag(a)), float64(imag(b)))
}

func closeCx128(a, b complex128) bool {
	return closeScalar(real(a), real(b)) && closeScalar(imag(a), imag(b))
}

// testCoeffs and testSamples generate deterministic pseudo-random data so
// failures reproduce without a seed.
func testCoeffs(n int) []float32 {
	h := make([]float32, n)
	for i := range h {
		h[i] = float32((i*37+11)%113)/113 - 0.5
	}
	return h
}

func testSamples(n int) []complex64 {
	x := make([]complex64, n)
	for i := range x {
		re := float32((i*53+7)%97)/97 - 0.5
		im := float32((i*29+13)%89)/89 - 0.5
		x[i] = complex(re, im)
	}
	return x
}

func testCoeffs64(n int) []float64 {
	h := make([]float64, n)
	for i := range h {
		h[i] = float64((i*41+5)%103)/103 - 0.5
	}
	return h
}

func testSamples64(n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		re := float64((i*59+3)%101)/101 - 0.5
		im := float64((i*43+17)%107)/107 - 0.5
		x[i] = complex(re, im)
	}
	return x
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}
