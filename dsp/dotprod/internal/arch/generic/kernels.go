package generic

// DotSingle computes the even/odd split dot product over flat interleaved
// arrays with two scalar accumulators. Even indices feed re, odd indices
// feed im. len(h) and len(x) must be equal and even.
func DotSingle(h, x []float32) (re, im float32) {
	n := len(x)
	for i := 0; i < n; i += 2 {
		re += x[i] * h[i]
		im += x[i+1] * h[i+1]
	}
	return re, im
}

// DotUnrolled4 computes the same sums processing four complex samples
// (eight reals) per iteration, then cleans up the remainder two reals at
// a time. Summation order differs from DotSingle, so results agree only
// up to floating-point reassociation.
func DotUnrolled4(h, x []float32) (re, im float32) {
	n := len(x)
	t := n &^ 7

	var i int
	for ; i < t; i += 8 {
		re += x[i]*h[i] + x[i+2]*h[i+2] + x[i+4]*h[i+4] + x[i+6]*h[i+6]
		im += x[i+1]*h[i+1] + x[i+3]*h[i+3] + x[i+5]*h[i+5] + x[i+7]*h[i+7]
	}
	for ; i < n; i += 2 {
		re += x[i] * h[i]
		im += x[i+1] * h[i+1]
	}
	return re, im
}
