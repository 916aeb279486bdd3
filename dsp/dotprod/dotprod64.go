package dotprod

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unsafe"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dotprod/dsp/buffer"
	"github.com/cwbudde/algo-dotprod/internal/mem"
)

// DotProduct64 is the double-precision flavor of DotProduct for
// complex128 pipelines. Storage layout and lifecycle match DotProduct;
// execution rides on the vecmath block operations instead of the float32
// kernel registry, with scratch buffers borrowed from a shared pool so
// concurrent Execute calls stay safe.
type DotProduct64 struct {
	n       int       // logical coefficient count
	h       []float64 // duplicated coefficients, len 2n, 64-byte aligned
	backing []byte
}

var scratch64 = buffer.NewPool()

// Dot64 computes the inner product of real coefficients h and complex
// samples x in natural order. The double-precision reference kernel.
func Dot64(h []float64, x []complex128) complex128 {
	n := min(len(h), len(x))

	var r complex128
	for i := 0; i < n; i++ {
		r += complex(h[i], 0) * x[i]
	}
	return r
}

// New64 creates a DotProduct64 from the given coefficients in forward order.
// The coefficients are copied, never aliased.
func New64(coeffs []float64) *DotProduct64 {
	return create64(coeffs, false)
}

// NewReversed64 creates a DotProduct64 with reversed coefficient order.
func NewReversed64(coeffs []float64) *DotProduct64 {
	return create64(coeffs, true)
}

func create64(coeffs []float64, reversed bool) *DotProduct64 {
	n := len(coeffs)
	d := &DotProduct64{n: n}
	if n == 0 {
		return d
	}

	d.h, d.backing = mem.AllocAlignedFloat64(2 * n)
	for i := 0; i < n; i++ {
		k := i
		if reversed {
			k = n - 1 - i
		}
		d.h[2*i] = coeffs[k]
		d.h[2*i+1] = coeffs[k]
	}
	return d
}

// Recreate releases the receiver's storage and returns a fresh DotProduct64
// for the new coefficients. The receiver must not be used afterward.
func (d *DotProduct64) Recreate(coeffs []float64) *DotProduct64 {
	d.release()
	return create64(coeffs, false)
}

// RecreateReversed is Recreate with reversed coefficient order.
func (d *DotProduct64) RecreateReversed(coeffs []float64) *DotProduct64 {
	d.release()
	return create64(coeffs, true)
}

// Copy returns an independent DotProduct64 with its own duplicate of the
// coefficient storage. Returns ErrNilObject if d is nil.
func (d *DotProduct64) Copy() (*DotProduct64, error) {
	if d == nil {
		return nil, ErrNilObject
	}

	c := &DotProduct64{n: d.n}
	if d.n == 0 {
		return c, nil
	}

	c.h, c.backing = mem.AllocAlignedFloat64(2 * d.n)
	copy(c.h, d.h)
	return c, nil
}

// Close releases the coefficient storage. The object must not be used
// after Close.
func (d *DotProduct64) Close() {
	d.release()
}

func (d *DotProduct64) release() {
	d.n = 0
	d.h = nil
	d.backing = nil
}

// Len returns the logical coefficient count.
func (d *DotProduct64) Len() int {
	return d.n
}

// Coefficients returns a copy of the logical (de-duplicated) coefficients
// in stored order.
func (d *DotProduct64) Coefficients() []float64 {
	c := make([]float64, d.n)
	for i := range c {
		c[i] = d.h[2*i]
	}
	return c
}

// Execute computes the inner product of the stored coefficients and x.
//
// Precondition: len(x) equals Len(); not validated. A zero-length object
// returns 0 without touching x.
func (d *DotProduct64) Execute(x []complex128) complex128 {
	if d.n == 0 || len(x) == 0 {
		return 0
	}

	// Flat real view of the interleaved complex samples.
	xf := unsafe.Slice((*float64)(unsafe.Pointer(&x[0])), 2*len(x))

	buf := scratch64.Get(len(xf))
	defer scratch64.Put(buf)

	prod := buf.Samples()
	vecmath.MulBlock(prod, xf, d.h)

	var re, im float64
	for i := 0; i < len(prod); i += 2 {
		re += prod[i]
		im += prod[i+1]
	}
	return complex(re, im)
}

// String returns a human-readable coefficient listing.
func (d *DotProduct64) String() string {
	var b strings.Builder
	d.writeTo(&b)
	return b.String()
}

// Fprint writes the coefficient listing to w.
func (d *DotProduct64) Fprint(w io.Writer) {
	d.writeTo(w)
}

// Print writes the coefficient listing to standard output.
func (d *DotProduct64) Print() {
	d.writeTo(os.Stdout)
}

func (d *DotProduct64) writeTo(w io.Writer) {
	fmt.Fprintf(w, "dotprod64 [%d coefficients]\n", d.n)
	for i := 0; i < d.n; i++ {
		fmt.Fprintf(w, "  %3d : %12.9f\n", i, d.h[2*i])
	}
}
