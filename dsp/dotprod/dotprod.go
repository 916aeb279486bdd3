package dotprod

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cwbudde/algo-dotprod/internal/mem"
)

// DotProduct applies a fixed real coefficient vector to complex sample
// vectors of the same logical length.
//
// The coefficients are stored duplicated and interleaved,
// h = {c[0], c[0], c[1], c[1], ...}, in a 64-byte aligned buffer, so a flat
// lane-wise multiply against the interleaved real/imaginary sample layout
// applies each coefficient to both components of its sample.
//
// A DotProduct is immutable after construction. Concurrent Execute calls on
// one object are safe; Close or Recreate concurrent with Execute is not.
type DotProduct struct {
	n       int       // logical coefficient count
	h       []float32 // duplicated coefficients, len 2n, 64-byte aligned
	backing []byte    // keeps the aligned storage reachable
	cfg     config
}

// New creates a DotProduct from the given coefficients in forward order.
// The coefficients are copied, never aliased.
func New(coeffs []float32, opts ...Option) *DotProduct {
	return create(coeffs, false, applyOptions(opts))
}

// NewReversed creates a DotProduct with the coefficient order reversed,
// for convolution-style kernels that consume inputs back to front.
func NewReversed(coeffs []float32, opts ...Option) *DotProduct {
	return create(coeffs, true, applyOptions(opts))
}

func create(coeffs []float32, reversed bool, cfg config) *DotProduct {
	n := len(coeffs)
	d := &DotProduct{n: n, cfg: cfg}
	if n == 0 {
		return d
	}

	d.h, d.backing = mem.AllocAlignedFloat32(2 * n)
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

// Recreate releases the receiver's storage and returns a fresh DotProduct
// for the new coefficients, carrying over the construction options.
// The receiver must not be used afterward.
func (d *DotProduct) Recreate(coeffs []float32) *DotProduct {
	cfg := d.cfg
	d.release()
	return create(coeffs, false, cfg)
}

// RecreateReversed is Recreate with reversed coefficient order.
func (d *DotProduct) RecreateReversed(coeffs []float32) *DotProduct {
	cfg := d.cfg
	d.release()
	return create(coeffs, true, cfg)
}

// Copy returns an independent DotProduct with its own duplicate of the
// coefficient storage. Returns ErrNilObject if d is nil.
func (d *DotProduct) Copy() (*DotProduct, error) {
	if d == nil {
		return nil, ErrNilObject
	}

	c := &DotProduct{n: d.n, cfg: d.cfg}
	if d.n == 0 {
		return c, nil
	}

	c.h, c.backing = mem.AllocAlignedFloat32(2 * d.n)
	copy(c.h, d.h)
	return c, nil
}

// Close releases the coefficient storage. The object must not be used after
// Close; doing so is a programming error, not a reported one.
func (d *DotProduct) Close() {
	d.release()
}

func (d *DotProduct) release() {
	d.n = 0
	d.h = nil
	d.backing = nil
}

// Len returns the logical coefficient count.
func (d *DotProduct) Len() int {
	return d.n
}

// Coefficients returns a copy of the logical (de-duplicated) coefficients
// in stored order.
func (d *DotProduct) Coefficients() []float32 {
	c := make([]float32, d.n)
	for i := range c {
		c[i] = d.h[2*i]
	}
	return c
}

// String returns a human-readable coefficient listing.
func (d *DotProduct) String() string {
	var b strings.Builder
	d.writeTo(&b)
	return b.String()
}

// Fprint writes the coefficient listing to w.
func (d *DotProduct) Fprint(w io.Writer) {
	d.writeTo(w)
}

// Print writes the coefficient listing to standard output.
func (d *DotProduct) Print() {
	d.writeTo(os.Stdout)
}

func (d *DotProduct) writeTo(w io.Writer) {
	// Even-index reads skip the duplicated odd slots.
	fmt.Fprintf(w, "dotprod [%d coefficients]\n", d.n)
	for i := 0; i < d.n; i++ {
		fmt.Fprintf(w, "  %3d : %12.9f\n", i, d.h[2*i])
	}
}
