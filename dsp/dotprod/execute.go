package dotprod

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/generic"
	"github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

var (
	dotSingleImpl    registry.DotFlatFn
	dotUnrolled4Impl registry.DotFlatFn
	kernelName       string
	kernelInitOnce   sync.Once
)

func initKernels() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("dotprod: no kernel registered (missing generic fallback?)")
	}
	if entry.DotSingle == nil || entry.DotUnrolled4 == nil {
		panic("dotprod: selected kernel set incomplete")
	}

	dotSingleImpl = entry.DotSingle
	dotUnrolled4Impl = entry.DotUnrolled4
	kernelName = entry.Name
}

// KernelName returns the name of the kernel implementation selected for the
// current CPU ("generic", "highway", ...). Diagnostic use.
func KernelName() string {
	kernelInitOnce.Do(initKernels)
	return kernelName
}

// Execute computes the inner product of the stored coefficients and x.
//
// Precondition: len(x) equals Len(). This is not validated; a mismatch is
// undefined behavior, not a reported error. A zero-length object returns 0
// without touching x.
func (d *DotProduct) Execute(x []complex64) complex64 {
	if d.n == 0 || len(x) == 0 {
		return 0
	}

	kernelInitOnce.Do(initKernels)

	single, unrolled := dotSingleImpl, dotUnrolled4Impl
	if d.cfg.forceGeneric {
		single, unrolled = generic.DotSingle, generic.DotUnrolled4
	}

	// Flat real view of the interleaved complex samples.
	xf := unsafe.Slice((*float32)(unsafe.Pointer(&x[0])), 2*len(x))

	var re, im float32
	if d.n < d.cfg.unrollThreshold {
		re, im = single(d.h, xf)
	} else {
		re, im = unrolled(d.h, xf)
	}
	return complex(re, im)
}
