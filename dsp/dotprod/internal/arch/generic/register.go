package generic

import (
	"github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

// init registers the pure Go kernels.
//
// These serve as the baseline fallback when no SIMD kernels are available
// or when ForceGeneric is set.
//
// Priority: 0 (lowest).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		DotSingle:    DotSingle,
		DotUnrolled4: DotUnrolled4,
	})
}
