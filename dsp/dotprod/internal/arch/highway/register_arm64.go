//go:build arm64 && !purego

package highway

import (
	"github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

// init registers the portable SIMD kernels on arm64 (NEON baseline).
//
// Priority: 10 (preferred over generic whenever SIMD is usable).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "highway",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     10,
		DotSingle:    DotSingle,
		DotUnrolled4: DotUnrolled4,
	})
}
