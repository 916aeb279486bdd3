//go:build amd64 && !purego

package highway

import (
	"github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

// init registers the portable SIMD kernels on amd64.
//
// go-highway selects the widest vector path it was built with at its own
// init time, so a single entry covers SSE2 through AVX-512 hosts.
//
// Priority: 10 (preferred over generic whenever SIMD is usable).
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "highway",
		SIMDLevel:    cpu.SIMDSSE2,
		Priority:     10,
		DotSingle:    DotSingle,
		DotUnrolled4: DotUnrolled4,
	})
}
