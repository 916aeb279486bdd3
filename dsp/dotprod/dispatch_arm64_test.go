//go:build arm64 && !purego

package dotprod

import (
	"sync"
	"testing"

	archregistry "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

func resetKernelDispatchForTest() {
	dotSingleImpl = nil
	dotUnrolled4Impl = nil
	kernelName = ""
	kernelInitOnce = sync.Once{}
}

func TestKernelDispatch_ARM64Modes(t *testing.T) {
	tests := []struct {
		name     string
		features cpu.Features
		wantImpl string
	}{
		{
			name: "generic-forced",
			features: cpu.Features{
				ForceGeneric: true,
				Architecture: "arm64",
			},
			wantImpl: "generic",
		},
		{
			name: "neon",
			features: cpu.Features{
				HasNEON:      true,
				Architecture: "arm64",
			},
			wantImpl: "highway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)

			defer cpu.ResetDetection()

			resetKernelDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}

			if entry.Name != tt.wantImpl {
				t.Fatalf("expected %q, got %q", tt.wantImpl, entry.Name)
			}
		})
	}
}
