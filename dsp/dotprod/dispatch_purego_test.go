//go:build purego

package dotprod

import (
	"testing"

	archregistry "github.com/cwbudde/algo-dotprod/dsp/dotprod/internal/arch/registry"
	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

func TestKernelDispatch_PuregoUsesGeneric(t *testing.T) {
	entry := archregistry.Global.Lookup(cpu.Features{
		Architecture: "amd64",
		ForceGeneric: true,
	})
	if entry == nil {
		t.Fatal("Lookup returned nil")
	}
	if entry.Name != "generic" {
		t.Fatalf("expected generic implementation in purego, got %q", entry.Name)
	}
}
