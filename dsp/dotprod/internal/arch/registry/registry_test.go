package registry

import (
	"testing"

	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

func TestLookupPrefersHighestSupportedPriority(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entry := reg.Lookup(cpu.Features{HasSSE2: true, HasAVX2: true})
	if entry == nil || entry.Name != "avx2" {
		t.Fatalf("Lookup = %v, want avx2", entry)
	}

	entry = reg.Lookup(cpu.Features{HasSSE2: true})
	if entry == nil || entry.Name != "sse2" {
		t.Fatalf("Lookup = %v, want sse2", entry)
	}

	entry = reg.Lookup(cpu.Features{})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("Lookup = %v, want generic", entry)
	}
}

func TestLookupForceGeneric(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})

	entry := reg.Lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if entry == nil || entry.Name != "generic" {
		t.Fatalf("Lookup = %v, want generic under ForceGeneric", entry)
	}
}

func TestLookupEmptyRegistry(t *testing.T) {
	reg := &OpRegistry{}
	if entry := reg.Lookup(cpu.Features{}); entry != nil {
		t.Fatalf("Lookup on empty registry = %v, want nil", entry)
	}
}

func TestListEntriesAndReset(t *testing.T) {
	reg := &OpRegistry{}
	reg.Register(OpEntry{Name: "a", Priority: 1})
	reg.Register(OpEntry{Name: "b", Priority: 2})

	if got := len(reg.ListEntries()); got != 2 {
		t.Fatalf("ListEntries len = %d, want 2", got)
	}

	reg.Reset()
	if got := len(reg.ListEntries()); got != 0 {
		t.Fatalf("ListEntries after Reset len = %d, want 0", got)
	}
}
