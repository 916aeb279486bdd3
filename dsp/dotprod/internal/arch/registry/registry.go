// Package registry holds the dot-product kernel implementations available on
// this build, so the best one for the current CPU can be picked at runtime.
//
// Implementations register themselves from init() functions in the arch
// packages; Lookup selects the highest-priority entry whose SIMD level the
// detected CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-dotprod/internal/cpu"
)

// DotFlatFn computes the even/odd split dot product over flat interleaved
// arrays. h is the duplicated coefficient storage and x the sample buffer
// viewed as reals; both have length 2n for n complex samples. The returned
// re sums the even-index products, im the odd-index products.
type DotFlatFn func(h, x []float32) (re, im float32)

// OpEntry is one registered kernel implementation variant.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// DotSingle is the single-accumulator kernel (short inputs).
	DotSingle DotFlatFn

	// DotUnrolled4 is the 4-way unrolled kernel (long inputs).
	DotUnrolled4 DotFlatFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
