// Package mem provides alignment-guaranteed slice allocation for coefficient
// storage consumed by vector loads.
//
// Go's allocator only guarantees natural element alignment for slices, which
// is not enough for the widest vector load instructions. Alloc functions here
// over-allocate a byte buffer and carve an aligned slice out of it. Callers
// must keep the returned backing slice reachable for as long as the aligned
// slice is in use, since the aligned slice points into the backing buffer.
package mem

import "unsafe"

// Alignment is the byte boundary satisfied by all Alloc functions.
// 64 bytes covers a full 512-bit vector register load.
const Alignment = 64

// AllocAlignedFloat32 returns a zeroed float32 slice of length n whose first
// element lies on an Alignment-byte boundary, along with the byte buffer
// backing it. Returns (nil, nil) for n <= 0.
func AllocAlignedFloat32(n int) ([]float32, []byte) {
	if n <= 0 {
		return nil, nil
	}
	backing := make([]byte, n*4+Alignment)
	off := alignOffset(&backing[0])
	s := unsafe.Slice((*float32)(unsafe.Pointer(&backing[off])), n)
	return s, backing
}

// AllocAlignedFloat64 is the float64 counterpart of AllocAlignedFloat32.
func AllocAlignedFloat64(n int) ([]float64, []byte) {
	if n <= 0 {
		return nil, nil
	}
	backing := make([]byte, n*8+Alignment)
	off := alignOffset(&backing[0])
	s := unsafe.Slice((*float64)(unsafe.Pointer(&backing[off])), n)
	return s, backing
}

func alignOffset(p *byte) int {
	rem := int(uintptr(unsafe.Pointer(p)) & (Alignment - 1))
	if rem == 0 {
		return 0
	}
	return Alignment - rem
}
