// Package memory provides SIMD-aligned slice allocation. Each allocator
// returns the usable slice together with its backing array. The slice points
// into the backing, so holding the slice alone keeps the allocation
// reachable; the backing is returned for callers that need the raw bytes.
package memory

import "unsafe"

// Alignment is the allocation alignment in bytes. 64 covers every SIMD
// register width up to AVX-512 and matches the cache-line size.
const Alignment = 64

// AllocAlignedFloat32 allocates n float32 values aligned to Alignment bytes.
func AllocAlignedFloat32(n int) ([]float32, []byte) {
	if n <= 0 {
		return nil, nil
	}

	backing := make([]byte, n*4+Alignment)
	offset := alignOffset(backing)
	slice := unsafe.Slice((*float32)(unsafe.Pointer(&backing[offset])), n)

	return slice, backing
}

// AllocAlignedComplex64 allocates n complex64 values aligned to Alignment bytes.
func AllocAlignedComplex64(n int) ([]complex64, []byte) {
	if n <= 0 {
		return nil, nil
	}

	backing := make([]byte, n*8+Alignment)
	offset := alignOffset(backing)
	slice := unsafe.Slice((*complex64)(unsafe.Pointer(&backing[offset])), n)

	return slice, backing
}

// alignOffset returns the byte offset into backing at which an
// Alignment-aligned region starts.
func alignOffset(backing []byte) int {
	addr := uintptr(unsafe.Pointer(&backing[0]))
	misalign := int(addr & (Alignment - 1))

	if misalign == 0 {
		return 0
	}

	return Alignment - misalign
}
