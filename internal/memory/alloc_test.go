package memory

import (
	"testing"
	"unsafe"
)

func TestAllocAlignedFloat32(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 16, 96, 1024, 36864} {
		slice, backing := AllocAlignedFloat32(n)
		if len(slice) != n {
			t.Fatalf("n=%d: len = %d", n, len(slice))
		}

		if backing == nil {
			t.Fatalf("n=%d: nil backing", n)
		}

		addr := uintptr(unsafe.Pointer(&slice[0]))
		if addr%Alignment != 0 {
			t.Errorf("n=%d: address %#x not %d-byte aligned", n, addr, Alignment)
		}

		// Must be writable over the full length.
		for i := range slice {
			slice[i] = float32(i)
		}
	}
}

func TestAllocAlignedComplex64(t *testing.T) {
	t.Parallel()

	slice, backing := AllocAlignedComplex64(513)
	if len(slice) != 513 || backing == nil {
		t.Fatalf("unexpected allocation: len=%d backing=%v", len(slice), backing == nil)
	}

	addr := uintptr(unsafe.Pointer(&slice[0]))
	if addr%Alignment != 0 {
		t.Errorf("address %#x not %d-byte aligned", addr, Alignment)
	}
}

func TestAllocAlignedZeroLength(t *testing.T) {
	t.Parallel()

	if s, b := AllocAlignedFloat32(0); s != nil || b != nil {
		t.Error("AllocAlignedFloat32(0) should return nil slices")
	}

	if s, b := AllocAlignedComplex64(-1); s != nil || b != nil {
		t.Error("AllocAlignedComplex64(-1) should return nil slices")
	}
}
