package math

import "testing"

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},

		{"1 bit: 1", 1, 1, 1},
		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},

		{"3 bits: 0b110 (docstring example)", 0b110, 3, 0b011},
		{"3 bits: 0b101", 0b101, 3, 0b101},

		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"8 bits: 0xFF", 0xFF, 8, 0xFF},
		{"16 bits: 0x1234", 0x1234, 16, 0x2C48},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReverseBits(tt.x, tt.nbits)
			if got != tt.expect {
				t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestReverseBitsSymmetry(t *testing.T) {
	t.Parallel()

	// Reversing twice must return the original value.
	for nbits := 1; nbits <= 12; nbits++ {
		maxVal := 1 << uint(nbits)
		for x := 0; x < maxVal; x++ {
			if got := ReverseBits(ReverseBits(x, nbits), nbits); got != x {
				t.Fatalf("double ReverseBits(%d, %d) = %d, want %d", x, nbits, got, x)
			}
		}
	}
}

func TestComputeBitReversalIndices(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		n      int
		expect []int
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"n=1", 1, []int{0}},
		{"n=4", 4, []int{0, 2, 1, 3}},
		{"n=8", 8, []int{0, 4, 2, 6, 1, 5, 3, 7}},
		{"n=16", 16, []int{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeBitReversalIndices(tt.n)
			if len(got) != len(tt.expect) {
				t.Fatalf("length = %d, want %d", len(got), len(tt.expect))
			}

			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("indices[%d] = %d, want %d", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestComputeBitReversalIndicesIsSymmetricPermutation(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024} {
		indices := ComputeBitReversalIndices(n)
		if len(indices) != n {
			t.Fatalf("n=%d: length = %d", n, len(indices))
		}

		for i := 0; i < n; i++ {
			if indices[indices[i]] != i {
				t.Fatalf("n=%d: indices[indices[%d]] = %d, want %d", n, i, indices[indices[i]], i)
			}
		}
	}
}
