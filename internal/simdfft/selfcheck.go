package simdfft

import (
	"fmt"

	"github.com/cwbudde/algo-fft-harness/internal/fftypes"
)

// SelfCheck exercises the lane packing and spectral arithmetic this back
// end relies on and reports the first inconsistency found. Run it once at
// startup before trusting any transform output on a new execution
// environment.
func SelfCheck() error {
	if err := checkLayoutRoundTrip(); err != nil {
		return err
	}

	return checkConvolveIdentity()
}

// checkLayoutRoundTrip verifies that packing a ramp into the native layout
// and unpacking it restores every slot exactly, and that the pack actually
// splits re/im columns the way the kernels expect.
func checkLayoutRoundTrip() error {
	const pairs = 8

	src := make([]float32, 2*pairs)
	for i := range src {
		src[i] = float32(i + 1)
	}

	native := make([]float32, 2*pairs)
	back := make([]float32, 2*pairs)

	packNative(native, src, pairs)
	unpackNative(back, native, pairs)

	for i := range src {
		if back[i] != src[i] {
			return fmt.Errorf("simdfft: lane round trip slot %d: got %g, want %g", i, back[i], src[i])
		}
	}

	// Pair 1 (re=3, im=4) must land in block 0, lane 1: floats 1 and 5.
	if native[1] != 3 || native[laneWidth+1] != 4 {
		return fmt.Errorf("simdfft: lane split misplaced pair 1: re=%g im=%g", native[1], native[laneWidth+1])
	}

	return nil
}

// checkConvolveIdentity squares a small known spectrum through
// ConvolveAccumulate and compares against directly computed values,
// covering both the complex-pair path and the real DC/Nyquist path.
func checkConvolveIdentity() error {
	const n = 32 // real domain: 16 pairs, 4 blocks

	p := New()

	h, err := p.Setup(n, fftypes.DomainReal)
	if err != nil {
		return fmt.Errorf("simdfft: self-check setup: %w", err)
	}
	defer h.Close()

	conv, ok := h.(fftypes.Convolver)
	if !ok {
		return fmt.Errorf("simdfft: transform handle lost convolve capability")
	}

	spec := make([]float32, n)
	for i := range spec {
		spec[i] = float32(i%7) - 3
	}

	acc := make([]float32, n)
	conv.ConvolveAccumulate(spec, spec, acc, 2)

	for lane := 0; lane < laneWidth; lane++ {
		ar := spec[lane]
		ai := spec[laneWidth+lane]

		var wantRe, wantIm float32
		if lane == 0 {
			wantRe = 2 * ar * ar
			wantIm = 2 * ai * ai
		} else {
			wantRe = 2 * (ar*ar - ai*ai)
			wantIm = 2 * 2 * ar * ai
		}

		if acc[lane] != wantRe || acc[laneWidth+lane] != wantIm {
			return fmt.Errorf("simdfft: convolve lane %d: got (%g, %g), want (%g, %g)",
				lane, acc[lane], acc[laneWidth+lane], wantRe, wantIm)
		}
	}

	return nil
}
