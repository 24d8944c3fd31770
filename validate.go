package fftharness

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-fft-harness/internal/memory"
)

// TestSizes is the validation matrix. Every length factors into powers of
// 2 and 3, spanning small, composite, and large transforms.
var TestSizes = []int{
	16, 32, 64, 96, 128, 192, 256, 288, 384, 512, 576,
	864, 1024, 2048, 2592, 4096, 36864,
}

// MinRealLength is the smallest transform length validated in the real
// domain. Shorter real transforms are skipped, never failed.
const MinRealLength = 32

// MismatchError reports the first slot where a provider's output diverged
// from the reference beyond the tolerance budget.
type MismatchError struct {
	Provider  string
	N         int
	Domain    Domain
	Pass      int
	Check     string
	Index     int
	Got       float64
	Want      float64
	Tolerance float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("fftharness: %s %s N=%d pass=%d: %s mismatch at slot %d: got %g want %g (tolerance %g)",
		e.Provider, e.Domain, e.N, e.Pass, e.Check, e.Index, e.Got, e.Want, e.Tolerance)
}

// Validator cross-checks a provider against the scalar reference
// transform. The same seeded source drives every case so failures
// reproduce exactly.
type Validator struct {
	reference Provider
	rng       *rand.Rand
}

// NewValidator returns a validator backed by ref and a deterministic
// pseudo-random source.
func NewValidator(ref Provider, seed int64) *Validator {
	return &Validator{
		reference: ref,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// ValidateAll runs Validate for every supported entry of TestSizes,
// stopping at the first failure.
func (v *Validator) ValidateAll(put Provider, d Domain) error {
	for _, n := range TestSizes {
		if d == DomainReal && n < MinRealLength {
			continue
		}
		if !put.Supports(n, d) {
			continue
		}
		if err := v.Validate(put, n, d); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks one (length, domain) case. Two passes run over the same
// input: pass 0 exercises the native-order entry points plus the reorder
// permutation, pass 1 the ordered entry points. Each pass checks the
// forward spectrum against the reference, out-of-place/in-place bit
// identity, the scaled round trip, and spectral convolution.
func (v *Validator) Validate(put Provider, n int, d Domain) error {
	if d == DomainReal && n < MinRealLength {
		return fmt.Errorf("%w: real N=%d below minimum %d", ErrUnsupportedLength, n, MinRealLength)
	}
	if !put.Supports(n, d) {
		return fmt.Errorf("%w: %s does not support %s N=%d", ErrUnsupportedLength, put.Name(), d, n)
	}

	h, err := put.Setup(n, d)
	if err != nil {
		return err
	}
	defer h.Close()

	reorder, ok := h.(Reorderer)
	if !ok {
		return fmt.Errorf("%w: %s has no spectral reorder", ErrMissingCapability, put.Name())
	}
	conv, ok := h.(Convolver)
	if !ok {
		return fmt.Errorf("%w: %s has no spectral convolution", ErrMissingCapability, put.Name())
	}

	refH, err := v.reference.Setup(n, d)
	if err != nil {
		return err
	}
	defer refH.Close()

	nf := d.FloatLen(n)
	ref, _ := memory.AllocAlignedFloat32(nf)
	in, _ := memory.AllocAlignedFloat32(nf)
	out, _ := memory.AllocAlignedFloat32(nf)
	tmp, _ := memory.AllocAlignedFloat32(nf)
	tmp2, _ := memory.AllocAlignedFloat32(nf)

	var tol float32

	for pass := 0; pass < 2; pass++ {
		fail := func(check string, index int, got, want float32) error {
			return &MismatchError{
				Provider:  put.Name(),
				N:         n,
				Domain:    d,
				Pass:      pass,
				Check:     check,
				Index:     index,
				Got:       float64(got),
				Want:      float64(want),
				Tolerance: float64(tol),
			}
		}

		if pass == 0 {
			for k := 0; k < nf; k++ {
				in[k] = v.rng.Float32()
				ref[k] = in[k]
				out[k] = 1e30
			}
			refH.ForwardOrdered(ref, ref, nil)
			if d == DomainReal {
				RotateNyquist(ref)
			}
			tol = ToleranceBudget(ref)
		}

		if pass == 0 {
			// Native ordering, with an explicit reorder to canonical.
			h.Forward(tmp, in, nil)
			copy(tmp2, tmp)
			copy(tmp, in)
			h.Forward(tmp, tmp, nil)
			if i := firstDiff(tmp2, tmp); i >= 0 {
				return fail("forward in-place identity", i, tmp[i], tmp2[i])
			}
			reorder.Reorder(out, tmp, ToCanonical)
			reorder.Reorder(tmp, out, FromCanonical)
			if i := firstDiff(tmp2, tmp); i >= 0 {
				return fail("reorder involution", i, tmp[i], tmp2[i])
			}
			reorder.Reorder(out, tmp, ToCanonical)
		} else {
			// Ordered entry points produce canonical output directly.
			h.ForwardOrdered(tmp, in, nil)
			copy(tmp2, tmp)
			copy(tmp, in)
			h.ForwardOrdered(tmp, tmp, nil)
			if i := firstDiff(tmp2, tmp); i >= 0 {
				return fail("ordered forward in-place identity", i, tmp[i], tmp2[i])
			}
			copy(out, tmp)
		}

		for k := 0; k < nf; k++ {
			if !(absf(ref[k]-out[k]) < tol) {
				return fail("forward spectrum", k, out[k], ref[k])
			}
		}

		// Round trip. tmp still holds the forward spectrum in the layout
		// matching the pass.
		if pass == 0 {
			h.Backward(out, tmp, nil)
		} else {
			h.BackwardOrdered(out, tmp, nil)
		}
		copy(tmp2, out)
		copy(out, tmp)
		if pass == 0 {
			h.Backward(out, out, nil)
		} else {
			h.BackwardOrdered(out, out, nil)
		}
		if i := firstDiff(tmp2, out); i >= 0 {
			return fail("backward in-place identity", i, out[i], tmp2[i])
		}

		scale := 1 / float32(n)
		for k := 0; k < nf; k++ {
			out[k] *= scale
		}
		for k := 0; k < nf; k++ {
			if absf(in[k]-out[k]) > tol {
				return fail("round trip", k, out[k], in[k])
			}
		}

		// Spectral self-convolution against a direct complex squaring of
		// the reference spectrum.
		reorder.Reorder(tmp, ref, ToCanonical)
		for k := 0; k < nf; k++ {
			out[k] = 0
		}
		conv.ConvolveAccumulate(ref, ref, out, 1)
		reorder.Reorder(tmp2, out, ToCanonical)
		for k := 0; k < nf; k += 2 {
			ar, ai := tmp[k], tmp[k+1]
			if k == 0 && d == DomainReal {
				// DC and Nyquist are purely real scalars.
				tmp[k] = ar * ar
				tmp[k+1] = ai * ai
			} else {
				tmp[k] = ar*ar - ai*ai
				tmp[k+1] = 2 * ar * ai
			}
		}
		for k := 0; k < nf; k++ {
			if !(absf(tmp[k]-tmp2[k]) < tol) {
				return fail("convolution", k, tmp2[k], tmp[k])
			}
		}
	}

	return nil
}

// firstDiff returns the first index where a and b are not bit-identical,
// or -1 when they match everywhere.
func firstDiff(a, b []float32) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
