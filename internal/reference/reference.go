// Package reference implements the trusted scalar transform the validator
// measures every other provider against. It supports canonical ordering
// only: its native layout is its canonical layout, so it carries no reorder
// or convolve capability and reports lane width 1.
//
// The real-domain spectral layout follows the classic scalar convention:
// DC first, then interleaved re/im pairs, with the Nyquist coefficient in
// the last slot. The validator rotates this into the harness canonical
// layout before comparing.
package reference

import (
	"unsafe"

	"github.com/cwbudde/algo-fft-harness/internal/dft"
	"github.com/cwbudde/algo-fft-harness/internal/fftypes"
)

// Provider is the scalar reference back end.
type Provider struct{}

// New returns the reference provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in reports.
func (*Provider) Name() string {
	return "reference"
}

// LaneWidth returns 1: the scalar engine processes one signal per call.
func (*Provider) LaneWidth() int {
	return 1
}

// Supports reports whether length n is transformable: any positive length
// for the complex domain, any even length >= 2 for the real domain.
func (*Provider) Supports(n int, d fftypes.Domain) bool {
	if d == fftypes.DomainComplex {
		return n >= 1
	}

	return n >= 2 && n%2 == 0
}

// Setup builds a transform handle for (n, d).
func (p *Provider) Setup(n int, d fftypes.Domain) (fftypes.Transform, error) {
	if !p.Supports(n, d) {
		return nil, dft.ErrInvalidLength
	}

	t := &transform{n: n, domain: d}

	var err error
	if d == fftypes.DomainComplex {
		t.cplan, err = dft.NewPlan(n)
	} else {
		t.rplan, err = dft.NewRealPlan(n)
		t.spec = make([]complex64, n/2+1)
	}

	if err != nil {
		return nil, err
	}

	return t, nil
}

type transform struct {
	n      int
	domain fftypes.Domain
	cplan  *dft.Plan
	rplan  *dft.RealPlan
	spec   []complex64
}

func (t *transform) Len() int {
	return t.n
}

func (t *transform) Domain() fftypes.Domain {
	return t.domain
}

// Forward computes the forward transform. The scalar layout is already
// canonical for this provider, so the native and ordered paths coincide.
func (t *transform) Forward(dst, src, work []float32) {
	t.ForwardOrdered(dst, src, work)
}

func (t *transform) Backward(dst, src, work []float32) {
	t.BackwardOrdered(dst, src, work)
}

func (t *transform) ForwardOrdered(dst, src, _ []float32) {
	if t.domain == fftypes.DomainComplex {
		t.cplan.Forward(asComplex(dst, t.n), asComplex(src, t.n))
		return
	}

	t.rplan.Forward(t.spec, src)
	packReal(dst, t.spec, t.n)
}

func (t *transform) BackwardOrdered(dst, src, _ []float32) {
	if t.domain == fftypes.DomainComplex {
		t.cplan.Inverse(asComplex(dst, t.n), asComplex(src, t.n))
		return
	}

	unpackReal(t.spec, src, t.n)
	t.rplan.Inverse(dst, t.spec)
}

func (t *transform) Close() {
	t.cplan = nil
	t.rplan = nil
	t.spec = nil
}

// packReal serializes n/2+1 spectral bins into the scalar real layout:
// dst[0] = DC, dst[2k-1], dst[2k] = re/im of bin k, dst[n-1] = Nyquist.
func packReal(dst []float32, spec []complex64, n int) {
	dst[0] = real(spec[0])
	for k := 1; k < n/2; k++ {
		dst[2*k-1] = real(spec[k])
		dst[2*k] = imag(spec[k])
	}

	dst[n-1] = real(spec[n/2])
}

// unpackReal rebuilds spectral bins from the scalar real layout. The DC and
// Nyquist bins carry no imaginary component.
func unpackReal(spec []complex64, src []float32, n int) {
	spec[0] = complex(src[0], 0)
	for k := 1; k < n/2; k++ {
		spec[k] = complex(src[2*k-1], src[2*k])
	}

	spec[n/2] = complex(src[n-1], 0)
}

// asComplex reinterprets an interleaved re/im float32 buffer as complex64.
func asComplex(buf []float32, n int) []complex64 {
	return unsafe.Slice((*complex64)(unsafe.Pointer(&buf[0])), n)
}
