// Package simdfft implements the lane-blocked FFT back end the harness
// validates and benchmarks. Its native spectral layout groups frequency
// pairs into blocks of four with split re/im columns, the layout a
// four-wide SIMD butterfly kernel works in, and exposes the reorder and
// convolve-accumulate capabilities that operate on that layout.
package simdfft

import (
	"unsafe"

	"github.com/cwbudde/algo-fft-harness/internal/dft"
	"github.com/cwbudde/algo-fft-harness/internal/fftypes"
	m "github.com/cwbudde/algo-fft-harness/internal/math"
)

// laneWidth is the number of spectral pairs per native block.
const laneWidth = 4

// Provider is the lane-blocked back end.
type Provider struct{}

// New returns the lane-blocked provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in reports.
func (*Provider) Name() string {
	return "simdfft"
}

// LaneWidth returns the native lane width used for benchmark normalization.
func (*Provider) LaneWidth() int {
	return laneWidth
}

// Supports reports whether (n, d) is transformable: n must factor into
// 2, 3 and 5 only, and the pair count must fill whole native blocks, which
// requires n to be a multiple of 16 in the complex domain and 32 in the
// real domain.
func (*Provider) Supports(n int, d fftypes.Domain) bool {
	if n < 1 || !m.OnlyFactors(n, 2, 3, 5) {
		return false
	}

	if d == fftypes.DomainComplex {
		return n%(4*laneWidth) == 0
	}

	return n%(8*laneWidth) == 0
}

// Setup builds a transform handle for (n, d).
func (p *Provider) Setup(n int, d fftypes.Domain) (fftypes.Transform, error) {
	if !p.Supports(n, d) {
		return nil, dft.ErrInvalidLength
	}

	t := &transform{
		n:      n,
		domain: d,
		canon:  make([]float32, d.FloatLen(n)),
	}

	var err error
	if d == fftypes.DomainComplex {
		t.pairs = n
		t.cplan, err = dft.NewPlan(n)
	} else {
		t.pairs = n / 2
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
	pairs  int
	domain fftypes.Domain
	cplan  *dft.Plan
	rplan  *dft.RealPlan
	spec   []complex64
	canon  []float32
}

func (t *transform) Len() int {
	return t.n
}

func (t *transform) Domain() fftypes.Domain {
	return t.domain
}

// Forward computes the forward transform into the native layout.
func (t *transform) Forward(dst, src, _ []float32) {
	t.forwardCanonical(src)
	packNative(dst, t.canon, t.pairs)
}

// Backward computes the unnormalized inverse from the native layout.
func (t *transform) Backward(dst, src, _ []float32) {
	unpackNative(t.canon, src, t.pairs)
	t.backwardCanonical(dst, t.canon)
}

// ForwardOrdered computes the forward transform directly in canonical
// ordering, with no intermediate reorder step.
func (t *transform) ForwardOrdered(dst, src, _ []float32) {
	t.forwardCanonical(src)
	copy(dst, t.canon)
}

// BackwardOrdered computes the unnormalized inverse from a canonical
// spectrum.
func (t *transform) BackwardOrdered(dst, src, _ []float32) {
	copy(t.canon, src)
	t.backwardCanonical(dst, t.canon)
}

// Reorder relabels a spectrum between the native block layout and the
// canonical ordered layout. dst must not alias src. Reorder only permutes
// values, so one direction followed by the other restores the input
// exactly.
func (t *transform) Reorder(dst, src []float32, dir fftypes.Direction) {
	if dir == fftypes.ToCanonical {
		unpackNative(dst, src, t.pairs)
		return
	}

	packNative(dst, src, t.pairs)
}

func (t *transform) Close() {
	t.cplan = nil
	t.rplan = nil
	t.spec = nil
	t.canon = nil
}

// forwardCanonical computes the canonical-ordered spectrum of src into
// t.canon. All call paths funnel through here, so in-place and
// out-of-place invocations are bit-identical by construction.
func (t *transform) forwardCanonical(src []float32) {
	if t.domain == fftypes.DomainComplex {
		t.cplan.Forward(asComplex(t.canon, t.n), asComplex(src, t.n))
		return
	}

	t.rplan.Forward(t.spec, src)
	packCanonicalReal(t.canon, t.spec, t.n)
}

func (t *transform) backwardCanonical(dst, canon []float32) {
	if t.domain == fftypes.DomainComplex {
		t.cplan.Inverse(asComplex(dst, t.n), asComplex(canon, t.n))
		return
	}

	unpackCanonicalReal(t.spec, canon, t.n)
	t.rplan.Inverse(dst, t.spec)
}

// asComplex reinterprets an interleaved re/im float32 buffer as complex64.
func asComplex(buf []float32, n int) []complex64 {
	return unsafe.Slice((*complex64)(unsafe.Pointer(&buf[0])), n)
}
