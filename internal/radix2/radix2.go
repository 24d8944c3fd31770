// Package radix2 is an optional benchmark-only back end: an iterative
// radix-2 complex64 FFT restricted to power-of-two lengths and the complex
// domain. It carries no reorder or convolve capability and is never
// validated against the reference; the harness benchmarks it when a
// requested (length, domain) pair falls inside its narrow support set and
// silently skips it otherwise.
package radix2

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-fft-harness/internal/dft"
	"github.com/cwbudde/algo-fft-harness/internal/fftypes"
	m "github.com/cwbudde/algo-fft-harness/internal/math"
)

// Provider is the power-of-two radix-2 back end.
type Provider struct{}

// New returns the radix-2 provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in reports.
func (*Provider) Name() string {
	return "radix2"
}

// LaneWidth returns 1: the kernel processes one signal per call.
func (*Provider) LaneWidth() int {
	return 1
}

// Supports accepts power-of-two lengths >= 2 in the complex domain only.
func (*Provider) Supports(n int, d fftypes.Domain) bool {
	return d == fftypes.DomainComplex && n >= 2 && m.IsPowerOf2(n)
}

// Setup builds a transform handle for (n, d).
func (p *Provider) Setup(n int, d fftypes.Domain) (fftypes.Transform, error) {
	if !p.Supports(n, d) {
		return nil, dft.ErrInvalidLength
	}

	twiddle := make([]complex64, n/2)
	for k := range twiddle {
		angle := -m.TwoPi * float64(k) / float64(n)
		twiddle[k] = complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
	}

	return &transform{
		n:       n,
		twiddle: twiddle,
		bitrev:  m.ComputeBitReversalIndices(n),
		scratch: make([]complex64, n),
	}, nil
}

type transform struct {
	n       int
	twiddle []complex64
	bitrev  []int
	scratch []complex64
}

func (t *transform) Len() int {
	return t.n
}

func (t *transform) Domain() fftypes.Domain {
	return fftypes.DomainComplex
}

func (t *transform) Forward(dst, src, _ []float32) {
	t.run(dst, src, false)
}

func (t *transform) Backward(dst, src, _ []float32) {
	t.run(dst, src, true)
}

// ForwardOrdered is identical to Forward: the kernel's output ordering is
// already canonical.
func (t *transform) ForwardOrdered(dst, src, work []float32) {
	t.Forward(dst, src, work)
}

func (t *transform) BackwardOrdered(dst, src, work []float32) {
	t.Backward(dst, src, work)
}

func (t *transform) Close() {
	t.twiddle = nil
	t.bitrev = nil
	t.scratch = nil
}

// run executes the decimation-in-time kernel through the scratch buffer so
// aliased and distinct dst/src follow the same code path.
func (t *transform) run(dst, src []float32, inverse bool) {
	n := t.n
	work := t.scratch
	in := unsafe.Slice((*complex64)(unsafe.Pointer(&src[0])), n)

	for i := 0; i < n; i++ {
		work[i] = in[i]
	}

	for i := 0; i < n; i++ {
		j := t.bitrev[i]
		if j > i {
			work[i], work[j] = work[j], work[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		step := n / size

		for base := 0; base < n; base += size {
			for k := 0; k < half; k++ {
				w := t.twiddle[k*step]
				if inverse {
					w = complex(real(w), -imag(w))
				}

				a := work[base+k]
				b := w * work[base+k+half]
				work[base+k] = a + b
				work[base+k+half] = a - b
			}
		}
	}

	out := unsafe.Slice((*complex64)(unsafe.Pointer(&dst[0])), n)
	copy(out, work)
}
