// Package dft implements a scalar mixed-radix discrete Fourier transform
// for float32 signals. Accumulation happens in complex128, which keeps the
// engine well inside the harness tolerance at every supported length. The
// decomposition is recursive Cooley-Tukey over the prime factorization, so
// any length works; highly composite lengths (2^a 3^b 5^c) run fastest.
package dft

import (
	"errors"
	"math"

	m "github.com/cwbudde/algo-fft-harness/internal/math"
)

// ErrInvalidLength is returned when the transform size is not positive.
var ErrInvalidLength = errors.New("dft: invalid transform length")

// Plan computes forward and unnormalized inverse complex DFTs of a fixed
// length. Plans are not safe for concurrent use; the harness is
// single-threaded throughout.
type Plan struct {
	n       int
	twiddle []complex128 // twiddle[k] = exp(-2*pi*i*k/n)
	in      []complex128
	out     []complex128
}

// NewPlan creates a complex DFT plan for length n.
func NewPlan(n int) (*Plan, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	twiddle := make([]complex128, n)
	for k := 0; k < n; k++ {
		angle := -m.TwoPi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return &Plan{
		n:       n,
		twiddle: twiddle,
		in:      make([]complex128, n),
		out:     make([]complex128, n),
	}, nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes the forward DFT. dst may alias src.
// Caller guarantees: len(dst) >= n, len(src) >= n.
func (p *Plan) Forward(dst, src []complex64) {
	p.run(dst, src, false)
}

// Inverse computes the unnormalized inverse DFT, so Inverse(Forward(x))
// yields n*x. dst may alias src.
// Caller guarantees: len(dst) >= n, len(src) >= n.
func (p *Plan) Inverse(dst, src []complex64) {
	p.run(dst, src, true)
}

// run snapshots the input, transforms into the output scratch, and copies
// out. Going through the scratch pair makes in-place and out-of-place calls
// follow the identical code path, which the harness checks bit for bit.
func (p *Plan) run(dst, src []complex64, inverse bool) {
	n := p.n
	for i := 0; i < n; i++ {
		p.in[i] = complex128(src[i])
	}

	p.recurse(p.out, p.in, n, 1, 1, inverse)

	for i := 0; i < n; i++ {
		dst[i] = complex64(p.out[i])
	}
}

// recurse computes the DFT of the strided sequence src[0], src[stride], ...
// (length n) into the contiguous dst[0:n]. rootStride relates the current
// sub-transform's roots of unity to the full-length twiddle table:
// W_n^t == twiddle[(t mod n) * rootStride].
func (p *Plan) recurse(dst, src []complex128, n, stride, rootStride int, inverse bool) {
	switch n {
	case 1:
		dst[0] = src[0]
		return
	case 2:
		a, b := src[0], src[stride]
		dst[0] = a + b
		dst[1] = a - b

		return
	}

	r := m.SmallestPrimeFactor(n)
	half := n / r

	for q := 0; q < r; q++ {
		p.recurse(dst[q*half:(q+1)*half], src[q*stride:], half, stride*r, rootStride*r, inverse)
	}

	p.combine(dst, n, r, rootStride, inverse)
}

// combine merges r sub-DFTs of length n/r stored contiguously in dst into
// the length-n DFT, in place. For each residue k the column values
// dst[q*m+k] are gathered first, so reads never see partially written data.
func (p *Plan) combine(dst []complex128, n, r, rootStride int, inverse bool) {
	var lanes [8]complex128

	u := lanes[:]
	if r > len(lanes) {
		u = make([]complex128, r)
	}

	mlen := n / r

	for k := 0; k < mlen; k++ {
		for q := 0; q < r; q++ {
			u[q] = dst[q*mlen+k]
		}

		for j := 0; j < r; j++ {
			t := j*mlen + k
			sum := u[0]

			for q := 1; q < r; q++ {
				w := p.twiddle[(q*t%n)*rootStride]
				if inverse {
					w = complex(real(w), -imag(w))
				}

				sum += w * u[q]
			}

			dst[t] = sum
		}
	}
}
