// Package fftypes holds the shared types of the harness: the transform
// domain and reorder direction enums, and the capability contract every
// FFT back end implements. The canonical aliases live in the root package.
package fftypes

// Domain selects between real-valued and complex-valued transforms.
type Domain int

const (
	// DomainReal is a real-to-complex transform of n float32 samples.
	DomainReal Domain = iota

	// DomainComplex is a complex transform of n interleaved re/im pairs.
	DomainComplex
)

// String returns the short uppercase tag used in harness output.
func (d Domain) String() string {
	if d == DomainComplex {
		return "CPLX"
	}

	return "REAL"
}

// FloatLen returns the number of float32 values a signal buffer of
// transform length n occupies in this domain.
func (d Domain) FloatLen(n int) int {
	if d == DomainComplex {
		return 2 * n
	}

	return n
}

// Direction selects the way a Reorder call converts between spectral layouts.
type Direction int

const (
	// ToCanonical converts a provider's native spectral layout into the
	// canonical ordered layout.
	ToCanonical Direction = iota

	// FromCanonical converts the canonical ordered layout back into the
	// provider's native layout.
	FromCanonical
)

// Transform is a configured transform handle for one (length, domain) pair.
// All slice arguments are float32 signal buffers sized per Domain.FloatLen.
// dst may alias src; implementations must produce bit-identical results
// either way. work is optional scratch and may be nil.
//
// Backward transforms are unnormalized: Backward(Forward(x)) == n*x.
type Transform interface {
	// Len returns the transform length n.
	Len() int

	// Domain returns the transform domain.
	Domain() Domain

	// Forward computes the forward transform in the provider's native
	// spectral ordering.
	Forward(dst, src, work []float32)

	// Backward computes the unnormalized inverse transform from the
	// provider's native spectral ordering.
	Backward(dst, src, work []float32)

	// ForwardOrdered computes the forward transform directly in canonical
	// ordering, without an intermediate reorder step.
	ForwardOrdered(dst, src, work []float32)

	// BackwardOrdered computes the unnormalized inverse transform from a
	// canonical-ordered spectrum.
	BackwardOrdered(dst, src, work []float32)

	// Close releases all provider-owned resources tied to this handle.
	Close()
}

// Reorderer converts spectra between native and canonical layouts.
// Reorder is pure relabeling: it permutes values and never recomputes,
// so ToCanonical followed by FromCanonical restores the input exactly.
type Reorderer interface {
	Reorder(dst, src []float32, dir Direction)
}

// Convolver multiplies two native-ordered spectra pointwise and accumulates:
// acc[i] += scale * (a (*) b)[i]. In the real domain the first spectral pair
// carries the DC and Nyquist bins, which are purely real and multiplied as
// real scalars.
type Convolver interface {
	ConvolveAccumulate(a, b, acc []float32, scale float32)
}

// Provider is an FFT back end that can be validated and benchmarked.
type Provider interface {
	// Name identifies the provider in reports.
	Name() string

	// LaneWidth returns the width of the native SIMD lane the provider's
	// kernels are built around, >= 1. Used only to normalize benchmark
	// iteration budgets across providers.
	LaneWidth() int

	// Supports reports whether the provider can transform length n in
	// domain d. Unsupported combinations are skipped, never errors.
	Supports(n int, d Domain) bool

	// Setup builds a transform handle. It fails with an error when the
	// length is unsupported by this provider.
	Setup(n int, d Domain) (Transform, error)
}
