package fftharness

import (
	"github.com/cwbudde/algo-fft-harness/internal/fftypes"
)

// Domain selects between real and complex transforms.
type Domain = fftypes.Domain

// Direction selects which way a spectral reorder runs.
type Direction = fftypes.Direction

// Provider constructs transform handles for the lengths it supports.
type Provider = fftypes.Provider

// Transform is a configured forward/backward transform pair for one
// length and domain.
type Transform = fftypes.Transform

// Reorderer converts between a provider's native spectral ordering and
// the canonical interleaved ordering.
type Reorderer = fftypes.Reorderer

// Convolver multiplies two native-order spectra and accumulates the
// scaled product.
type Convolver = fftypes.Convolver

const (
	DomainReal    = fftypes.DomainReal
	DomainComplex = fftypes.DomainComplex

	ToCanonical   = fftypes.ToCanonical
	FromCanonical = fftypes.FromCanonical
)
