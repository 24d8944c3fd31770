package fftharness

import (
	"fmt"

	"github.com/cwbudde/algo-fft-harness/internal/radix2"
	"github.com/cwbudde/algo-fft-harness/internal/reference"
	"github.com/cwbudde/algo-fft-harness/internal/simdfft"
)

// Registry holds the providers a run compares. Registration order is
// preserved so reports stay stable.
type Registry struct {
	providers []Provider
}

// NewRegistry returns a registry seeded with the given providers.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.Register(p)
	}
	return r
}

// DefaultRegistry returns the built-in provider set: the scalar
// reference, the vectorized transform under test, and the power-of-two
// benchmark baseline.
func DefaultRegistry() *Registry {
	return NewRegistry(
		reference.New(),
		simdfft.New(),
		radix2.New(),
	)
}

// Register appends p, replacing any provider already registered under the
// same name.
func (r *Registry) Register(p Provider) {
	for i, existing := range r.providers {
		if existing.Name() == p.Name() {
			r.providers[i] = p
			return
		}
	}
	r.providers = append(r.providers, p)
}

// Providers returns the registered providers in registration order.
func (r *Registry) Providers() []Provider {
	out := make([]Provider, len(r.providers))
	copy(out, r.providers)
	return out
}

// Lookup returns the provider registered under name.
func (r *Registry) Lookup(name string) (Provider, error) {
	for _, p := range r.providers {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

// MaxLaneWidth returns the widest native lane among the registered
// providers, or 1 for an empty registry. Benchmark iteration budgets are
// normalized against this width.
func (r *Registry) MaxLaneWidth() int {
	width := 1
	for _, p := range r.providers {
		if w := p.LaneWidth(); w > width {
			width = w
		}
	}
	return width
}
