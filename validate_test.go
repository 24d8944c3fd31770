package fftharness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fft-harness/internal/radix2"
	"github.com/cwbudde/algo-fft-harness/internal/reference"
	"github.com/cwbudde/algo-fft-harness/internal/simdfft"
)

func TestValidateVectorProviderAllSizes(t *testing.T) {
	t.Parallel()

	v := NewValidator(reference.New(), 1)
	put := simdfft.New()

	require.NoError(t, v.ValidateAll(put, DomainComplex))
	require.NoError(t, v.ValidateAll(put, DomainReal))
}

func TestValidateSingleCases(t *testing.T) {
	t.Parallel()

	v := NewValidator(reference.New(), 42)
	put := simdfft.New()

	require.NoError(t, v.Validate(put, 64, DomainReal))
	require.NoError(t, v.Validate(put, 1024, DomainComplex))
}

func TestValidateRejectsShortRealTransforms(t *testing.T) {
	t.Parallel()

	v := NewValidator(reference.New(), 1)
	err := v.Validate(simdfft.New(), 16, DomainReal)
	assert.ErrorIs(t, err, ErrUnsupportedLength)
}

func TestValidateUnsupportedLength(t *testing.T) {
	t.Parallel()

	v := NewValidator(reference.New(), 1)
	err := v.Validate(simdfft.New(), 112, DomainComplex)
	assert.ErrorIs(t, err, ErrUnsupportedLength)
}

func TestValidateRequiresCapabilities(t *testing.T) {
	t.Parallel()

	v := NewValidator(reference.New(), 1)

	// The power-of-two baseline has no reorder or convolution support and
	// is benchmark-only.
	err := v.Validate(radix2.New(), 64, DomainComplex)
	assert.ErrorIs(t, err, ErrMissingCapability)
}

// fullTransform is the capability surface the validator exercises.
type fullTransform interface {
	Transform
	Reorderer
	Convolver
}

// corruptProvider wraps another provider and perturbs one slot of every
// ordered forward spectrum.
type corruptProvider struct {
	Provider
}

func (p corruptProvider) Setup(n int, d Domain) (Transform, error) {
	h, err := p.Provider.Setup(n, d)
	if err != nil {
		return nil, err
	}
	return corruptTransform{h.(fullTransform)}, nil
}

type corruptTransform struct {
	fullTransform
}

func (t corruptTransform) ForwardOrdered(dst, src, work []float32) {
	t.fullTransform.ForwardOrdered(dst, src, work)
	dst[2] += 1e6
}

func TestValidateReportsMismatch(t *testing.T) {
	t.Parallel()

	v := NewValidator(reference.New(), 7)
	err := v.Validate(corruptProvider{simdfft.New()}, 64, DomainComplex)
	require.Error(t, err)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "simdfft", mismatch.Provider)
	assert.Equal(t, 64, mismatch.N)
	assert.Equal(t, DomainComplex, mismatch.Domain)
	assert.Equal(t, 1, mismatch.Pass, "native-order pass must stay clean")
	assert.Equal(t, "forward spectrum", mismatch.Check)
	assert.Equal(t, 2, mismatch.Index)
}

func TestValidateIsDeterministic(t *testing.T) {
	t.Parallel()

	run := func() error {
		v := NewValidator(reference.New(), 1234)
		return v.Validate(simdfft.New(), 96, DomainReal)
	}
	require.NoError(t, run())
	require.NoError(t, run())
}
