package fftharness

import "errors"

var (
	// ErrUnsupportedLength is returned when a provider cannot handle the
	// requested transform length in the requested domain.
	ErrUnsupportedLength = errors.New("fftharness: unsupported transform length")

	// ErrMissingCapability is returned when a correctness check needs a
	// reorder or convolution operation the provider does not implement.
	ErrMissingCapability = errors.New("fftharness: provider lacks a required capability")

	// ErrUnknownProvider is returned by registry lookups for names that
	// were never registered.
	ErrUnknownProvider = errors.New("fftharness: unknown provider")
)
