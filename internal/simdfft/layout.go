package simdfft

// Native layout: spectral pairs are grouped into blocks of laneWidth. Block
// b stores the re components of pairs 4b..4b+3 in floats 8b..8b+3 and their
// im components in floats 8b+4..8b+7. In the real domain, pair 0 holds the
// DC bin in its re slot and the Nyquist bin in its im slot.
//
// Canonical layout: pair j occupies floats 2j (re) and 2j+1 (im).

// packNative converts a canonical spectrum into the native block layout.
// dst must not alias src.
func packNative(dst, src []float32, pairs int) {
	for j := 0; j < pairs; j++ {
		base := (j / laneWidth) * (2 * laneWidth)
		lane := j % laneWidth
		dst[base+lane] = src[2*j]
		dst[base+laneWidth+lane] = src[2*j+1]
	}
}

// unpackNative converts a native block layout spectrum into canonical
// ordering. dst must not alias src.
func unpackNative(dst, src []float32, pairs int) {
	for j := 0; j < pairs; j++ {
		base := (j / laneWidth) * (2 * laneWidth)
		lane := j % laneWidth
		dst[2*j] = src[base+lane]
		dst[2*j+1] = src[base+laneWidth+lane]
	}
}

// packCanonicalReal serializes n/2+1 real-signal spectral bins into the
// canonical real layout: dst[0] = DC, dst[1] = Nyquist, then interleaved
// re/im pairs for bins 1..n/2-1.
func packCanonicalReal(dst []float32, spec []complex64, n int) {
	dst[0] = real(spec[0])
	dst[1] = real(spec[n/2])

	for k := 1; k < n/2; k++ {
		dst[2*k] = real(spec[k])
		dst[2*k+1] = imag(spec[k])
	}
}

// unpackCanonicalReal rebuilds spectral bins from the canonical real
// layout. The DC and Nyquist bins carry no imaginary component.
func unpackCanonicalReal(spec []complex64, src []float32, n int) {
	spec[0] = complex(src[0], 0)
	spec[n/2] = complex(src[1], 0)

	for k := 1; k < n/2; k++ {
		spec[k] = complex(src[2*k], src[2*k+1])
	}
}
