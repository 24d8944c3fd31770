package fftharness

// RotateNyquist converts a real spectrum from the trailing-Nyquist layout
// [DC, re1, im1, ..., Nyquist] produced by the scalar reference transform
// into the canonical layout [DC, Nyquist, re1, im1, ...]. The rotation is
// performed in place.
func RotateNyquist(spectrum []float32) {
	n := len(spectrum)
	if n < 3 {
		return
	}
	nyquist := spectrum[n-1]
	copy(spectrum[2:], spectrum[1:n-1])
	spectrum[1] = nyquist
}
