package fftharness

// ToleranceScale is the relative error budget applied to the peak
// magnitude of the reference spectrum.
const ToleranceScale = 1e-3

// MaxAbs returns the largest absolute value in values, or 0 for an empty
// slice.
func MaxAbs(values []float32) float32 {
	var m float32
	for _, v := range values {
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// ToleranceBudget derives the absolute comparison tolerance for one
// validation case from the reference spectrum it was computed against.
func ToleranceBudget(reference []float32) float32 {
	return ToleranceScale * MaxAbs(reference)
}
