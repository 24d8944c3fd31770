package math

import "math"

// Mathematical constants for FFT computations.

// TwoPi is 2Ï€ with full float64 precision.
const TwoPi = 2.0 * math.Pi
