package fftharness

import "math"

// Flop-per-butterfly factors of the FFTW speed convention. The counts are
// nominal, so throughput numbers stay comparable across providers that do
// more or less arithmetic internally.
const (
	complexFlopFactor = 5.0
	realFlopFactor    = 2.5
)

// EstimateFlops returns the nominal floating point operation count for
// iterations forward+backward transform pairs of length n.
func EstimateFlops(n int, d Domain, iterations int) float64 {
	factor := realFlopFactor
	if d == DomainComplex {
		factor = complexFlopFactor
	}
	return float64(iterations) * 2 * factor * float64(n) * math.Log2(float64(n))
}

// IterationBudget returns the number of forward+backward pairs a timing
// run of length n executes. The budget shrinks inversely with n so every
// size touches a comparable amount of data.
func IterationBudget(n int) int {
	iter := 5120000 / n * 16
	if iter < 1 {
		iter = 1
	}
	return iter
}

// BenchSizes returns the sweep of transform lengths used by throughput
// runs: powers of two from 64, with the stride widening to 4x once the
// lengths reach 16384.
func BenchSizes() []int {
	var sizes []int
	for n := 64; n < 8192*256; n *= 2 {
		if n >= 16384 {
			n *= 4
		}
		sizes = append(sizes, n)
	}
	return sizes
}
