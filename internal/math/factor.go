package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// SmallestPrimeFactor returns the smallest prime factor of n (n >= 2).
func SmallestPrimeFactor(n int) int {
	for _, p := range []int{2, 3, 5} {
		if n%p == 0 {
			return p
		}
	}

	for p := 7; p*p <= n; p += 2 {
		if n%p == 0 {
			return p
		}
	}

	return n
}

// Factorize returns the prime factorization of n in ascending order.
// Returns nil for n < 1, and an empty slice for n == 1.
func Factorize(n int) []int {
	if n < 1 {
		return nil
	}

	factors := make([]int, 0, 16)
	for n > 1 {
		p := SmallestPrimeFactor(n)
		factors = append(factors, p)
		n /= p
	}

	return factors
}

// OnlyFactors reports whether n factors exclusively into the given primes.
func OnlyFactors(n int, primes ...int) bool {
	if n < 1 {
		return false
	}

	for _, p := range primes {
		for n%p == 0 {
			n /= p
		}
	}

	return n == 1
}
