package dft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func TestRealPlanMatchesComplexPlan(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(4))

	for _, n := range []int{2, 32, 96, 288, 1024} {
		realPlan, err := NewRealPlan(n)
		if err != nil {
			t.Fatalf("NewRealPlan(%d): %v", n, err)
		}

		if realPlan.SpectrumLen() != n/2+1 {
			t.Fatalf("n=%d: SpectrumLen = %d", n, realPlan.SpectrumLen())
		}

		src := make([]float32, n)
		zsrc := make([]complex64, n)

		for i := range src {
			src[i] = rnd.Float32()
			zsrc[i] = complex(src[i], 0)
		}

		spec := make([]complex64, n/2+1)
		realPlan.Forward(spec, src)

		complexPlan, err := NewPlan(n)
		if err != nil {
			t.Fatal(err)
		}

		want := make([]complex64, n)
		complexPlan.Forward(want, zsrc)

		tol := 1e-3 * maxAbsComplex(want)
		for k := 0; k < n/2+1; k++ {
			if diff := cmplx.Abs(complex128(spec[k] - want[k])); diff > tol {
				t.Fatalf("n=%d bin %d: got %v want %v", n, k, spec[k], want[k])
			}
		}

		// DC and Nyquist must be purely real for real input.
		if im := imag(spec[0]); math.Abs(float64(im)) > float64(tol) {
			t.Errorf("n=%d: DC imaginary part %g", n, im)
		}

		if im := imag(spec[n/2]); math.Abs(float64(im)) > float64(tol) {
			t.Errorf("n=%d: Nyquist imaginary part %g", n, im)
		}
	}
}

func TestRealPlanRoundTrip(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(5))

	for _, n := range []int{32, 64, 96, 2592} {
		plan, err := NewRealPlan(n)
		if err != nil {
			t.Fatalf("NewRealPlan(%d): %v", n, err)
		}

		src := make([]float32, n)
		for i := range src {
			src[i] = rnd.Float32()
		}

		spec := make([]complex64, n/2+1)
		back := make([]float32, n)

		plan.Forward(spec, src)
		plan.Inverse(back, spec)

		tol := float32(1e-3) * float32(maxAbsComplex(spec))
		scale := 1 / float32(n)

		for i := 0; i < n; i++ {
			got := back[i] * scale
			if diff := got - src[i]; diff > tol || diff < -tol {
				t.Fatalf("n=%d sample %d: round trip %g, want %g", n, i, got, src[i])
			}
		}
	}
}

func TestNewRealPlanRejectsOddLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 3, 31} {
		if _, err := NewRealPlan(n); err == nil {
			t.Errorf("NewRealPlan(%d) should fail", n)
		}
	}
}
