package dft

// RealPlan computes forward and unnormalized inverse transforms of real
// float32 signals. The spectrum is exposed as n/2+1 complex bins; bins 0 and
// n/2 are purely real for real input. The transform runs through a
// full-length complex plan, which trades speed for an implementation the
// validator can trust.
type RealPlan struct {
	n    int
	half int
	plan *Plan
	zin  []complex64
	zout []complex64
}

// NewRealPlan creates a real DFT plan. The length n must be even and >= 2.
func NewRealPlan(n int) (*RealPlan, error) {
	if n < 2 || n%2 != 0 {
		return nil, ErrInvalidLength
	}

	plan, err := NewPlan(n)
	if err != nil {
		return nil, err
	}

	return &RealPlan{
		n:    n,
		half: n / 2,
		plan: plan,
		zin:  make([]complex64, n),
		zout: make([]complex64, n),
	}, nil
}

// Len returns the number of real samples.
func (p *RealPlan) Len() int {
	return p.n
}

// SpectrumLen returns the number of complex frequency bins (n/2+1).
func (p *RealPlan) SpectrumLen() int {
	return p.half + 1
}

// Forward computes the real-to-complex DFT.
// Caller guarantees: len(dst) >= n/2+1, len(src) >= n.
func (p *RealPlan) Forward(dst []complex64, src []float32) {
	for i := 0; i < p.n; i++ {
		p.zin[i] = complex(src[i], 0)
	}

	p.plan.Forward(p.zout, p.zin)
	copy(dst[:p.half+1], p.zout[:p.half+1])
}

// Inverse computes the unnormalized complex-to-real inverse DFT, so
// Inverse(Forward(x)) yields n*x. The upper half of the spectrum is
// reconstructed by conjugate symmetry from src.
// Caller guarantees: len(dst) >= n, len(src) >= n/2+1.
func (p *RealPlan) Inverse(dst []float32, src []complex64) {
	p.zin[0] = src[0]
	p.zin[p.half] = src[p.half]

	for k := 1; k < p.half; k++ {
		v := src[k]
		p.zin[k] = v
		p.zin[p.n-k] = complex(real(v), -imag(v))
	}

	p.plan.Inverse(p.zout, p.zin)

	for i := 0; i < p.n; i++ {
		dst[i] = real(p.zout[i])
	}
}
