package fftharness

import (
	"runtime"

	"github.com/cwbudde/algo-fft-harness/internal/cpu"
	"github.com/cwbudde/algo-fft-harness/internal/memory"
)

// Clock is the timing source a benchmark run reads. Now returns a
// monotonic reading in clock-specific units and Seconds converts an
// elapsed delta to seconds.
type Clock interface {
	Now() int64
	Seconds(elapsed int64) float64
	Name() string
}

// Result is one timed benchmark measurement.
type Result struct {
	Provider   string
	N          int
	Domain     Domain
	Iterations int
	MFlops     float64
	NsPerRun   float64
}

// Benchmarker times forward+backward transform pairs over aligned
// buffers. The zero value is not usable; construct with NewBenchmarker.
type Benchmarker struct {
	clock    Clock
	budget   func(n int) int
	normLane int
}

// NewBenchmarker returns a benchmarker that times against clock and
// normalizes iteration budgets against normLane, the widest native lane
// among the providers being compared. A nil clock selects the calibrated
// cycle counter.
func NewBenchmarker(clock Clock, normLane int) *Benchmarker {
	if clock == nil {
		clock = cpu.CycleClock{}
	}
	if normLane < 1 {
		normLane = 1
	}
	return &Benchmarker{
		clock:    clock,
		budget:   IterationBudget,
		normLane: normLane,
	}
}

// SetBudget overrides the per-size iteration budget. Intended for tests
// and quick smoke runs; the default is IterationBudget.
func (b *Benchmarker) SetBudget(budget func(n int) int) {
	if budget != nil {
		b.budget = budget
	}
}

// Clock returns the timing source measurements are taken with.
func (b *Benchmarker) Clock() Clock {
	return b.clock
}

// iterations scales the base budget so a narrow-lane provider runs
// proportionally fewer pairs than the widest-lane provider at the same
// length, keeping wall time per case comparable.
func (b *Benchmarker) iterations(p Provider, n int) int {
	iter := b.budget(n) * p.LaneWidth() / b.normLane
	if iter < 1 {
		iter = 1
	}
	return iter
}

// Run times iterations of Forward+Backward for one provider and case.
// Input, output and work buffers are distinct aligned allocations; the
// input is all zeros, which exercises the full dataflow without risking
// overflow at large lengths.
func (b *Benchmarker) Run(p Provider, n int, d Domain) (Result, error) {
	if !p.Supports(n, d) {
		return Result{}, ErrUnsupportedLength
	}
	h, err := p.Setup(n, d)
	if err != nil {
		return Result{}, err
	}
	defer h.Close()

	nf := d.FloatLen(n)
	src, _ := memory.AllocAlignedFloat32(nf)
	dst, _ := memory.AllocAlignedFloat32(nf)
	work, _ := memory.AllocAlignedFloat32(nf)

	iter := b.iterations(p, n)
	runtime.GC()

	start := b.clock.Now()
	for i := 0; i < iter; i++ {
		h.Forward(dst, src, work)
		h.Backward(dst, src, work)
	}
	elapsed := b.clock.Seconds(b.clock.Now() - start)

	// Guard against a clock too coarse to observe the loop.
	if elapsed <= 0 {
		elapsed = 1e-16
	}

	return Result{
		Provider:   p.Name(),
		N:          n,
		Domain:     d,
		Iterations: iter,
		MFlops:     EstimateFlops(n, d, iter) / 1e6 / elapsed,
		NsPerRun:   elapsed / float64(2*iter) * 1e9,
	}, nil
}

// Sweep runs the benchmark for every provider in reg over sizes, calling
// emit for each measurement. Unsupported cases are skipped.
func (b *Benchmarker) Sweep(reg *Registry, sizes []int, d Domain, emit func(Result)) error {
	for _, n := range sizes {
		for _, p := range reg.Providers() {
			if !p.Supports(n, d) {
				continue
			}
			res, err := b.Run(p, n, d)
			if err != nil {
				return err
			}
			if emit != nil {
				emit(res)
			}
		}
	}
	return nil
}
