package cpu

import "time"

// CycleClock measures elapsed time with the calibrated cycle counter.
// The zero value is ready to use.
type CycleClock struct{}

// Now returns the current counter reading.
func (CycleClock) Now() int64 {
	return ReadCycleCounter()
}

// Seconds converts an elapsed counter delta to seconds.
func (CycleClock) Seconds(elapsed int64) float64 {
	return CyclesToSeconds(elapsed)
}

// Name identifies the timing source in reports.
func (CycleClock) Name() string {
	return "cycle"
}

// WallClock measures elapsed time with the runtime's monotonic wall clock.
// The zero value is ready to use.
type WallClock struct{}

// Now returns nanoseconds since an arbitrary fixed origin.
func (WallClock) Now() int64 {
	return time.Since(baseTime).Nanoseconds()
}

// Seconds converts an elapsed nanosecond delta to seconds.
func (WallClock) Seconds(elapsed int64) float64 {
	return float64(elapsed) / 1e9
}

// Name identifies the timing source in reports.
func (WallClock) Name() string {
	return "wall"
}
