// Package cpu provides the monotonic timing sources used by the benchmarker
// and CPU feature detection for the SIMD self-check.
package cpu

import "time"

// ReadCycleCounter returns a monotonic cycle-counter reading.
// The counter units are calibrated against wall time at package init, so
// CyclesToSeconds can convert elapsed counts for reporting.
func ReadCycleCounter() int64 {
	return readCycleCounter()
}

// CyclesSince returns the number of cycles elapsed since start.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToSeconds converts an elapsed cycle count to seconds using the
// calibration factor determined at initialization.
func CyclesToSeconds(cycles int64) float64 {
	if cyclesPerNanosecond == 0 {
		// time.Now fallback: counts are already nanoseconds.
		return float64(cycles) / 1e9
	}

	return float64(cycles) / cyclesPerNanosecond / 1e9
}

// readCycleCounter reads the monotonic clock. The nanosecond reading stands
// in for a hardware counter; calibration then resolves to a factor of ~1.
func readCycleCounter() int64 {
	return time.Since(baseTime).Nanoseconds()
}

// cyclesPerNanosecond is the calibrated counter rate. Zero means the
// fallback nanosecond source is in use and no conversion is needed.
var cyclesPerNanosecond float64

// baseTime anchors the counter so readings start near zero and keep the
// monotonic clock component of time.Time.
var baseTime = time.Now()

func init() {
	calibrateCycleCounter()
}

// calibrateCycleCounter measures the counter rate over a short busy-wait.
// If the counter tracks wall time within 1%, the conversion is left as a
// no-op; otherwise the measured rate is used.
func calibrateCycleCounter() {
	const calibrationDuration = 2 * time.Millisecond

	start := time.Now()
	startCycles := readCycleCounter()

	for time.Since(start) < calibrationDuration {
		// Spin.
	}

	cycles := readCycleCounter() - startCycles
	nanoseconds := time.Since(start).Nanoseconds()

	if nanoseconds <= 0 || cycles <= 0 {
		return
	}

	rate := float64(cycles) / float64(nanoseconds)
	if rate > 0.99 && rate < 1.01 {
		return
	}

	cyclesPerNanosecond = rate
}
