package cpu

import (
	"testing"
	"time"
)

func TestCycleCounterMonotonic(t *testing.T) {
	t.Parallel()

	prev := ReadCycleCounter()
	for rangeIdx := 0; rangeIdx < 1000; rangeIdx++ {
		cur := ReadCycleCounter()
		if cur < prev {
			t.Fatalf("counter went backwards: %d -> %d", prev, cur)
		}

		prev = cur
	}
}

func TestCyclesToSecondsTracksWallTime(t *testing.T) {
	t.Parallel()

	const sleep = 20 * time.Millisecond

	start := ReadCycleCounter()
	time.Sleep(sleep)
	seconds := CyclesToSeconds(CyclesSince(start))

	if seconds < sleep.Seconds()/2 || seconds > sleep.Seconds()*10 {
		t.Errorf("measured %.6fs for a %.6fs sleep", seconds, sleep.Seconds())
	}
}

func TestClocksAgree(t *testing.T) {
	t.Parallel()

	clocks := []interface {
		Now() int64
		Seconds(int64) float64
		Name() string
	}{CycleClock{}, WallClock{}}

	for _, c := range clocks {
		start := c.Now()
		time.Sleep(5 * time.Millisecond)
		seconds := c.Seconds(c.Now() - start)

		if seconds <= 0 {
			t.Errorf("%s clock measured %.9fs, want > 0", c.Name(), seconds)
		}
	}
}

func TestDetectFeaturesLaneWidth(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()
	if f.Architecture == "" {
		t.Error("empty architecture")
	}

	if w := f.MaxLaneWidthFloat32(); w < 1 || w > 16 {
		t.Errorf("MaxLaneWidthFloat32 = %d, out of range", w)
	}
}
