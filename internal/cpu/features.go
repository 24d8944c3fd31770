package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes the CPU capabilities relevant to the harness: they feed
// the environment self-check report and lane-width sanity checks.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// MaxLaneWidthFloat32 returns the widest float32 SIMD lane count the host
// supports, or 1 when no vector unit is detected.
func (f Features) MaxLaneWidthFloat32() int {
	switch {
	case f.HasAVX512:
		return 16
	case f.HasAVX2:
		return 8
	case f.HasSSE2, f.HasNEON:
		return 4
	default:
		return 1
	}
}
