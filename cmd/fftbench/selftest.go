package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-fft-harness/internal/cpu"
	"github.com/cwbudde/algo-fft-harness/internal/simdfft"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Check the host environment and the vector layout invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelftest()
	},
}

func runSelftest() error {
	features := cpu.DetectFeatures()
	logger.Info("host",
		"arch", features.Architecture,
		"sse2", features.HasSSE2,
		"avx2", features.HasAVX2,
		"avx512", features.HasAVX512,
		"neon", features.HasNEON,
		"max_lane", features.MaxLaneWidthFloat32(),
	)

	clock, err := selectedClock()
	if err != nil {
		return err
	}
	logger.Info("clock", "source", clock.Name())

	if err := simdfft.SelfCheck(); err != nil {
		fmt.Println(failStyle.Render("self-test FAILED"))
		return err
	}

	fmt.Println(okStyle.Render("self-test passed"))
	return nil
}
