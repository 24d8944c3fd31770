package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	fftharness "github.com/cwbudde/algo-fft-harness"
	"github.com/cwbudde/algo-fft-harness/internal/cpu"
)

// initConfig wires environment overrides: every flag can also be set via
// FFTBENCH_<NAME>, e.g. FFTBENCH_CLOCK=wall.
func initConfig() {
	viper.SetEnvPrefix("FFTBENCH")
	viper.AutomaticEnv()

	if viper.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}
}

// selectedClock resolves the configured timing source.
func selectedClock() (fftharness.Clock, error) {
	switch name := viper.GetString("clock"); name {
	case "cycle":
		return cpu.CycleClock{}, nil
	case "wall":
		return cpu.WallClock{}, nil
	default:
		return nil, fmt.Errorf("unknown clock %q (want cycle or wall)", name)
	}
}
