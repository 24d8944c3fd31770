package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	fftharness "github.com/cwbudde/algo-fft-harness"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure forward+backward throughput for every provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench()
	},
}

func init() {
	benchCmd.Flags().String("sizes", "", "comma-separated transform lengths (default: the standard sweep)")
	benchCmd.Flags().String("domain", "both", "transform domain: real, cplx or both")
	cobra.CheckErr(viper.BindPFlag("sizes", benchCmd.Flags().Lookup("sizes")))
	cobra.CheckErr(viper.BindPFlag("domain", benchCmd.Flags().Lookup("domain")))
}

func runBench() error {
	clock, err := selectedClock()
	if err != nil {
		return err
	}

	sizes := fftharness.BenchSizes()
	if list := viper.GetString("sizes"); list != "" {
		sizes = parseSizes(list)
		if len(sizes) == 0 {
			return fmt.Errorf("no usable sizes in %q", list)
		}
	}

	domains, err := selectedDomains(viper.GetString("domain"))
	if err != nil {
		return err
	}

	reg := fftharness.DefaultRegistry()
	b := fftharness.NewBenchmarker(clock, reg.MaxLaneWidth())

	fmt.Println(headerStyle.Render(fmt.Sprintf("%8s  %5s  %-12s  %10s  %12s  %10s",
		"N", "dom", "provider", "MFLOPS", "ns/run", "iters")))

	for _, d := range domains {
		err := b.Sweep(reg, sizes, d, func(r fftharness.Result) {
			fmt.Printf("%8d  %5s  %-12s  %10.1f  %12.1f  %10d\n",
				r.N, r.Domain, r.Provider, r.MFlops, r.NsPerRun, r.Iterations)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func selectedDomains(name string) ([]fftharness.Domain, error) {
	switch name {
	case "real":
		return []fftharness.Domain{fftharness.DomainReal}, nil
	case "cplx":
		return []fftharness.Domain{fftharness.DomainComplex}, nil
	case "both":
		return []fftharness.Domain{fftharness.DomainReal, fftharness.DomainComplex}, nil
	default:
		return nil, fmt.Errorf("unknown domain %q (want real, cplx or both)", name)
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
