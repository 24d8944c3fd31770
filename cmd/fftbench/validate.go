package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	fftharness "github.com/cwbudde/algo-fft-harness"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Cross-check every capable provider against the scalar reference",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func runValidate() error {
	reg := fftharness.DefaultRegistry()
	ref, err := reg.Lookup("reference")
	if err != nil {
		return err
	}

	seed := viper.GetInt64("seed")

	for _, put := range reg.Providers() {
		if put.Name() == ref.Name() {
			continue
		}
		if err := validateProvider(ref, put, seed); err != nil {
			return err
		}
	}

	fmt.Println(okStyle.Render("validation passed"))
	return nil
}

func validateProvider(ref, put fftharness.Provider, seed int64) error {
	v := fftharness.NewValidator(ref, seed)

	for _, d := range []fftharness.Domain{fftharness.DomainComplex, fftharness.DomainReal} {
		for _, n := range fftharness.TestSizes {
			if d == fftharness.DomainReal && n < fftharness.MinRealLength {
				continue
			}
			if !put.Supports(n, d) {
				logger.Debug("size unsupported", "provider", put.Name(), "domain", d, "n", n)
				continue
			}

			err := v.Validate(put, n, d)
			if errors.Is(err, fftharness.ErrMissingCapability) {
				logger.Info("benchmark-only provider, skipping correctness checks",
					"provider", put.Name())
				return nil
			}
			if err != nil {
				fmt.Println(failStyle.Render(fmt.Sprintf("%s %s FAILED for N=%d", d, put.Name(), n)))
				return err
			}

			fmt.Printf("%s %s is OK for N=%d\n", d, put.Name(), n)
		}
	}

	return nil
}
