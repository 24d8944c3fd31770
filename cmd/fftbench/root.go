package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

var rootCmd = &cobra.Command{
	Use:   "fftbench",
	Short: "Validate and benchmark interchangeable FFT back ends",
	Long: titleStyle.Render("fftbench") + " cross-checks every registered FFT provider against a\n" +
		"scalar reference transform and measures forward+backward throughput\n" +
		"across a sweep of transform lengths.\n\n" +
		"Without a subcommand it runs self-test, validation and the benchmark\n" +
		"sweep in order.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSelftest(); err != nil {
			return err
		}
		if err := runValidate(); err != nil {
			return err
		}
		return runBench()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.Int64("seed", 1, "seed for the validation input generator")
	pf.String("clock", "cycle", "timing source: cycle or wall")
	pf.BoolP("verbose", "v", false, "enable debug logging")

	cobra.CheckErr(viper.BindPFlag("seed", pf.Lookup("seed")))
	cobra.CheckErr(viper.BindPFlag("clock", pf.Lookup("clock")))
	cobra.CheckErr(viper.BindPFlag("verbose", pf.Lookup("verbose")))

	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(benchCmd)
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
