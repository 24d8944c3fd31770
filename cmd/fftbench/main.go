// fftbench validates and benchmarks the FFT providers shipped with the
// harness. Run without a subcommand it performs the full sequence:
// self-test, cross-validation against the scalar reference, and the
// throughput sweep.
package main

func main() {
	Execute()
}
