// Command lutgen generates DAC lookup tables as C source arrays.
//
// Usage:
//
//	lutgen                                  # three basic waveforms
//	lutgen piano.wav guitar.wav drum.wav    # plus resampled audio tables
//	lutgen -samples 128 -bits 12 -chart luts.html piano.wav
//	lutgen -out - >> main.c                 # emit to stdout
//
// Defaults may be supplied through LUTGEN_* environment variables or a
// .env file; flags always win.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	lutgen "github.com/tphakala/go-dac-lutgen"
	"github.com/tphakala/go-dac-lutgen/internal/config"
)

const defaultOutputFile = "lut_arrays.c"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	defaults, err := config.Load(config.Defaults{
		Samples:  lutgen.DefaultSamples,
		Bits:     lutgen.DefaultBits,
		ClockHz:  lutgen.DefaultClockHz,
		SignalHz: lutgen.DefaultSignalHz,
		Mode:     "linear",
		Output:   defaultOutputFile,
	})
	if err != nil {
		return err
	}

	samples := flag.Int("samples", defaults.Samples, "Samples per lookup table (NS)")
	bits := flag.Int("bits", defaults.Bits, "DAC resolution in bits")
	clock := flag.Int("clock", defaults.ClockHz, "Timer clock frequency in Hz")
	freq := flag.Int("freq", defaults.SignalHz, "Target output frequency in Hz")
	mode := flag.String("mode", defaults.Mode, "Resampling mode: linear, stride")
	output := flag.String("out", defaults.Output, "Output C file ('-' for stdout)")
	chartPath := flag.String("chart", defaults.Chart, "Write diagnostic HTML charts to this file")
	parallel := flag.Bool("parallel", false, "Process sources concurrently")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	resampleMode, err := parseMode(*mode)
	if err != nil {
		return err
	}

	cfg := &lutgen.Config{
		Samples:        *samples,
		Bits:           *bits,
		ClockHz:        *clock,
		SignalHz:       *freq,
		Mode:           resampleMode,
		EnableParallel: *parallel,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sources := buildSources(flag.Args())
	if *verbose {
		log.Printf("Generating %d tables of %d samples at %d-bit resolution",
			len(sources), cfg.Samples, cfg.Bits)
		log.Printf("Resampling mode: %s", cfg.Mode)
	}

	start := time.Now()
	tables, err := lutgen.Batch(cfg, sources)
	if err != nil {
		return err
	}

	if err := writeOutput(*output, tables, cfg); err != nil {
		return err
	}

	if *chartPath != "" {
		if err := writeCharts(*chartPath, tables, cfg.Resolution()); err != nil {
			return err
		}
	}

	printSummary(os.Stderr, tables, cfg, *output, *chartPath, time.Since(start))
	return nil
}
