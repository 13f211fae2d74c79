package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	lutgen "github.com/tphakala/go-dac-lutgen"
	"github.com/tphakala/go-dac-lutgen/internal/chart"
	"github.com/tphakala/go-dac-lutgen/internal/emit"
)

// parseMode maps the -mode flag to a resampling mode.
func parseMode(s string) (lutgen.ResampleMode, error) {
	switch strings.ToLower(s) {
	case "linear":
		return lutgen.ModeLinear, nil
	case "stride":
		return lutgen.ModeStride, nil
	default:
		return lutgen.ModeLinear, fmt.Errorf("unknown resample mode %q (want linear or stride)", s)
	}
}

// buildSources assembles the batch: the three basic waveforms followed
// by one audio source per positional argument.
func buildSources(paths []string) []lutgen.Source {
	sources := lutgen.BasicSources()
	for _, path := range paths {
		sources = append(sources, lutgen.Source{
			Name: tableName(path),
			Path: path,
		})
	}
	return sources
}

// tableName derives a C identifier from an audio file path:
// "samples/My Piano.wav" becomes "my_piano_lut".
func tableName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}

	name := b.String()
	if name == "" || unicode.IsDigit(rune(name[0])) {
		name = "_" + name
	}
	return name + "_lut"
}

// writeOutput emits the C source to the given path, or stdout for "-".
func writeOutput(path string, tables []*lutgen.Table, cfg *lutgen.Config) error {
	opts := emit.Options{Config: cfg}
	if path == "-" {
		return emit.WriteC(os.Stdout, tables, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := emit.WriteC(f, tables, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// writeCharts renders the diagnostic HTML page.
func writeCharts(path string, tables []*lutgen.Table, resolution int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := chart.Render(f, tables, resolution); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// printSummary reports the finished batch.
func printSummary(w io.Writer, tables []*lutgen.Table, cfg *lutgen.Config, output, chartPath string, elapsed time.Duration) {
	timing := cfg.Timing()

	fmt.Fprintf(w, "Generated %d lookup tables (%d samples each, %d total) in %.0fms\n",
		len(tables), cfg.Samples, len(tables)*cfg.Samples, float64(elapsed.Milliseconds()))
	fmt.Fprintf(w, "  DAC resolution: %d-bit (0-%d)\n", cfg.Bits, cfg.Resolution())
	fmt.Fprintf(w, "  Timer: %d Hz clock, F_SIGNAL %d Hz -> TIM2_TICKS %d (Nyquist %d Hz)\n",
		timing.ClockHz, timing.SignalHz, timing.Ticks(), timing.NyquistHz())

	for _, table := range tables {
		switch {
		case table.Fallback:
			fmt.Fprintf(w, "  %-20s FALLBACK (%v)\n", table.Name, table.Err)
		case table.Audio:
			fmt.Fprintf(w, "  %-20s audio, %d Hz source\n", table.Name, table.SampleRate)
		default:
			fmt.Fprintf(w, "  %-20s synthetic\n", table.Name)
		}
	}

	if output == "-" {
		fmt.Fprintf(w, "C arrays written to stdout\n")
	} else {
		fmt.Fprintf(w, "C arrays written to %s\n", output)
	}
	if chartPath != "" {
		fmt.Fprintf(w, "Diagnostic charts written to %s\n", chartPath)
	}
}
