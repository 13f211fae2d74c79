// Package emit renders finished lookup tables as C source: uint16_t
// arrays ready to paste into firmware, followed by the timer parameter
// defines the playback loop needs. It consumes tables only and never
// mutates them.
package emit

import (
	"bufio"
	"fmt"
	"io"

	lutgen "github.com/tphakala/go-dac-lutgen"
)

const (
	// defaultValuesPerLine keeps emitted arrays reviewable in diffs.
	defaultValuesPerLine = 12

	headerRule = "******************************************************************************"
)

// Options controls the emitted source.
type Options struct {
	// Config supplies the table parameters and timer constants.
	Config *lutgen.Config

	// ValuesPerLine is the number of array values per source line.
	// Zero selects the default of 12.
	ValuesPerLine int
}

// WriteC renders all tables and the timer defines to w.
func WriteC(w io.Writer, tables []*lutgen.Table, opts Options) error {
	perLine := opts.ValuesPerLine
	if perLine == 0 {
		perLine = defaultValuesPerLine
	}
	cfg := opts.Config
	timing := cfg.Timing()

	bw := bufio.NewWriter(w)
	writeHeader(bw, cfg, len(tables))

	fmt.Fprintf(bw, "// ========== Basic Waveform Lookup Tables ==========\n")
	fmt.Fprintf(bw, "// Single-cycle waveforms for tone generation\n\n")
	for _, table := range tables {
		if table.Audio {
			continue
		}
		writeArray(bw, table, perLine)
	}

	if hasAudio(tables) {
		fmt.Fprintf(bw, "// ========== Audio File Lookup Tables ==========\n")
		fmt.Fprintf(bw, "// Resampled audio waveforms\n\n")
		for _, table := range tables {
			if !table.Audio {
				continue
			}
			if table.Fallback {
				fmt.Fprintf(bw, "// Decode failed (%v); placeholder sine substituted\n", table.Err)
			}
			fmt.Fprintf(bw, "// Original sample rate: %d Hz\n", table.SampleRate)
			writeArray(bw, table, perLine)
		}
	}

	writeTiming(bw, timing)
	return bw.Flush()
}

// writeHeader emits the leading comment block.
func writeHeader(w io.Writer, cfg *lutgen.Config, tableCount int) {
	fmt.Fprintf(w, "/%s\n", headerRule)
	fmt.Fprintf(w, " * DAC Lookup Tables - AUTO-GENERATED CODE\n")
	fmt.Fprintf(w, " *\n")
	fmt.Fprintf(w, " * Total samples: %d\n", cfg.Samples*tableCount)
	fmt.Fprintf(w, " * Samples per LUT: %d\n", cfg.Samples)
	fmt.Fprintf(w, " * DAC Resolution: %d-bit (0-%d)\n", cfg.Bits, cfg.Resolution())
	fmt.Fprintf(w, " %s/\n\n", headerRule)
}

// writeArray emits one const uint16_t array.
func writeArray(w io.Writer, table *lutgen.Table, perLine int) {
	fmt.Fprintf(w, "const uint16_t %s[%d] = {\n", table.Name, len(table.Data))
	for i := 0; i < len(table.Data); i += perLine {
		end := i + perLine
		if end > len(table.Data) {
			end = len(table.Data)
		}
		fmt.Fprint(w, "    ")
		for j, v := range table.Data[i:end] {
			if j > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%4d", v)
		}
		if end < len(table.Data) {
			fmt.Fprint(w, ",")
		}
		fmt.Fprint(w, "\n")
	}
	fmt.Fprint(w, "};\n\n")
}

// writeTiming emits the timer parameter defines with their derivation.
func writeTiming(w io.Writer, t lutgen.Timing) {
	fmt.Fprintf(w, "// ========== Timing Parameters ==========\n\n")
	fmt.Fprintf(w, "#define NS %d  // Number of samples in each LUT\n", t.Samples)
	fmt.Fprintf(w, "#define TIM2CLK %dUL  // Timer clock frequency in Hz\n\n", t.ClockHz)

	fmt.Fprintf(w, "// F_SIGNAL: Desired output frequency in Hz\n")
	fmt.Fprintf(w, "// Maximum faithful frequency (Nyquist): TIM2CLK / (2 * NS) = %d Hz\n", t.NyquistHz())
	fmt.Fprintf(w, "#define F_SIGNAL %d\n\n", t.SignalHz)

	fmt.Fprintf(w, "// TIM2_TICKS: timer auto-reload value between DAC updates\n")
	fmt.Fprintf(w, "// Formula: TIM2_TICKS = TIM2CLK / (NS * F_SIGNAL)\n")
	fmt.Fprintf(w, "#define TIM2_TICKS (TIM2CLK / (NS * F_SIGNAL))\n\n")

	fmt.Fprintf(w, "// Example calculations:\n")
	fmt.Fprintf(w, "// For F_SIGNAL = %d Hz:  TIM2_TICKS = %d\n", t.SignalHz, t.Ticks())
	fmt.Fprintf(w, "// For F_SIGNAL = 1000 Hz: TIM2_TICKS = %d\n", t.TicksAt(1000))
}

func hasAudio(tables []*lutgen.Table) bool {
	for _, table := range tables {
		if table.Audio {
			return true
		}
	}
	return false
}
