package lutgen

// Resolution limits. Tables are emitted as uint16_t arrays, so the DAC
// width is capped at 16 bits.
const (
	minBits = 1
	maxBits = 16
)

// Defaults matching a 12-bit DAC fed from a 16 MHz timer, with 20000
// total samples split across six waveforms.
const (
	// DefaultBits is the DAC resolution in bits.
	DefaultBits = 12

	// DefaultTotalSamples is the sample budget across all tables.
	DefaultTotalSamples = 20000

	// DefaultWaveformCount is the number of tables sharing the budget.
	DefaultWaveformCount = 6

	// DefaultSamples is the per-table sample count NS.
	DefaultSamples = DefaultTotalSamples / DefaultWaveformCount

	// DefaultClockHz is the reference timer clock (TIM2, 16 MHz).
	DefaultClockHz = 16_000_000

	// DefaultSignalHz is the default output frequency (A4 note).
	DefaultSignalHz = 440

	// FallbackSampleRate is the sample rate recorded on tables
	// substituted after a decode failure.
	FallbackSampleRate = 44100
)
