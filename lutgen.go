package lutgen

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tphakala/go-dac-lutgen/internal/decode"
	"github.com/tphakala/go-dac-lutgen/internal/dsp"
	"github.com/tphakala/go-dac-lutgen/internal/logger"
)

// Common errors returned by the pipeline.
var (
	// ErrInvalidConfig indicates invalid target parameters. This is the
	// only error that fails a whole run; per-source failures fall back
	// to a synthetic sine table instead.
	ErrInvalidConfig = errors.New("invalid lutgen configuration")

	// ErrUnsupportedFormat indicates an audio source with a sample
	// width outside {1, 2, 4} bytes.
	ErrUnsupportedFormat = decode.ErrUnsupportedFormat

	// ErrSourceUnavailable indicates a missing or unreadable source.
	ErrSourceUnavailable = decode.ErrSourceUnavailable
)

// Waveform enumerates the synthetic waveform kinds.
type Waveform int

const (
	// WaveformSine is a full sine cycle mapped from [-1, 1] to [0, R].
	WaveformSine Waveform = iota

	// WaveformSawtooth is a strictly increasing ramp over [0, R).
	WaveformSawtooth

	// WaveformTriangle rises over the first half of the table and falls
	// over the second; for odd lengths the falling half takes the
	// extra sample.
	WaveformTriangle
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case WaveformSine:
		return "sine"
	case WaveformSawtooth:
		return "sawtooth"
	case WaveformTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Resampling mode aliases re-exported from the numeric core.
const (
	// ModeLinear selects linearly spaced indices when decimating and
	// interpolates linearly when stretching. This is the canonical mode.
	ModeLinear = dsp.ModeLinear

	// ModeStride decimates by fixed integer stride and stretches by
	// tiling. A simplified variant for synthetic sources.
	ModeStride = dsp.ModeStride
)

// ResampleMode selects the resampling strategy for audio sources.
type ResampleMode = dsp.Mode

// Config holds the target table parameters. It is passed explicitly
// through every pipeline call; the package keeps no ambient state.
type Config struct {
	// Samples is the table length N. Every produced table has exactly
	// this many values.
	Samples int

	// Bits is the DAC resolution; values span [0, 2^Bits - 1].
	Bits int

	// ClockHz is the reference timer clock used for derived constants.
	// Zero selects DefaultClockHz.
	ClockHz int

	// SignalHz is the target output frequency for derived constants.
	// Zero selects DefaultSignalHz.
	SignalHz int

	// Mode is the resampling strategy applied to audio sources.
	Mode ResampleMode

	// EnableParallel processes batch sources concurrently. Sources are
	// independent, so the only coordination is attaching each result to
	// its requested slot.
	EnableParallel bool
}

// DefaultConfig returns the standard 12-bit, 3333-sample configuration.
func DefaultConfig() *Config {
	return &Config{
		Samples:  DefaultSamples,
		Bits:     DefaultBits,
		ClockHz:  DefaultClockHz,
		SignalHz: DefaultSignalHz,
		Mode:     ModeLinear,
	}
}

// Validate checks the target parameters. No valid table can be produced
// from a non-positive sample count or an out-of-range resolution, so
// these fail the whole run immediately.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	}

	if c.Bits < minBits || c.Bits > maxBits {
		return fmt.Errorf("%w: bits must be %d-%d, got %d", ErrInvalidConfig, minBits, maxBits, c.Bits)
	}

	if c.Mode != ModeLinear && c.Mode != ModeStride {
		return fmt.Errorf("%w: unknown resample mode %d", ErrInvalidConfig, int(c.Mode))
	}

	return nil
}

// Resolution returns the DAC full-scale value R = 2^Bits - 1.
func (c *Config) Resolution() int {
	return 1<<c.Bits - 1
}

// Source names one requested table. A Source with a non-empty Path is
// decoded from the audio file; otherwise Kind selects a synthetic
// waveform.
type Source struct {
	// Name is the emitted array identifier, e.g. "piano_lut".
	Name string

	// Kind is the synthetic waveform, used when Path is empty.
	Kind Waveform

	// Path is the audio file to decode.
	Path string
}

// Table is a finished lookup table: exactly Config.Samples values in
// [0, Resolution]. Tables are immutable once produced and are owned by
// the emission stage.
type Table struct {
	// Name is the source's requested identifier.
	Name string

	// Data holds the table values.
	Data []int

	// SampleRate is the originating audio sample rate, or
	// FallbackSampleRate for synthetic and substituted tables.
	SampleRate int

	// Audio reports that the table was requested from an audio source,
	// even when decoding failed and a substitute was produced.
	Audio bool

	// Fallback reports that decoding failed and a synthetic sine table
	// was substituted.
	Fallback bool

	// Err records the decode failure that triggered the fallback.
	Err error
}

// Generate produces a synthetic single-cycle waveform table.
func Generate(kind Waveform, cfg *Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := cfg.Resolution()
	var data []int
	switch kind {
	case WaveformSine:
		data = dsp.Sine(cfg.Samples, r)
	case WaveformSawtooth:
		data = dsp.Sawtooth(cfg.Samples, r)
	case WaveformTriangle:
		data = dsp.Triangle(cfg.Samples, r)
	default:
		return nil, fmt.Errorf("%w: unknown waveform %d", ErrInvalidConfig, int(kind))
	}

	return &Table{
		Name:       kind.String() + "_lut",
		Data:       data,
		SampleRate: FallbackSampleRate,
	}, nil
}

// Process runs the full pipeline for one source: decode, channel
// reduction, normalization, resampling and clipping for audio sources,
// or direct synthesis for formula sources. A decode failure is recorded
// on the table and a sine wave of the requested length substitutes, so
// the result is always a complete valid table. The returned error is
// non-nil only for invalid configuration.
func (s Source) Process(cfg *Config) (*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if s.Path == "" {
		table, err := Generate(s.Kind, cfg)
		if err != nil {
			return nil, err
		}
		if s.Name != "" {
			table.Name = s.Name
		}
		return table, nil
	}

	sig, err := decode.File(s.Path)
	if err != nil {
		logger.Warn("decode failed, substituting sine waveform",
			"source", s.Name, "path", s.Path, "err", err)
		fallback := dsp.Sine(cfg.Samples, cfg.Resolution())
		return &Table{
			Name:       s.Name,
			Data:       fallback,
			SampleRate: FallbackSampleRate,
			Audio:      true,
			Fallback:   true,
			Err:        err,
		}, nil
	}

	logger.Debug("decoded audio source",
		"source", s.Name, "path", s.Path,
		"rate", sig.SampleRate, "samples", len(sig.Data))

	r := cfg.Resolution()
	normalized, degenerate := dsp.Normalize(sig.Data, r)
	if degenerate {
		logger.Info("constant-valued source, emitting mid-scale table",
			"source", s.Name, "value", r/2)
	}

	data := dsp.Resample(normalized, cfg.Samples, cfg.Mode)
	dsp.Clip(data, r)

	return &Table{
		Name:       s.Name,
		Data:       data,
		SampleRate: sig.SampleRate,
		Audio:      true,
	}, nil
}

// Batch processes every source to completion and returns one table per
// source, in request order. Per-source failures are isolated; the only
// fatal condition is an invalid configuration. With
// Config.EnableParallel the sources are processed concurrently, each
// pipeline run staying atomic and attached to its own output slot.
func Batch(cfg *Config, sources []Source) ([]*Table, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.EnableParallel && len(sources) > 1 {
		return batchParallel(cfg, sources)
	}

	tables := make([]*Table, len(sources))
	for i, src := range sources {
		table, err := src.Process(cfg)
		if err != nil {
			return nil, err
		}
		tables[i] = table
	}
	return tables, nil
}

// batchParallel processes sources concurrently, capturing the first
// configuration error.
func batchParallel(cfg *Config, sources []Source) ([]*Table, error) {
	tables := make([]*Table, len(sources))
	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for i, src := range sources {
		wg.Add(1)
		go func(slot int, source Source) {
			defer wg.Done()
			table, err := source.Process(cfg)
			if err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = fmt.Errorf("source %q: %w", source.Name, err)
				}
				errMu.Unlock()
				return
			}
			tables[slot] = table
		}(i, src)
	}
	wg.Wait()

	if processErr != nil {
		return nil, processErr
	}

	return tables, nil
}
