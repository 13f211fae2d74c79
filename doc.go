// Package lutgen generates fixed-size integer lookup tables for
// microcontroller DAC playback: single-cycle basic waveforms (sine,
// sawtooth, triangle) and resampled, normalized audio-file waveforms,
// together with the timer constants firmware needs to play them back.
//
// # Quick Start
//
// Generate a single-cycle sine table:
//
//	cfg := lutgen.DefaultConfig()
//	table, err := lutgen.Generate(lutgen.WaveformSine, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Process a batch of sources, mixing synthetic waveforms and audio
// files:
//
//	tables, err := lutgen.Batch(cfg, []lutgen.Source{
//	    {Name: "sine_lut", Kind: lutgen.WaveformSine},
//	    {Name: "saw_lut", Kind: lutgen.WaveformSawtooth},
//	    {Name: "piano_lut", Path: "piano.wav"},
//	})
//
// Every requested source always yields a complete table of exactly
// Config.Samples values in [0, 2^Config.Bits - 1]. If an audio file is
// missing or cannot be decoded, the failure is recorded on the
// resulting [Table] and a synthetic sine wave of the same length is
// substituted, so downstream emission never sees a partial batch. Only
// invalid target parameters fail a run outright.
//
// # Pipeline
//
// Audio sources pass through a fixed sequence of pure transforms:
//
//	decode -> channel 0 reduction -> min-max normalize -> resample -> clip
//
// WAV (8/16/32-bit PCM) and MP3 containers are supported. Multi-channel
// audio keeps channel 0; channels are never averaged. All float to
// integer conversions truncate, a deliberate policy that keeps emitted
// tables bit-identical across runs and platforms.
//
// # Resampling Modes
//
// Two documented strategies are available and are never mixed within a
// run. [ModeLinear], the canonical mode, selects linearly spaced
// indices when decimating and interpolates linearly when stretching.
// [ModeStride] is the simplified variant: fixed integer-stride
// decimation and tile-repeat stretching.
//
// # Timer Constants
//
// [Timing] derives the firmware-facing constants from the
// configuration: the timer reload value clock/(NS*fSignal) and the
// Nyquist bound clock/(2*NS) above which an output frequency cannot be
// faithfully reproduced. These formulas are load-bearing for firmware
// correctness and are preserved exactly.
package lutgen
