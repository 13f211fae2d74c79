package lutgen

// GenerateSine produces a sine table with n samples and the given
// resolution in bits.
func GenerateSine(n, bits int) (*Table, error) {
	return Generate(WaveformSine, &Config{Samples: n, Bits: bits, Mode: ModeLinear})
}

// GenerateSawtooth produces a sawtooth table with n samples and the
// given resolution in bits.
func GenerateSawtooth(n, bits int) (*Table, error) {
	return Generate(WaveformSawtooth, &Config{Samples: n, Bits: bits, Mode: ModeLinear})
}

// GenerateTriangle produces a triangle table with n samples and the
// given resolution in bits.
func GenerateTriangle(n, bits int) (*Table, error) {
	return Generate(WaveformTriangle, &Config{Samples: n, Bits: bits, Mode: ModeLinear})
}

// ProcessFile runs the audio pipeline for a single file with the
// default configuration, falling back to a sine table on decode
// failure.
func ProcessFile(name, path string) (*Table, error) {
	return Source{Name: name, Path: path}.Process(DefaultConfig())
}

// BasicSources returns the three standard synthetic sources in their
// conventional order.
func BasicSources() []Source {
	return []Source{
		{Name: "sine_lut", Kind: WaveformSine},
		{Name: "sawtooth_lut", Kind: WaveformSawtooth},
		{Name: "triangle_lut", Kind: WaveformTriangle},
	}
}
