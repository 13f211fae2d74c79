// Package decode reads audio containers into signed-centred mono
// signals suitable for normalization. WAV files are decoded with
// github.com/go-audio/wav, MP3 files with github.com/hajimehoshi/go-mp3.
package decode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Common errors returned by the decoder.
var (
	// ErrSourceUnavailable indicates a missing, unreadable or invalid
	// source file.
	ErrSourceUnavailable = errors.New("audio source unavailable")

	// ErrUnsupportedFormat indicates a sample width outside the
	// supported set (1, 2 or 4 bytes).
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// Signal is a decoded mono signal: signed-centred real samples plus the
// originating sample rate. A Signal is produced once per source,
// transformed into exactly one table and then discarded.
type Signal struct {
	Data       []float64
	SampleRate int
}

// File decodes the audio file at path into a mono Signal. The container
// is chosen by file extension. Multi-channel audio is reduced to
// channel 0 by discarding the other interleaved channels; channels are
// never mixed or averaged.
func File(path string) (*Signal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return decodeWAV(f, path)
	case ".mp3":
		return decodeMP3(f, path)
	default:
		return nil, fmt.Errorf("%w: %s: unrecognized container extension", ErrUnsupportedFormat, path)
	}
}

// reduceToChannelZero keeps every step-th sample starting at offset 0,
// dropping the remaining interleaved channels.
func reduceToChannelZero(data []float64, channels int) []float64 {
	if channels <= 1 {
		return data
	}
	out := make([]float64, 0, len(data)/channels)
	for i := 0; i < len(data); i += channels {
		out = append(out, data[i])
	}
	return out
}
