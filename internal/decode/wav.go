package decode

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// Supported PCM sample widths in bytes.
const (
	sampleWidth8Bit  = 1
	sampleWidth16Bit = 2
	sampleWidth32Bit = 4

	bitsPerByte = 8

	// 8-bit WAV stores unsigned samples in [0, 255]; subtracting the
	// bias recentres them around zero.
	unsigned8BitBias = 128
)

// decodeWAV reads an entire PCM WAV stream and reduces it to a centred
// mono signal.
func decodeWAV(f *os.File, path string) (*Signal, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s: not a valid wav file", ErrSourceUnavailable, path)
	}

	width := int(dec.BitDepth) / bitsPerByte
	switch width {
	case sampleWidth8Bit, sampleWidth16Bit, sampleWidth32Bit:
	default:
		return nil, fmt.Errorf("%w: %s: sample width %d bytes", ErrUnsupportedFormat, path, width)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("%w: %s: no audio frames", ErrSourceUnavailable, path)
	}

	data := make([]float64, len(buf.Data))
	if width == sampleWidth8Bit {
		for i, v := range buf.Data {
			data[i] = float64(v - unsigned8BitBias)
		}
	} else {
		// 16- and 32-bit samples are already signed and centred.
		for i, v := range buf.Data {
			data[i] = float64(v)
		}
	}

	format := dec.Format()
	return &Signal{
		Data:       reduceToChannelZero(data, format.NumChannels),
		SampleRate: format.SampleRate,
	}, nil
}
