package decode

import (
	"errors"
	"fmt"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"
)

const (
	mp3ChunkSize = 4096

	// go-mp3 always emits 16-bit little-endian stereo frames: four
	// bytes per frame, left channel first.
	mp3BytesPerFrame = 4

	// Offset converting an unsigned 16-bit read into two's complement.
	int16Offset = 32768
)

// decodeMP3 reads an entire MP3 stream, keeping the left channel only.
func decodeMP3(f *os.File, path string) (*Signal, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	data := make([]float64, 0, dec.Length()/mp3BytesPerFrame)
	chunk := make([]byte, mp3ChunkSize)
	var pending []byte
	for {
		n, err := dec.Read(chunk)
		pending = append(pending, chunk[:n]...)

		// Reads are not frame-aligned; consume whole frames only and
		// carry the remainder into the next read.
		full := len(pending) / mp3BytesPerFrame * mp3BytesPerFrame
		for i := 0; i < full; i += mp3BytesPerFrame {
			v := int(pending[i]) | int(pending[i+1])<<8
			if v >= int16Offset {
				v -= 2 * int16Offset
			}
			data = append(data, float64(v))
		}
		pending = append(pending[:0], pending[full:]...)

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
		}
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s: no audio frames", ErrSourceUnavailable, path)
	}

	return &Signal{Data: data, SampleRate: dec.SampleRate()}, nil
}
