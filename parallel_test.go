package lutgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchParallel_MatchesSequential(t *testing.T) {
	dir := t.TempDir()
	good := writeBatchWAV(t, dir, []int{0, 500, 1000, 1500, 2000})
	corrupt := filepath.Join(dir, "corrupt.wav")
	require.NoError(t, os.WriteFile(corrupt, []byte("junk"), 0o644))

	sources := []Source{
		{Name: "sine_lut", Kind: WaveformSine},
		{Name: "sawtooth_lut", Kind: WaveformSawtooth},
		{Name: "triangle_lut", Kind: WaveformTriangle},
		{Name: "audio_lut", Path: good},
		{Name: "broken_lut", Path: corrupt},
	}

	sequential := &Config{Samples: 512, Bits: 12, Mode: ModeLinear}
	parallel := &Config{Samples: 512, Bits: 12, Mode: ModeLinear, EnableParallel: true}

	seqTables, err := Batch(sequential, sources)
	require.NoError(t, err)
	parTables, err := Batch(parallel, sources)
	require.NoError(t, err)

	require.Len(t, parTables, len(seqTables))
	for i := range seqTables {
		assert.Equal(t, seqTables[i].Name, parTables[i].Name, "slot %d", i)
		assert.Equal(t, seqTables[i].Data, parTables[i].Data, "slot %d", i)
		assert.Equal(t, seqTables[i].Fallback, parTables[i].Fallback, "slot %d", i)
	}
}

func TestBatchParallel_SlotAttachment(t *testing.T) {
	// Results must land in their requested slots regardless of
	// completion order.
	sources := make([]Source, 16)
	for i := range sources {
		sources[i] = Source{Name: Waveform(i % 3).String() + "_lut", Kind: Waveform(i % 3)}
	}

	cfg := &Config{Samples: 256, Bits: 12, EnableParallel: true}
	tables, err := Batch(cfg, sources)
	require.NoError(t, err)

	for i, table := range tables {
		assert.Equal(t, sources[i].Name, table.Name, "slot %d", i)
		require.Len(t, table.Data, 256)
	}
}

func TestBatchParallel_SingleSourceStaysSequential(t *testing.T) {
	cfg := &Config{Samples: 64, Bits: 12, EnableParallel: true}
	tables, err := Batch(cfg, []Source{{Name: "only_lut", Kind: WaveformSine}})
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, "only_lut", tables[0].Name)
}
