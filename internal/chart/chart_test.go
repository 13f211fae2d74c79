package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lutgen "github.com/tphakala/go-dac-lutgen"
)

const testResolution = 4095

func TestRender_OneChartPerTable(t *testing.T) {
	tables := []*lutgen.Table{
		{Name: "sine_lut", Data: []int{0, 2047, 4095, 2047}},
		{Name: "piano_lut", Data: []int{1, 2, 3, 4}, SampleRate: 44100, Audio: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tables, testResolution))
	out := buf.String()

	assert.Contains(t, out, "sine_lut")
	assert.Contains(t, out, "piano_lut")
	assert.Contains(t, out, "source rate 44100 Hz")
}

func TestRender_FallbackSubtitle(t *testing.T) {
	tables := []*lutgen.Table{
		{Name: "drum_lut", Data: []int{0, 1}, Audio: true, Fallback: true},
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tables, testResolution))
	assert.Contains(t, buf.String(), "placeholder sine")
}

func TestRender_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil, testResolution))
	assert.NotEmpty(t, buf.String(), "page skeleton should render even with no charts")
}
