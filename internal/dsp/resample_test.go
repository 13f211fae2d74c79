package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-dac-lutgen/internal/testutil"
)

const resampleResolution = 4095

func rampTable(length int) []int {
	out := make([]int, length)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestResample_LengthInvariant(t *testing.T) {
	sourceLengths := []int{1, 2, 5, 100, 4096, 44100}
	targetLengths := []int{1, 2, 3, 128, 3333, 20000}

	for _, mode := range []Mode{ModeLinear, ModeStride} {
		for _, l := range sourceLengths {
			for _, n := range targetLengths {
				got := Resample(rampTable(l), n, mode)
				require.Len(t, got, n, "mode=%s L=%d N=%d", mode, l, n)
			}
		}
	}
}

func TestResample_Identity(t *testing.T) {
	src := Sine(128, resampleResolution)

	for _, mode := range []Mode{ModeLinear, ModeStride} {
		got := Resample(src, len(src), mode)
		assert.Equal(t, src, got, "mode=%s", mode)

		// Identity must copy, never alias the input.
		got[0] = resampleResolution + 1
		assert.NotEqual(t, src[0], got[0])
	}
}

func TestDecimateLinear_IndexSelection(t *testing.T) {
	// Indices i*(L-1)/(N-1) truncated: 0, 3, 6, 9 for L=10, N=4.
	src := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	got := Resample(src, 4, ModeLinear)
	assert.Equal(t, []int{10, 13, 16, 19}, got)
}

func TestDecimateLinear_KeepsEndpoints(t *testing.T) {
	src := rampTable(44100)
	got := Resample(src, 3333, ModeLinear)

	assert.Equal(t, src[0], got[0])
	assert.Equal(t, src[len(src)-1], got[len(got)-1],
		"linear-spaced selection must include the last source sample")
}

func TestDecimateStride_IndexSelection(t *testing.T) {
	// Stride L/N = 10/4 = 2: indices 0, 2, 4, 6.
	src := []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}
	got := Resample(src, 4, ModeStride)
	assert.Equal(t, []int{10, 12, 14, 16}, got)
}

func TestUpsampleLinear_Interpolates(t *testing.T) {
	// Query points at 0, 2/3, 4/3, 2 over [0, 2]: 0, 6, 13, 20.
	src := []int{0, 10, 20}
	got := Resample(src, 4, ModeLinear)
	assert.Equal(t, []int{0, 6, 13, 20}, got)
}

func TestUpsampleLinear_SingleSample(t *testing.T) {
	got := Resample([]int{7}, 5, ModeLinear)
	testutil.AssertAllEqual(t, got, 7)
}

func TestUpsampleTile_Repeats(t *testing.T) {
	src := []int{1, 2, 3}
	got := Resample(src, 8, ModeStride)
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1, 2}, got)
}

func TestResample_PreservesRange(t *testing.T) {
	src := Sine(500, resampleResolution)

	for _, mode := range []Mode{ModeLinear, ModeStride} {
		for _, n := range []int{33, 500, 3333} {
			got := Resample(src, n, mode)
			testutil.AssertAllInRange(t, got, resampleResolution)
		}
	}
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "linear", ModeLinear.String())
	assert.Equal(t, "stride", ModeStride.String())
	assert.Equal(t, "unknown", Mode(99).String())
}
