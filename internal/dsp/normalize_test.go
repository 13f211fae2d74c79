package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-dac-lutgen/internal/testutil"
)

const (
	normResolution = 4095

	// Synthetic ramp parameters for round-trip checks
	roundTripSignalMin  = -3.5
	roundTripSignalStep = 0.0625
	roundTripLength     = 253
)

func TestNormalize_KnownRange(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
		want  []int
	}{
		{
			name:  "unit range",
			input: []float64{0, 0.5, 1},
			want:  []int{0, 2047, normResolution},
		},
		{
			name:  "signed range",
			input: []float64{-1, 0, 1},
			want:  []int{0, 2047, normResolution},
		},
		{
			name:  "arbitrary offset",
			input: []float64{100, 150, 200},
			want:  []int{0, 2047, normResolution},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, degenerate := Normalize(tt.input, normResolution)
			assert.False(t, degenerate)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Degenerate(t *testing.T) {
	for _, value := range []float64{0, -7.25, 32767} {
		got, degenerate := Normalize(testutil.DC(value, 100), normResolution)

		assert.True(t, degenerate, "constant signal must report degenerate")
		testutil.AssertAllEqual(t, got, normResolution/2)
	}
}

func TestNormalize_RoundTrip(t *testing.T) {
	input := testutil.Ramp(roundTripLength, roundTripSignalMin, roundTripSignalStep)
	got, degenerate := Normalize(input, normResolution)
	require.False(t, degenerate)

	// Reconstructing (v/R)*(max-min)+min must land within one
	// quantization step of the original sample.
	span := input[len(input)-1] - input[0]
	quantStep := span / normResolution
	for i, v := range got {
		reconstructed := float64(v)/normResolution*span + input[0]
		assert.InDelta(t, input[i], reconstructed, quantStep,
			"sample %d reconstruction error exceeds one quantization step", i)
	}
}

func TestNormalize_FullRangeCovered(t *testing.T) {
	input := testutil.Ramp(1000, roundTripSignalMin, roundTripSignalStep)
	got, _ := Normalize(input, normResolution)

	assert.Equal(t, 0, got[0], "minimum sample must map to 0")
	assert.Equal(t, normResolution, got[len(got)-1], "maximum sample must map to R")
	testutil.AssertAllInRange(t, got, normResolution)
	testutil.AssertNonDecreasing(t, got)
}

func TestNormalize_Empty(t *testing.T) {
	got, degenerate := Normalize(nil, normResolution)
	assert.Empty(t, got)
	assert.False(t, degenerate)
}

func TestClip(t *testing.T) {
	v := []int{-5, 0, 2000, normResolution, normResolution + 1}
	Clip(v, normResolution)
	assert.Equal(t, []int{0, 0, 2000, normResolution, normResolution}, v)
}
