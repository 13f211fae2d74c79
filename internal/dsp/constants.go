package dsp

import "math"

// Waveform synthesis constants
const (
	twoPi = 2 * math.Pi

	// Divisor mapping [-1, 1] sine amplitude into [0, 1].
	halfScaleDivisor = 2.0

	// Divisor for the rising/falling split of a triangle wave.
	halfSplitDivisor = 2
)

// Normalization constants
const (
	// Divisor for the mid-scale value substituted for constant signals.
	midpointDivisor = 2
)
