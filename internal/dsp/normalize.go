package dsp

import (
	"gonum.org/v1/gonum/floats"
)

// Normalize maps an arbitrary-range signal into [0, r] inclusive using
// min-max normalization with truncation. The boolean result reports the
// degenerate case: a constant signal maps every sample to the mid-scale
// value r/2, which communicates silence as mid-rail rather than zero
// and avoids a division by zero.
func Normalize(x []float64, r int) ([]int, bool) {
	if len(x) == 0 {
		return []int{}, false
	}

	minVal := floats.Min(x)
	maxVal := floats.Max(x)

	out := make([]int, len(x))
	if maxVal == minVal {
		mid := r / midpointDivisor
		for i := range out {
			out[i] = mid
		}
		return out, true
	}

	span := maxVal - minVal
	for i, v := range x {
		out[i] = int((v - minVal) / span * float64(r))
	}

	// The formula cannot exceed [0, r] except through floating-point
	// overshoot at the boundary; clip to absorb it.
	Clip(out, r)
	return out, false
}

// Clip clamps every value into [0, r] in place.
func Clip(v []int, r int) {
	for i, s := range v {
		if s < 0 {
			v[i] = 0
		} else if s > r {
			v[i] = r
		}
	}
}
