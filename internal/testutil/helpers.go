// Package testutil provides reusable test helper functions for LUT
// generation tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertAllInRange verifies that all table values are within [0, r].
func AssertAllInRange(t *testing.T, v []int, r int, msgAndArgs ...any) bool {
	t.Helper()
	for i, s := range v {
		if s < 0 || s > r {
			return assert.Fail(t, "value out of range",
				"v[%d]=%d is outside range [0, %d]", i, s, r)
		}
	}
	return true
}

// AssertStrictlyIncreasing verifies that a table is strictly increasing.
func AssertStrictlyIncreasing(t *testing.T, v []int, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(v); i++ {
		if v[i] <= v[i-1] {
			return assert.Fail(t, "not strictly increasing",
				"v[%d]=%d <= v[%d]=%d", i, v[i], i-1, v[i-1])
		}
	}
	return true
}

// AssertNonDecreasing verifies that a table never decreases.
func AssertNonDecreasing(t *testing.T, v []int, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return assert.Fail(t, "not non-decreasing",
				"v[%d]=%d < v[%d]=%d", i, v[i], i-1, v[i-1])
		}
	}
	return true
}

// AssertNonIncreasing verifies that a table never increases.
func AssertNonIncreasing(t *testing.T, v []int, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(v); i++ {
		if v[i] > v[i-1] {
			return assert.Fail(t, "not non-increasing",
				"v[%d]=%d > v[%d]=%d", i, v[i], i-1, v[i-1])
		}
	}
	return true
}

// AssertAllEqual verifies that every table value equals want.
func AssertAllEqual(t *testing.T, v []int, want int, msgAndArgs ...any) bool {
	t.Helper()
	for i, s := range v {
		if s != want {
			return assert.Fail(t, "unexpected value",
				"v[%d]=%d, want every value == %d", i, s, want)
		}
	}
	return true
}

// MaxValue returns the maximum value in a non-empty table.
func MaxValue(v []int) int {
	maxVal := v[0]
	for _, s := range v[1:] {
		if s > maxVal {
			maxVal = s
		}
	}
	return maxVal
}

// Ramp returns a linearly increasing signal of the given length,
// starting at base with the given step.
func Ramp(length int, base, step float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = base + float64(i)*step
	}
	return out
}

// DC returns a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
