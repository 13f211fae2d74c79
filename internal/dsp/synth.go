// Package dsp implements the numeric core of LUT generation: waveform
// synthesis, min-max normalization and length resampling.
//
// All functions are pure and operate on bounded in-memory slices. Float
// to integer conversions truncate rather than round; truncation biases
// values slightly low but is consistent and reproducible, which matters
// more than accuracy for firmware tables that must match across runs.
package dsp

import (
	"math"
)

// Sine returns a single-cycle sine table of n samples with values in
// [0, r]. The phase covers [0, 2π) with the endpoint excluded, so
// cycling the table at a constant rate reproduces a continuous waveform
// with no glitch at wraparound.
func Sine(n, r int) []int {
	out := make([]int, n)
	step := twoPi / float64(n)
	for i := range out {
		theta := float64(i) * step
		out[i] = int((math.Sin(theta) + 1) / halfScaleDivisor * float64(r))
	}
	return out
}

// Sawtooth returns a single-cycle rising ramp of n samples. Values are
// i*r/n (truncated), so the ramp starts at 0, stays strictly below r,
// and restarts instantly when the table wraps.
func Sawtooth(n, r int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * r / n
	}
	return out
}

// Triangle returns a single-cycle triangle table of n samples: a rising
// ramp over the first n/2 samples followed by a falling ramp over the
// remaining n-n/2. For odd n the falling half absorbs the extra sample.
// The falling ramp starts at exactly r, so the table peaks at full scale.
func Triangle(n, r int) []int {
	out := make([]int, 0, n)
	rising := n / halfSplitDivisor
	falling := n - rising

	for i := 0; i < rising; i++ {
		out = append(out, i*r/rising)
	}
	for i := 0; i < falling; i++ {
		// Truncating r - i*r/falling means rounding the subtrahend up.
		out = append(out, r-ceilDiv(i*r, falling))
	}
	return out
}

// ceilDiv returns ⌈a/b⌉ for non-negative a and positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
