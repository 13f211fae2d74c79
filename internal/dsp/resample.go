package dsp

// Mode selects the resampling strategy. The two modes produce different
// sample selections and are never mixed within a run; callers pick one
// and carry it through every source.
type Mode int

const (
	// ModeLinear is the canonical strategy: downsampling selects
	// linearly spaced indices across the full source, upsampling
	// interpolates linearly between neighbouring samples.
	ModeLinear Mode = iota

	// ModeStride is the simplified strategy: downsampling decimates by
	// a fixed integer stride, upsampling tiles the source until the
	// target length is reached.
	ModeStride
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeStride:
		return "stride"
	default:
		return "unknown"
	}
}

// Resample maps v to exactly n samples using the given mode. Resampling
// a signal to its own length is the identity (a copy). The input must
// be non-empty and n must be positive; both are guaranteed by the
// pipeline's config validation upstream.
func Resample(v []int, n int, mode Mode) []int {
	switch {
	case len(v) == n:
		out := make([]int, n)
		copy(out, v)
		return out
	case len(v) > n:
		if mode == ModeStride {
			return decimateStride(v, n)
		}
		return decimateLinear(v, n)
	default:
		if mode == ModeStride {
			return upsampleTile(v, n)
		}
		return upsampleLinear(v, n)
	}
}

// decimateLinear selects n linearly spaced indices across [0, len(v)-1]
// inclusive, index i*(L-1)/(n-1) truncated.
func decimateLinear(v []int, n int) []int {
	out := make([]int, n)
	if n == 1 {
		out[0] = v[0]
		return out
	}
	last := len(v) - 1
	for i := range out {
		out[i] = v[i*last/(n-1)]
	}
	return out
}

// decimateStride takes every (L/n)-th sample, keeping the first n.
func decimateStride(v []int, n int) []int {
	step := len(v) / n
	out := make([]int, n)
	for i := range out {
		out[i] = v[i*step]
	}
	return out
}

// upsampleLinear interpolates linearly between consecutive source
// samples at n evenly spaced query points across [0, L-1].
func upsampleLinear(v []int, n int) []int {
	out := make([]int, n)
	if len(v) == 1 {
		for i := range out {
			out[i] = v[0]
		}
		return out
	}

	// L < n implies n >= 2 here, so the divisor is never zero.
	// Multiplying before dividing keeps the final query point exactly
	// on the last source index.
	last := len(v) - 1
	for i := range out {
		pos := float64(i) * float64(last) / float64(n-1)
		j := int(pos)
		if j >= last {
			out[i] = v[last]
			continue
		}
		frac := pos - float64(j)
		out[i] = int(float64(v[j]) + frac*float64(v[j+1]-v[j]))
	}
	return out
}

// upsampleTile repeats the source until n samples are produced.
func upsampleTile(v []int, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v[i%len(v)]
	}
	return out
}
