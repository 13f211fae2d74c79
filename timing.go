package lutgen

// Timing derives the timer constants consumed by firmware. The formulas
// are fixed: the reload value is clock/(NS*fSignal) and the Nyquist
// bound is clock/(2*NS). Both use integer division, matching the values
// pasted into firmware source.
type Timing struct {
	// ClockHz is the timer input clock in Hz.
	ClockHz int

	// Samples is the per-table sample count NS.
	Samples int

	// SignalHz is the desired output frequency in Hz.
	SignalHz int
}

// Divisor for the Nyquist bound: two timer updates per output cycle is
// the minimum for a recognizable waveform.
const nyquistDivisor = 2

// Timing returns the timer constants for the configuration, filling
// unset clock and signal frequencies with the defaults.
func (c *Config) Timing() Timing {
	t := Timing{
		ClockHz:  c.ClockHz,
		Samples:  c.Samples,
		SignalHz: c.SignalHz,
	}
	if t.ClockHz == 0 {
		t.ClockHz = DefaultClockHz
	}
	if t.SignalHz == 0 {
		t.SignalHz = DefaultSignalHz
	}
	return t
}

// Ticks returns the timer auto-reload value clock/(NS*fSignal): the
// number of timer ticks between consecutive DAC updates.
func (t Timing) Ticks() int {
	return t.ClockHz / (t.Samples * t.SignalHz)
}

// TicksAt returns the reload value for an alternative output frequency.
func (t Timing) TicksAt(signalHz int) int {
	return t.ClockHz / (t.Samples * signalHz)
}

// NyquistHz returns the maximum output frequency clock/(2*NS) that can
// be faithfully reproduced with this table length.
func (t Timing) NyquistHz() int {
	return t.ClockHz / (nyquistDivisor * t.Samples)
}
