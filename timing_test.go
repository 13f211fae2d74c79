package lutgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testClock16MHz = 16_000_000
	testSignal440  = 440
	testSignal1k   = 1000
	testSignal44k1 = 44100
)

func TestTiming_Ticks(t *testing.T) {
	timing := Timing{ClockHz: testClock16MHz, Samples: DefaultSamples, SignalHz: testSignal440}

	// 16e6 / (3333 * 440) = 10 (integer division)
	assert.Equal(t, 10, timing.Ticks())
	assert.Equal(t, 4, timing.TicksAt(testSignal1k))
	assert.Equal(t, 0, timing.TicksAt(testSignal44k1),
		"44.1kHz exceeds what a 3333-sample table can reproduce at 16MHz")
}

func TestTiming_NyquistBound(t *testing.T) {
	timing := Timing{ClockHz: testClock16MHz, Samples: DefaultSamples, SignalHz: testSignal440}

	// 16e6 / (2 * 3333) = 2400
	assert.Equal(t, 2400, timing.NyquistHz())
}

func TestTiming_SmallTable(t *testing.T) {
	timing := Timing{ClockHz: testClock16MHz, Samples: 128, SignalHz: testSignal440}

	assert.Equal(t, 284, timing.Ticks())
	assert.Equal(t, 62500, timing.NyquistHz())
}

func TestConfig_TimingDefaults(t *testing.T) {
	cfg := &Config{Samples: DefaultSamples, Bits: DefaultBits}
	timing := cfg.Timing()

	assert.Equal(t, DefaultClockHz, timing.ClockHz)
	assert.Equal(t, DefaultSignalHz, timing.SignalHz)
	assert.Equal(t, DefaultSamples, timing.Samples)
}

func TestConfig_TimingExplicit(t *testing.T) {
	cfg := &Config{Samples: 500, Bits: DefaultBits, ClockHz: 8_000_000, SignalHz: testSignal1k}
	timing := cfg.Timing()

	assert.Equal(t, 16, timing.Ticks())
	assert.Equal(t, 8000, timing.NyquistHz())
}
