// Package config loads CLI defaults from the environment, optionally
// seeded from a .env file. Command-line flags override everything here;
// the environment only supplies defaults for unattended batch runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"

	log "github.com/tphakala/go-dac-lutgen/internal/logger"
)

// Defaults holds environment-supplied default values for the CLI flags.
type Defaults struct {
	Samples  int
	Bits     int
	ClockHz  int
	SignalHz int
	Mode     string
	Output   string
	Chart    string
}

var loadEnvOnce sync.Once

func loadEnv() {
	if os.Getenv("LUTGEN_SAMPLES") == "" {
		if err := godotenv.Load(); err != nil {
			log.Debug("no .env file found", "err", err)
		}
	}
}

// Load reads LUTGEN_* environment variables on top of the given
// built-in defaults.
func Load(builtin Defaults) (Defaults, error) {
	loadEnvOnce.Do(loadEnv)

	d := builtin
	var err error
	if d.Samples, err = intFromEnv("LUTGEN_SAMPLES", d.Samples); err != nil {
		return d, err
	}
	if d.Bits, err = intFromEnv("LUTGEN_BITS", d.Bits); err != nil {
		return d, err
	}
	if d.ClockHz, err = intFromEnv("LUTGEN_CLOCK_HZ", d.ClockHz); err != nil {
		return d, err
	}
	if d.SignalHz, err = intFromEnv("LUTGEN_SIGNAL_HZ", d.SignalHz); err != nil {
		return d, err
	}
	if v := os.Getenv("LUTGEN_MODE"); v != "" {
		d.Mode = v
	}
	if v := os.Getenv("LUTGEN_OUTPUT"); v != "" {
		d.Output = v
	}
	if v := os.Getenv("LUTGEN_CHART"); v != "" {
		d.Chart = v
	}
	return d, nil
}

// intFromEnv parses an integer environment variable, keeping the
// fallback when the variable is unset.
func intFromEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}
