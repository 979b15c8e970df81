// Package config loads the table's runtime settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"

	"github.com/luca-patrignani/parker/domain/bridge"
)

const (
	EnvDealer      = "PARKER_DEALER"
	EnvSeat        = "PARKER_SEAT"
	EnvLogLevel    = "PARKER_LOG_LEVEL"
	EnvDatabaseURL = "PARKER_DATABASE_URL"
	EnvSeed        = "PARKER_SEED"
)

// Config holds every setting the program reads. The zero value of an optional
// field means the feature is off or chosen at random.
type Config struct {
	Dealer      *bridge.Seat   // nil: pick a random dealer per board
	Seat        bridge.Seat    // where the local player sits
	LogLevel    pterm.LogLevel // minimum level printed by the logger
	DatabaseURL string         // empty: finished boards are not stored
	Seed        string         // empty: shuffle from the crypto random stream
}

// Load reads files (default ".env") into the environment without overriding
// variables that are already set, then parses the configuration. Missing env
// files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv parses the configuration using lookup to read variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Config{
		Seat:     bridge.South,
		LogLevel: pterm.LogLevelInfo,
	}

	if v, ok := nonEmpty(lookup, EnvDealer); ok {
		dealer, err := bridge.ParseSeat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvDealer, v, err)
		}
		cfg.Dealer = &dealer
	}
	if v, ok := nonEmpty(lookup, EnvSeat); ok {
		seat, err := bridge.ParseSeat(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s=%q: %w", EnvSeat, v, err)
		}
		cfg.Seat = seat
	}
	if v, ok := nonEmpty(lookup, EnvLogLevel); ok {
		level, err := ParseLogLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}
	cfg.DatabaseURL, _ = nonEmpty(lookup, EnvDatabaseURL)
	cfg.Seed, _ = nonEmpty(lookup, EnvSeed)

	return cfg, nil
}

// ParseLogLevel maps debug, info, warn and error onto pterm's levels.
func ParseLogLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "info":
		return pterm.LogLevelInfo, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func nonEmpty(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
