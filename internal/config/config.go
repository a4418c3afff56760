// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"cutdata/internal/process"
	"cutdata/internal/tooldata"
)

// Config holds the service settings.
type Config struct {
	Addr        string
	LogLevel    string
	LogsEnabled bool

	RateLimitRPS   float64
	RateLimitBurst int

	ProductionFactor float64
	DefaultMaxRPM    float64
}

// Defaults used when a variable is unset.
const (
	DefaultAddr           = ":8080"
	DefaultRateLimitRPS   = 10
	DefaultRateLimitBurst = 20
)

// Load reads the configuration from the process environment. A .env file
// must already have been applied by the caller.
func Load() (Config, error) {
	cfg := Config{
		Addr:             DefaultAddr,
		RateLimitRPS:     DefaultRateLimitRPS,
		RateLimitBurst:   DefaultRateLimitBurst,
		ProductionFactor: tooldata.DefaultProductionFactor,
	}

	if v, ok := lookup("HTTP_ADDR"); ok {
		cfg.Addr = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}

	var err error
	if cfg.LogsEnabled, err = boolVar("OTEL_LOGS_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = floatVar("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = intVar("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return Config{}, err
	}
	if cfg.ProductionFactor, err = floatVar("CUTDATA_PRODUCTION_FACTOR", cfg.ProductionFactor); err != nil {
		return Config{}, err
	}
	if cfg.DefaultMaxRPM, err = floatVar("CUTDATA_DEFAULT_MAX_RPM", cfg.DefaultMaxRPM); err != nil {
		return Config{}, err
	}

	if cfg.ProductionFactor <= 0 {
		return Config{}, fmt.Errorf("CUTDATA_PRODUCTION_FACTOR: must be greater than zero, got %g", cfg.ProductionFactor)
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: must be at least 1 when rate limiting is on, got %d", cfg.RateLimitBurst)
	}

	return cfg, nil
}

// Settings returns the calculator settings of cfg.
func (c Config) Settings() process.Settings {
	return process.Settings{
		ProductionFactor: c.ProductionFactor,
		DefaultMaxRPM:    c.DefaultMaxRPM,
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func floatVar(key string, def float64) (float64, error) {
	raw, ok := lookup(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("%s: must be a non-negative number, got %q", key, raw)
	}
	return v, nil
}

func intVar(key string, def int) (int, error) {
	raw, ok := lookup(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", key, v)
	}
	return v, nil
}

func boolVar(key string, def bool) (bool, error) {
	raw, ok := lookup(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
