// Package config loads and validates the parameters of a resilience run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridres/scenario"
)

// ErrInvalidConfig is returned by Validate and wraps every field error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Run holds the parameters of one resilience run.
type Run struct {
	// FailMin is the largest number of simultaneous initial branch failures.
	FailMin int `yaml:"fail_min"`
	// SampleSize is the requested number of scenarios; at or above the
	// combinatorial total the run is exhaustive.
	SampleSize int `yaml:"sample_size"`
	// Seed pins random sampling; 0 reseeds from the clock.
	Seed int64 `yaml:"seed"`
	// Workers bounds the worker pools; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers"`
	// MaxScenarios refuses plans larger than this.
	MaxScenarios int `yaml:"max_scenarios"`
	// Timeout bounds the whole run; 0 disables it.
	Timeout time.Duration `yaml:"timeout"`

	Simulator Simulator `yaml:"simulator"`
}

// Simulator configures the cascade collaborator.
type Simulator struct {
	Verbose bool              `yaml:"verbose"`
	Params  map[string]string `yaml:"params,omitempty"`
}

// Default returns the built-in parameters: single-branch contingencies,
// exhaustive for networks of up to 1000 branches.
func Default() Run {
	return Run{
		FailMin:      1,
		SampleSize:   1000,
		MaxScenarios: scenario.DefaultMaxScenarios,
	}
}

// Load reads a YAML file over Default and validates the result.
func Load(path string) (Run, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Run{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Run{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Run{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and reports all violations at once.
func (c Run) Validate() error {
	var errs []error
	if c.FailMin < 0 {
		errs = append(errs, fmt.Errorf("fail_min must be >= 0, got %d", c.FailMin))
	}
	if c.SampleSize < 0 {
		errs = append(errs, fmt.Errorf("sample_size must be >= 0, got %d", c.SampleSize))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must be >= 0, got %d", c.Workers))
	}
	if c.MaxScenarios < 0 {
		errs = append(errs, fmt.Errorf("max_scenarios must be >= 0, got %d", c.MaxScenarios))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout must be >= 0, got %s", c.Timeout))
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// ApplyEnv overrides fields from GRIDRES_* environment variables. Unset or
// unparsable values leave the field unchanged.
func (c Run) ApplyEnv() Run {
	c.FailMin = getEnvInt("GRIDRES_FAIL_MIN", c.FailMin)
	c.SampleSize = getEnvInt("GRIDRES_SAMPLE_SIZE", c.SampleSize)
	c.Seed = int64(getEnvInt("GRIDRES_SEED", int(c.Seed)))
	c.Workers = getEnvInt("GRIDRES_WORKERS", c.Workers)
	c.MaxScenarios = getEnvInt("GRIDRES_MAX_SCENARIOS", c.MaxScenarios)
	c.Timeout = getEnvDuration("GRIDRES_TIMEOUT", c.Timeout)
	c.Simulator.Verbose = getEnvBool("GRIDRES_VERBOSE", c.Simulator.Verbose)

	return c
}

func getEnvInt(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}

	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}

	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}

	return defaultValue
}
