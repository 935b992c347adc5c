// Package config loads detailing policy and output settings.
//
// Sources are applied in order, later ones winning: built-in defaults, a
// YAML file, a .env file, then process environment variables. Command-line
// flags are applied by the caller on top of the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	EnvBendPolicy       = "GOREBAR_BEND_POLICY"
	EnvCantileverOffset = "GOREBAR_CANTILEVER_OFFSET"
	EnvDeadEndAllowance = "GOREBAR_DEADEND_ALLOWANCE"
	EnvStirrupCover     = "GOREBAR_STIRRUP_COVER"
	EnvOutputFormats    = "GOREBAR_FORMATS"
	EnvLogLevel         = "GOREBAR_LOG_LEVEL"
)

// DefaultEnvFile is read when present
const DefaultEnvFile = ".env"

// Config is everything the commands read at startup
type Config struct {
	Policy detailing.Policy `yaml:"policy"`
	Output Output           `yaml:"output"`
	Log    Log              `yaml:"log"`
}

// Output holds export defaults
type Output struct {
	Base    string `yaml:"base"`
	Formats string `yaml:"formats"` // comma separated, e.g. "pdf,csv"
}

// Log holds logging defaults
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Policy: detailing.DefaultPolicy(),
		Output: Output{Base: "rebar_report", Formats: "pdf,csv"},
		Log:    Log{Level: "warn", Format: "text"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), the env file (skipped when missing) and the environment.
func Load(path, envFile string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Policy.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvBendPolicy); ok {
		p, err := detailing.ParseBendLengthPolicy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBendPolicy, err)
		}
		c.Policy.BendLength = p
	}

	floats := []struct {
		key string
		dst *float64
	}{
		{EnvCantileverOffset, &c.Policy.CantileverOffset},
		{EnvDeadEndAllowance, &c.Policy.DeadEndAllowance},
		{EnvStirrupCover, &c.Policy.StirrupCoverDeduction},
	}
	for _, f := range floats {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", f.key, v)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvOutputFormats); ok {
		c.Output.Formats = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	return nil
}
