// SPDX-License-Identifier: MIT

// Package config loads the program settings from a YAML file, then applies
// environment overrides (optionally seeded from a .env file) and validates
// the result.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metro/dataset"
)

// ErrInvalid wraps every parse or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables overriding file values.
const (
	EnvStationsFile = "METRO_STATIONS_FILE"
	EnvLinesFile    = "METRO_LINES_FILE"
	EnvTicketsFile  = "METRO_TICKETS_FILE"
	EnvLogLevel     = "METRO_LOG_LEVEL"
	EnvPriceFactor  = "METRO_PRICE_FACTOR"
)

// Config is the full program configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Format  FormatConfig  `yaml:"format"`
	Pricing PricingConfig `yaml:"pricing"`
	Log     LogConfig     `yaml:"log"`
	// Strict rejects networks with links not served by any line.
	Strict bool `yaml:"strict"`
}

// DataConfig locates the three datasets.
type DataConfig struct {
	Stations string `yaml:"stations" validate:"required"`
	Lines    string `yaml:"lines" validate:"required"`
	Tickets  string `yaml:"tickets" validate:"required"`
}

// FormatConfig describes the dataset separators.
type FormatConfig struct {
	Delimiter     string `yaml:"delimiter" validate:"len=1"`
	ListDelimiter string `yaml:"list_delimiter" validate:"required,nefield=Delimiter"`
}

// PricingConfig holds the price of one hop.
type PricingConfig struct {
	Factor int `yaml:"factor" validate:"gte=0"`
}

// LogConfig selects the minimum log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Data: DataConfig{
			Stations: "stations.csv",
			Lines:    "lines.csv",
			Tickets:  "tickets.csv",
		},
		Format:  FormatConfig{Delimiter: ",", ListDelimiter: "$"},
		Pricing: PricingConfig{Factor: 10},
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates. A missing file is not an error. Values absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	override := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(EnvStationsFile, &c.Data.Stations)
	override(EnvLinesFile, &c.Data.Lines)
	override(EnvTicketsFile, &c.Data.Tickets)
	override(EnvLogLevel, &c.Log.Level)

	if v := os.Getenv(EnvPriceFactor); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvPriceFactor, v, err)
		}
		c.Pricing.Factor = n
	}

	return nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// DatasetFormat converts the field separator for the dataset package.
// The list separator is handed to core.WithListDelimiter instead.
func (c Config) DatasetFormat() dataset.Format {
	f := dataset.DefaultFormat()
	if r := []rune(c.Format.Delimiter); len(r) == 1 {
		f.Delimiter = r[0]
	}

	return f
}
