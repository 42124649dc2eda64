// Package config loads lvlsort settings from defaults, an optional YAML
// file, LVLSORT_* environment variables and command-line flags.
package config

import (
	"errors"
	"time"
)

// Default values applied before any other source.
const (
	DefaultSeed          int64 = 0
	DefaultSize                = 20
	DefaultMaxValue            = 100
	DefaultKind                = "ints"
	DefaultOutput              = "table"
	DefaultWorkers             = 4
	DefaultSearchTimeout       = 2 * time.Second
	DefaultBogoMaxLen          = 8
	DefaultBogoBogoMaxLen      = 5
	DefaultBogoMaxShuffles     = 1_000_000

	// EnvPrefix is stripped from environment variable names; a double
	// underscore marks nesting (LVLSORT_BOGO__MAX_LEN → bogo.max_len).
	EnvPrefix = "LVLSORT_"
)

// ConfigFileNames are looked up in the working directory when no --config is given.
var ConfigFileNames = []string{"lvlsort.yaml", "lvlsort.yml"}

// ErrInvalidConfig indicates a loaded configuration failed validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the fully merged CLI configuration.
type Config struct {
	Seed          int64         `koanf:"seed"`
	Size          int           `koanf:"size"`
	MaxValue      int           `koanf:"max_value"`
	Kind          string        `koanf:"kind"`
	Output        string        `koanf:"output"`
	Verbose       bool          `koanf:"verbose"`
	Workers       int           `koanf:"workers"`
	SearchTimeout time.Duration `koanf:"search_timeout"`
	Bogo          BogoConfig    `koanf:"bogo"`

	// FileUsed is the config file that was read, empty when none.
	FileUsed string `koanf:"-"`
}

// BogoConfig bounds the bogo sorts.
type BogoConfig struct {
	MaxLen         int `koanf:"max_len"`
	BogoBogoMaxLen int `koanf:"bogobogo_max_len"`
	MaxShuffles    int `koanf:"max_shuffles"`
}

// Default returns a Config holding only default values.
func Default() *Config {
	return &Config{
		Seed:          DefaultSeed,
		Size:          DefaultSize,
		MaxValue:      DefaultMaxValue,
		Kind:          DefaultKind,
		Output:        DefaultOutput,
		Workers:       DefaultWorkers,
		SearchTimeout: DefaultSearchTimeout,
		Bogo: BogoConfig{
			MaxLen:         DefaultBogoMaxLen,
			BogoBogoMaxLen: DefaultBogoBogoMaxLen,
			MaxShuffles:    DefaultBogoMaxShuffles,
		},
	}
}

func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"seed":              DefaultSeed,
		"size":              DefaultSize,
		"max_value":         DefaultMaxValue,
		"kind":              DefaultKind,
		"output":            DefaultOutput,
		"verbose":           false,
		"workers":           DefaultWorkers,
		"search_timeout":    DefaultSearchTimeout.String(),
		"bogo.max_len":          DefaultBogoMaxLen,
		"bogo.bogobogo_max_len": DefaultBogoBogoMaxLen,
		"bogo.max_shuffles":     DefaultBogoMaxShuffles,
	}
}
