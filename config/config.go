// Package config loads the chesscore CLI's configuration: an optional TOML
// file supplying defaults, overridden field-by-field by command-line flags.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every setting the CLI driver needs across its subcommands.
type Config struct {
	// SuitePath is the default perft suite file used by the "suite"
	// subcommand when no path is given on the command line.
	SuitePath string `toml:"suite_path"`
	// Workers bounds the number of concurrent perft workers used by the
	// "suite" subcommand. 0 runs the suite sequentially; a negative value
	// means unbounded.
	Workers int `toml:"workers"`
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`
	// LogFormat is either "console" or "json".
	LogFormat string `toml:"log_format"`
}

// Default returns the configuration applied before any file or flag is
// consulted, so a missing config file is never an error.
func Default() Config {
	return Config{
		SuitePath: "",
		Workers:   0,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load returns Default(), overlaid with whatever fields path's TOML file
// sets. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	return cfg, nil
}
