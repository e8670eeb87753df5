package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is recdump's on-disk configuration. It is optional: every field
// has a usable zero value, and command-line flags always take precedence
// over whatever a config file sets.
type Config struct {
	// SchemaPath, if set, names a YAML schema definition (see the schema
	// package) used to resolve property-id header references.
	SchemaPath string `toml:"schema_path"`

	// LogLevel is a logrus level name: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level"`

	// Concurrency bounds how many files a batch decode processes at
	// once. Zero means the batch command picks its own default.
	Concurrency int `toml:"concurrency"`
}

func defaultConfig() Config {
	return Config{LogLevel: "info"}
}

// loadConfig reads and parses a TOML config file at path. An empty path is
// not an error and yields the defaults; a path naming a file that does not
// exist or does not parse is an error, wrapped with the path.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "loading config %q", path)
	}
	return cfg, nil
}
