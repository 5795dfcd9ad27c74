package config

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

type Config struct {
	LogLevel string       `mapstructure:"log_level"`
	Decode   DecodeConfig `mapstructure:"decode"`
	Output   OutputConfig `mapstructure:"output"`
}

type DecodeConfig struct {
	// MaxDepth bounds decoder nesting. Zero disables the bound.
	MaxDepth int `mapstructure:"max_depth"`
}

type OutputConfig struct {
	// Indent pretty-prints diagnostic and JSON output.
	Indent bool `mapstructure:"indent"`
}

func ReadConfig(r io.Reader) (*Config, error) {
	decoder := toml.NewDecoder(r)
	decoder.SetTagName("mapstructure")
	config := &Config{}
	if err := decoder.Decode(config); err != nil {
		return nil, errors.Wrap(err, "error decoding config file")
	}
	return config, nil
}
