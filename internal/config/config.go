// SPDX-License-Identifier: MIT

// Package config loads engine settings for the tiledapsp command from an
// optional YAML or TOML file, then applies TILEDAPSP_* environment overrides.
// Command-line flags are layered on top by the cli package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tiledapsp/apsp"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvWorkers        = "TILEDAPSP_WORKERS"
	EnvBlockingFactor = "TILEDAPSP_BLOCKING_FACTOR"
	EnvWeightKey      = "TILEDAPSP_WEIGHT_KEY"
)

var (
	// ErrUnsupportedFormat reports a config file with an unknown extension.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid reports a setting outside its domain.
	ErrInvalid = errors.New("config: invalid setting")
)

// Config is the resolved engine configuration. Zero values mean "engine default".
type Config struct {
	// Workers is the job count (see apsp.ResolveWorkers); 0 leaves GOMAXPROCS.
	Workers int `yaml:"workers" toml:"workers"`

	// BlockingFactor pins the tile edge; 0 selects automatically.
	BlockingFactor int `yaml:"blocking_factor" toml:"blocking_factor"`

	// WeightKey names the edge attribute used as length; nil keeps
	// apsp.DefaultWeightKey and "" means unweighted.
	WeightKey *string `yaml:"weight_key" toml:"weight_key"`

	// WFImproved toggles closeness scaling; nil keeps apsp.DefaultWFImproved.
	WFImproved *bool `yaml:"wf_improved" toml:"wf_improved"`
}

// Load reads path (when non-empty), applies environment overrides and
// validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read the config file: %w", err)
		}
		if cfg, err = Decode(data, filepath.Ext(path)); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Decode parses data according to ext (".yaml", ".yml" or ".toml"). Unknown
// keys are rejected.
func Decode(data []byte, ext string) (Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown toml key %q: %w", undecoded[0].String(), ErrInvalid)
		}
	default:
		return Config{}, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalid)
		}
		if n == 0 {
			return fmt.Errorf("%s=0: %w", EnvWorkers, ErrInvalid)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvBlockingFactor); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvBlockingFactor, v, ErrInvalid)
		}
		c.BlockingFactor = n
	}
	if v, ok := lookup(EnvWeightKey); ok {
		c.WeightKey = &v
	}

	return nil
}

// Validate checks field domains.
func (c Config) Validate() error {
	if c.BlockingFactor < 0 {
		return fmt.Errorf("blocking_factor %d: %w", c.BlockingFactor, ErrInvalid)
	}

	return nil
}

// Options converts c into engine options.
func (c Config) Options() []apsp.Option {
	var opts []apsp.Option
	if c.Workers != 0 {
		opts = append(opts, apsp.WithWorkers(c.Workers))
	}
	if c.BlockingFactor > 0 {
		opts = append(opts, apsp.WithBlockingFactor(c.BlockingFactor))
	}
	if c.WeightKey != nil {
		opts = append(opts, apsp.WithWeightKey(*c.WeightKey))
	}
	if c.WFImproved != nil {
		opts = append(opts, apsp.WithWFImproved(*c.WFImproved))
	}

	return opts
}
