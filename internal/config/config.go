// Package config handles loading the pinyingen configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/pinyingen/internal/edn"
	"github.com/f3rmion/pinyingen/internal/extract"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "pinyingen.yaml"

// Default paths, relative to the Cangjie training project root.
const (
	DefaultSource       = "src/main/cangjie_training/dictionary.cljs"
	DefaultOutput       = "src/main/cangjie_training/pinyin.cljs"
	DefaultSampleOutput = "src/main/cangjie_training/pinyin_sample.cljs"
)

// Config holds all settings for a generate run.
type Config struct {
	Source       string            `yaml:"source"`
	Vector       string            `yaml:"vector"`
	Output       string            `yaml:"output"`
	SampleOutput string            `yaml:"sample_output"`
	SampleSize   int               `yaml:"sample_size"`
	Dictionary   string            `yaml:"dictionary,omitempty"` // Make Me a Hanzi dictionary.txt
	SQLite       string            `yaml:"sqlite,omitempty"`     // optional SQLite export
	Overrides    map[string]string `yaml:"overrides,omitempty"`  // character → pinyin
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source:       DefaultSource,
		Vector:       extract.DefaultVector,
		Output:       DefaultOutput,
		SampleOutput: DefaultSampleOutput,
		SampleSize:   edn.DefaultSampleSize,
	}
}

// Load reads path over the defaults. A missing file yields the defaults
// unless required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Source == "":
		return errors.New("source path is empty")
	case c.Vector == "":
		return errors.New("vector name is empty")
	case c.Output == "":
		return errors.New("output path is empty")
	case c.SampleOutput == "":
		return errors.New("sample output path is empty")
	case c.SampleSize < 0:
		return fmt.Errorf("sample size must not be negative, got %d", c.SampleSize)
	}
	return nil
}
