// Package config loads and validates program configuration.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
	"golang.org/x/text/language"
)

//go:embed config.yaml
var configDefaults []byte

type (
	DocumentConfig struct {
		Language          string `yaml:"language"`
		DefaultStyle      string `yaml:"default_style"`
		AnnotateSentences bool   `yaml:"annotate_sentences"`
	}

	Config struct {
		Version  int            `yaml:"version"`
		Document DocumentConfig `yaml:"document"`
		Logging  LoggingConfig  `yaml:"logging"`
	}
)

// LanguageTag parses the configured document language.
func (conf *DocumentConfig) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(conf.Language)
	if err != nil {
		return language.Und, fmt.Errorf("bad document language %q: %w", conf.Language, err)
	}
	return tag, nil
}

func unmarshalConfig(data []byte, cfg *Config) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported configuration version %d", cfg.Version)
	}
	if _, err := cfg.Document.LanguageTag(); err != nil {
		return err
	}
	for _, l := range []LoggerConfig{cfg.Logging.ConsoleLogger, cfg.Logging.FileLogger} {
		switch l.Level {
		case "", "none", "normal", "debug":
		default:
			return fmt.Errorf("unsupported logging level %q", l.Level)
		}
		switch l.Mode {
		case "", "append", "overwrite":
		default:
			return fmt.Errorf("unsupported logging mode %q", l.Mode)
		}
	}
	return nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of built-in defaults and performs validation.
func LoadConfiguration(path string) (*Config, error) {
	cfg, err := unmarshalConfig(configDefaults, &Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration defaults: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfg, err = unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process configuration file: %w", err)
		}
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Prepare returns the default configuration file content, a starting point for
// a user configuration.
func Prepare() []byte {
	return bytes.Clone(configDefaults)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
