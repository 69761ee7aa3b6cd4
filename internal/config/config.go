// Package config loads the settings of the lox command line tool.
//
// Settings come from defaults, then an optional YAML file, then flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable holding the config file path
const EnvVar = "LOX_CONFIG"

// Config holds the CLI settings
type Config struct {
	LogLevel           string `yaml:"log_level"`
	Color              bool   `yaml:"color"`
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	HistoryFile        string `yaml:"history_file"`
	// LineMode runs files line by line, each line being its own unit
	LineMode bool `yaml:"line_mode"`
}

// Default returns the settings used when nothing is configured
func Default() Config {
	history := ".lox_history"
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, history)
	}
	return Config{
		LogLevel:           "warning",
		Color:              true,
		Prompt:             "> ",
		ContinuationPrompt: ". ",
		HistoryFile:        history,
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer file.Close()
	if err := cfg.decode(file); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the values that cannot be checked by decoding
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Prompt == "" {
		return errors.New("config: prompt must not be empty")
	}
	return nil
}

// Level returns the parsed log level, warning when invalid
func (c Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
