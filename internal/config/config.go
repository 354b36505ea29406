// Package config loads the settings of the glox driver from a TOML or YAML
// file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "GLOX_CONFIG"

// Output modes
const (
	ModeAST    = "ast"
	ModeTokens = "tokens"
)

// Config holds the complete driver configuration
type Config struct {
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// REPLConfig holds interactive prompt settings
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	ExitCommand string `toml:"exit_command" yaml:"exit_command"`
}

// OutputConfig controls what is printed for each source unit
type OutputConfig struct {
	Mode  string `toml:"mode" yaml:"mode"`
	Color bool   `toml:"color" yaml:"color"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:      "> ",
			ExitCommand: "exit",
		},
		Output: OutputConfig{
			Mode:  ModeAST,
			Color: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Settings missing from the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by GLOX_CONFIG, or returns the defaults
// when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults fills in settings that were explicitly left empty
func (c *Config) applyDefaults() {
	def := Default()
	if c.REPL.Prompt == "" {
		c.REPL.Prompt = def.REPL.Prompt
	}
	if c.REPL.ExitCommand == "" {
		c.REPL.ExitCommand = def.REPL.ExitCommand
	}
	if c.Output.Mode == "" {
		c.Output.Mode = def.Output.Mode
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	switch c.Output.Mode {
	case ModeAST, ModeTokens:
	default:
		return fmt.Errorf("unknown output mode %q", c.Output.Mode)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
