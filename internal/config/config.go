package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no -config flag is
// given.
const EnvPath = "HEXSUM_CONFIG"

// DefaultPath is where the game looks for its config when nothing else is set.
const DefaultPath = "configs/hexsum.yaml"

// Config holds all game configuration
type Config struct {
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
	Audio  AudioConfig  `yaml:"audio"`
	Game   GameConfig   `yaml:"game"`
}

// WindowConfig holds the desktop window settings. The logical screen is
// always 800x600; these only size the OS window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error, none
}

type AudioConfig struct {
	Enabled *bool   `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0..1
}

// GameConfig holds gameplay settings
type GameConfig struct {
	Seed uint64 `yaml:"seed"` // 0 seeds from the wall clock
}

// AudioOn reports whether cues should play. A missing key means on.
func (a AudioConfig) AudioOn() bool { return a.Enabled == nil || *a.Enabled }

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not
// exist. Any other read or parse error is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// ResolvePath picks the config path: the flag value, then $HEXSUM_CONFIG,
// then DefaultPath.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 800
	}
	if c.Window.Height == 0 {
		c.Window.Height = 600
	}
	if c.Window.Title == "" {
		c.Window.Title = "Hex Drag Sum"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	// Silence is audio.enabled: false, so a zero volume means unset.
	if c.Audio.Volume == 0 {
		c.Audio.Volume = 0.6
	}
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %.2f outside [0,1]", c.Audio.Volume)
	}
	return nil
}
