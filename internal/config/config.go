// Package config handles configuration file loading and parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultVolume    = 80
	DefaultFrequency = 800.0
	DefaultDuration  = time.Second
	DefaultSoundFile = "charge.wav"
)

// Duration is a time.Duration that can be unmarshaled from human-readable strings.
// Supports formats like "250ms", "1s", "1m", or integer milliseconds.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)

	// Try parsing as integer milliseconds first
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: must be like '250ms', '1s' or integer milliseconds: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML output.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Duration returns the underlying time.Duration.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Config represents the chargechime configuration.
type Config struct {
	Sound SoundConfig `toml:"sound"`
	Tone  ToneConfig  `toml:"tone"`
}

// SoundConfig holds the chime asset settings.
type SoundConfig struct {
	Path   string `toml:"path"`   // Audio file to play; ~ expands to the home directory
	Volume int    `toml:"volume"` // 0-100
}

// ToneConfig holds the fallback tone played when the sound file is missing.
type ToneConfig struct {
	Frequency float64  `toml:"frequency"` // Hz
	Duration  Duration `toml:"duration"`  // e.g., "1s", "250ms", or integer milliseconds
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Sound: SoundConfig{
			Path:   DefaultSoundPath(),
			Volume: DefaultVolume,
		},
		Tone: ToneConfig{
			Frequency: DefaultFrequency,
			Duration:  Duration(DefaultDuration),
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "chargechime", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "chargechime")
}

// DefaultSoundPath returns the default location of the chime asset.
func DefaultSoundPath() string {
	return filepath.Join(DataPath(), DefaultSoundFile)
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if the file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults, then overlay with file contents
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed and writes atomically via a temp file.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return os.Rename(tmpPath, path)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Sound.Path == "" {
		return fmt.Errorf("sound.path must not be empty")
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 100 {
		return fmt.Errorf("sound.volume must be between 0 and 100, got %d", c.Sound.Volume)
	}
	if c.Tone.Frequency < 20 || c.Tone.Frequency > 20000 {
		return fmt.Errorf("tone.frequency must be between 20 and 20000 Hz, got %g", c.Tone.Frequency)
	}
	if c.Tone.Duration.Duration() <= 0 {
		return fmt.Errorf("tone.duration must be positive, got %s", c.Tone.Duration.Duration())
	}
	return nil
}

// ExpandedSoundPath returns the configured sound path with ~ expanded.
func (c *Config) ExpandedSoundPath() string {
	return expandPath(c.Sound.Path)
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
