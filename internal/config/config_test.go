package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 80, cfg.Sound.Volume)
	assert.Equal(t, 800.0, cfg.Tone.Frequency)
	assert.Equal(t, time.Second, cfg.Tone.Duration.Duration())
	assert.Contains(t, cfg.Sound.Path, "charge.wav")
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Sound.Volume, cfg.Sound.Volume)
	assert.Equal(t, DefaultConfig().Tone.Frequency, cfg.Tone.Frequency)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[sound]
path = "/usr/share/sounds/charge.wav"
volume = 60

[tone]
frequency = 1200
duration = "250ms"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/usr/share/sounds/charge.wav", cfg.Sound.Path)
	assert.Equal(t, 60, cfg.Sound.Volume)
	assert.Equal(t, 1200.0, cfg.Tone.Frequency)
	assert.Equal(t, 250*time.Millisecond, cfg.Tone.Duration.Duration())
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[sound]
path = "/tmp/custom.wav"
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Changed field
	assert.Equal(t, "/tmp/custom.wav", cfg.Sound.Path)

	// Unchanged fields should have defaults
	assert.Equal(t, 80, cfg.Sound.Volume)
	assert.Equal(t, 800.0, cfg.Tone.Frequency)
	assert.Equal(t, time.Second, cfg.Tone.Duration.Duration())
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `this is not valid toml [`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[sound]
volume = 150
`
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volume")
}

func TestConfig_Save(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subdir", "config.toml")

	cfg := DefaultConfig()
	cfg.Sound.Volume = 42
	cfg.Tone.Duration = Duration(500 * time.Millisecond)

	err := cfg.Save(path)
	require.NoError(t, err)

	// Verify file was created
	_, err = os.Stat(path)
	require.NoError(t, err)

	// Reload and verify
	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Sound.Volume)
	assert.Equal(t, 500*time.Millisecond, loaded.Tone.Duration.Duration())
}

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"1s", time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"1m30s", 90 * time.Second, false},
		{"1500", 1500 * time.Millisecond, false},
		{"0", 0, false},
		{"banana", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d.Duration())
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"empty path", func(c *Config) { c.Sound.Path = "" }, "sound.path"},
		{"volume too high", func(c *Config) { c.Sound.Volume = 101 }, "volume"},
		{"volume negative", func(c *Config) { c.Sound.Volume = -1 }, "volume"},
		{"frequency too low", func(c *Config) { c.Tone.Frequency = 5 }, "frequency"},
		{"frequency too high", func(c *Config) { c.Tone.Frequency = 40000 }, "frequency"},
		{"zero duration", func(c *Config) { c.Tone.Duration = 0 }, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/chargechime/config.toml", ConfigPath())
}

func TestConfigPathDefault(t *testing.T) {
	path := ConfigPath()
	assert.Contains(t, path, "chargechime/config.toml")
}

func TestDataPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/chargechime", DataPath())
}

func TestDefaultSoundPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, "/custom/data/chargechime/charge.wav", DefaultSoundPath())
}

func TestExpandedSoundPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	cfg := DefaultConfig()
	cfg.Sound.Path = "~/sounds/charge.wav"
	assert.Equal(t, "/home/tester/sounds/charge.wav", cfg.ExpandedSoundPath())

	cfg.Sound.Path = "/absolute/charge.wav"
	assert.Equal(t, "/absolute/charge.wav", cfg.ExpandedSoundPath())
}
