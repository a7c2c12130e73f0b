// Package chime implements the charge-sound operation: play the configured
// sound file if it exists, otherwise fall back to a synthesized tone.
package chime

import (
	"log/slog"
	"os"

	"github.com/rsp2308/charge-mod/internal/audio"
	"github.com/rsp2308/charge-mod/internal/config"
)

// Backend plays audio for the chimer. *audio.Player satisfies it.
type Backend interface {
	PlayFile(path string) error
	PlayTone(t audio.Tone) error
}

// Result reports what a Play invocation did.
type Result struct {
	// Path is the sound file that was played; empty when the fallback
	// tone was used.
	Path string

	// FellBack is true when the sound file was missing and the
	// synthesized tone was played instead.
	FellBack bool
}

// Chimer plays the charge chime.
type Chimer struct {
	cfg     *config.Config
	backend Backend
	logger  *slog.Logger
}

// New creates a Chimer playing through the given backend.
func New(cfg *config.Config, backend Backend, logger *slog.Logger) *Chimer {
	if logger == nil {
		logger = slog.Default()
	}

	return &Chimer{
		cfg:     cfg,
		backend: backend,
		logger:  logger,
	}
}

// Play performs one check-and-play pass, blocking until playback finishes.
// A missing sound file is not an error: the fallback tone is played and the
// result records it. Audio subsystem failures propagate unrecovered.
func (c *Chimer) Play() (*Result, error) {
	path := c.cfg.ExpandedSoundPath()

	if _, err := os.Stat(path); err != nil {
		c.logger.Warn("sound file not found, playing fallback tone",
			"path", path,
			"frequency_hz", c.cfg.Tone.Frequency,
			"duration", c.cfg.Tone.Duration.Duration())

		tone := audio.Tone{
			Frequency: c.cfg.Tone.Frequency,
			Duration:  c.cfg.Tone.Duration.Duration(),
		}
		if err := c.backend.PlayTone(tone); err != nil {
			return nil, err
		}
		return &Result{FellBack: true}, nil
	}

	if err := c.backend.PlayFile(path); err != nil {
		return nil, err
	}

	c.logger.Info("played charge sound", "path", path)
	return &Result{Path: path}, nil
}
