package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsp2308/charge-mod/internal/audio"
	"github.com/rsp2308/charge-mod/internal/config"
)

var toneOpts struct {
	frequency float64
	duration  string
}

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Play the fallback tone",
	Long: `Play the synthesized fallback tone without touching the sound file.

Useful for auditioning the tone that plays when no sound file is installed.

Examples:
  # Audition the configured tone
  chargechime tone

  # A higher, shorter beep
  chargechime tone --frequency 1200 --duration 250ms`,
	RunE: runTone,
}

func init() {
	rootCmd.AddCommand(toneCmd)

	toneCmd.Flags().Float64Var(&toneOpts.frequency, "frequency", 0,
		"Tone frequency in Hz (overrides tone.frequency)")
	toneCmd.Flags().StringVar(&toneOpts.duration, "duration", "",
		"Tone duration, e.g. 250ms or 1s (overrides tone.duration)")
}

func runTone(cmd *cobra.Command, args []string) error {
	if toneOpts.frequency > 0 {
		cfg.Tone.Frequency = toneOpts.frequency
	}
	if toneOpts.duration != "" {
		var d config.Duration
		if err := d.UnmarshalText([]byte(toneOpts.duration)); err != nil {
			return err
		}
		cfg.Tone.Duration = d
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	player := audio.NewPlayer(logger)
	defer player.Close()
	player.SetVolume(float64(cfg.Sound.Volume) / 100.0)

	tone := audio.Tone{
		Frequency: cfg.Tone.Frequency,
		Duration:  cfg.Tone.Duration.Duration(),
	}
	if err := player.PlayTone(tone); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	fmt.Printf("Played tone (%.0f Hz, %s)\n", tone.Frequency, tone.Duration)
	return nil
}
