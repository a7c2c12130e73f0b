package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsp2308/charge-mod/internal/audio"
	"github.com/rsp2308/charge-mod/internal/chime"
)

var playOpts = struct {
	sound  string
	volume int
}{volume: -1}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Check for the configured sound file and play it",
	Long: `Check that the configured sound file exists and play it, blocking
until playback completes. If the file is missing, a synthesized fallback
tone is played instead and the missing file is reported; that is not an
error. Only an audio subsystem failure exits non-zero.

Examples:
  # Play the configured chime
  chargechime play

  # Play a specific file at half volume
  chargechime play --sound ~/sounds/plug.wav --volume 50`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)

	// Registered on the root too, so the bare invocation accepts them
	for _, cmd := range []*cobra.Command{rootCmd, playCmd} {
		cmd.Flags().StringVar(&playOpts.sound, "sound", "",
			"Path to the sound file (overrides sound.path)")
		cmd.Flags().IntVar(&playOpts.volume, "volume", -1,
			"Playback volume 0-100 (overrides sound.volume)")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playOpts.sound != "" {
		cfg.Sound.Path = playOpts.sound
	}
	if playOpts.volume >= 0 {
		cfg.Sound.Volume = playOpts.volume
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	player := audio.NewPlayer(logger)
	defer player.Close()
	player.SetVolume(float64(cfg.Sound.Volume) / 100.0)

	result, err := chime.New(cfg, player, logger).Play()
	if err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	if result.FellBack {
		fmt.Printf("Sound file not found at %s, played fallback tone (%.0f Hz, %s)\n",
			cfg.ExpandedSoundPath(), cfg.Tone.Frequency, cfg.Tone.Duration.Duration())
	} else {
		fmt.Printf("Played %s\n", result.Path)
	}
	return nil
}
