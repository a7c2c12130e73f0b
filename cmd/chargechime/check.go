package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/rsp2308/charge-mod/internal/audio"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate the configured sound file without playing it",
	Long: `Validate that the sound file exists and is a readable WAV, and report
its properties. Checks the configured sound.path unless a file is given.

Exits non-zero when the file is missing or not a valid WAV, so trigger
setups can be verified from scripts:

  chargechime check && echo "chime ready"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := cfg.ExpandedSoundPath()
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("sound file not found: %s", path)
	}

	info, err := audio.Inspect(path)
	if err != nil {
		return err
	}

	fmt.Printf("File:        %s\n", info.Path)
	fmt.Printf("Size:        %s\n", humanize.IBytes(uint64(info.Size)))
	fmt.Printf("Sample rate: %d Hz\n", info.SampleRate)
	fmt.Printf("Channels:    %d\n", info.Channels)
	fmt.Printf("Bit depth:   %d\n", info.BitDepth)
	fmt.Printf("Duration:    %s\n", info.Duration.Round(time.Millisecond))
	return nil
}
