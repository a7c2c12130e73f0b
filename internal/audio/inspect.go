package audio

import (
	"fmt"
	"os"
	"time"

	gowav "github.com/go-audio/wav"
)

// Info describes a WAV chime asset.
type Info struct {
	Path       string
	Size       int64
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// Inspect validates the WAV file at path and returns its properties
// without playing it.
func Inspect(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat sound file: %w", err)
	}

	dec := gowav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file: %s", path)
	}

	dur, err := dec.Duration()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV duration: %w", err)
	}

	return &Info{
		Path:       path,
		Size:       st.Size(),
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		BitDepth:   int(dec.BitDepth),
		Duration:   dur,
	}, nil
}
