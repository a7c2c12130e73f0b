package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
)

// Tone describes a synthesized fallback beep.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
}

// PlayTone synthesizes a sine tone and blocks until it finishes.
func (p *Player) PlayTone(t Tone) error {
	if err := p.ensureInitialized(p.sampleRate); err != nil {
		return err
	}

	streamer, err := toneStreamer(p.sampleRate, t)
	if err != nil {
		return err
	}

	p.logger.Debug("playing fallback tone", "frequency_hz", t.Frequency, "duration", t.Duration)
	return p.play(streamer, p.sampleRate)
}

// toneStreamer builds a sine streamer truncated to the tone duration.
func toneStreamer(sr beep.SampleRate, t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tone: %w", err)
	}
	return beep.Take(sr.N(t.Duration), sine), nil
}
