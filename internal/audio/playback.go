// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     audio
// Description: Speaker playback via PortAudio
// License:     MIT
// ============================================================================

package audio

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// Player plays decoded segments on the default output device. Used by the
// TUI's play-after-conversion toggle.
type Player struct {
	mu      sync.Mutex
	playing bool
}

// NewPlayer creates a Player.
func NewPlayer() *Player {
	return &Player{}
}

// Play renders the segment to the default output device, blocking until
// playback finishes. Only one playback may run at a time.
func (p *Player) Play(seg *Segment) error {
	if seg == nil || len(seg.Samples) == 0 {
		return fmt.Errorf("nothing to play")
	}

	p.mu.Lock()
	if p.playing {
		p.mu.Unlock()
		return fmt.Errorf("already playing")
	}
	p.playing = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	}()

	floatSamples := make([]float32, len(seg.Samples))
	for i, s := range seg.Samples {
		floatSamples[i] = float32(s) / 32768.0
	}

	return playFloat32(floatSamples, float64(seg.SampleRate))
}

func playFloat32(samples []float32, sampleRate float64) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer portaudio.Terminate()

	const bufferSize = 1024
	buffer := make([]float32, bufferSize)

	stream, err := portaudio.OpenDefaultStream(0, 1, sampleRate, bufferSize, &buffer)
	if err != nil {
		return fmt.Errorf("failed to open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("failed to start output stream: %w", err)
	}
	defer stream.Stop()

	for position := 0; position < len(samples); position += bufferSize {
		for i := 0; i < bufferSize; i++ {
			if position+i < len(samples) {
				buffer[i] = samples[position+i]
			} else {
				buffer[i] = 0
			}
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("failed to write to stream: %w", err)
		}
	}

	return nil
}
