// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     tts
// Description: Text-to-Speech interface
// License:     MIT
// ============================================================================

package tts

import (
	"context"
)

// Synthesizer is the interface for text-to-speech engines.
type Synthesizer interface {
	// Synthesize converts text to encoded audio (MP3).
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// SynthesizeToFile converts text to audio and saves it to a file.
	// The written file is guaranteed to be non-empty on success.
	SynthesizeToFile(ctx context.Context, text, path string) error

	// Close releases resources.
	Close() error
}

// Config holds TTS configuration.
type Config struct {
	// Language is the BCP-47-ish code for the synthesis voice.
	Language string

	// Endpoint overrides the service URL. Empty means the default.
	Endpoint string
}

// DefaultConfig returns default TTS configuration.
func DefaultConfig() Config {
	return Config{
		Language: "en",
	}
}
