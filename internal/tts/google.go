// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     tts
// Description: Google Translate TTS implementation
// License:     MIT
// ============================================================================

package tts

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	defaultEndpoint = "https://translate.google.com/translate_tts"

	// The endpoint rejects long inputs, so text is split into tokens of at
	// most this many characters before synthesis. The MP3 responses are
	// frame-aligned and concatenate directly.
	maxTokenLen = 100

	// The endpoint refuses requests without a browser user agent.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0"
)

// GoogleTTS synthesizes speech through the public Google Translate TTS
// endpoint. The speaking rate is the service's normal speed and is not
// configurable.
type GoogleTTS struct {
	client   *resty.Client
	endpoint string
	language string
}

// NewGoogleTTS creates a synthesizer for the given configuration.
func NewGoogleTTS(cfg Config) (*GoogleTTS, error) {
	if !IsSupported(cfg.Language) {
		return nil, fmt.Errorf("unsupported language code: %q", cfg.Language)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client := resty.New().
		SetHeader("User-Agent", userAgent)

	return &GoogleTTS{
		client:   client,
		endpoint: endpoint,
		language: cfg.Language,
	}, nil
}

// Synthesize converts text to MP3 audio. Long text is split into tokens at
// word boundaries and the per-token responses are concatenated.
func (g *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("cannot synthesize empty text")
	}

	var audio []byte
	for _, token := range splitTokens(text, maxTokenLen) {
		data, err := g.fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		audio = append(audio, data...)
	}

	if len(audio) == 0 {
		return nil, fmt.Errorf("TTS service returned no audio")
	}
	return audio, nil
}

// SynthesizeToFile converts text to audio and writes it to path. The file
// is validated non-empty before returning.
func (g *GoogleTTS) SynthesizeToFile(ctx context.Context, text, path string) error {
	data, err := g.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write audio file %s: %w", path, err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("audio file %s was not written", path)
	}
	return nil
}

// Close releases resources.
func (g *GoogleTTS) Close() error {
	return nil
}

func (g *GoogleTTS) fetch(ctx context.Context, token string) ([]byte, error) {
	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":     "UTF-8",
			"client": "tw-ob",
			"tl":     g.language,
			"q":      token,
		}).
		Get(g.endpoint)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("TTS service returned status %d", resp.StatusCode())
	}
	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("TTS service returned an empty response")
	}
	return body, nil
}

// splitTokens breaks text into pieces of at most maxLen bytes, preferring
// to break at the last space within the window. A run with no space is cut
// hard at maxLen.
func splitTokens(text string, maxLen int) []string {
	var tokens []string
	for text != "" {
		if len(text) <= maxLen {
			tokens = append(tokens, text)
			break
		}
		cut := strings.LastIndex(text[:maxLen+1], " ")
		if cut <= 0 {
			cut = maxLen
		}
		tokens = append(tokens, strings.TrimSpace(text[:cut]))
		text = strings.TrimSpace(text[cut:])
	}
	return tokens
}
