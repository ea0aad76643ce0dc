// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     text
// Description: Greedy sentence-boundary chunking for TTS synthesis
// License:     MIT
// ============================================================================

package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxChars is the default upper bound for a single chunk. The TTS
// endpoint degrades on very long inputs, so text is split before synthesis.
const DefaultMaxChars = 1000

// boundaries are the sentence-ending characters the chunker splits after,
// in priority order. The first boundary type found within range wins even
// if a lower-priority one occurs later in the window.
var boundaries = []string{".", "!", "?", ";", "\n", "。", "！", "？", "；"}

// Chunk splits text into segments of at most maxChars bytes, preferring to
// split just after a sentence boundary. The scan is greedy and single-pass:
// for each segment the right-most occurrence of the highest-priority
// boundary within the window decides the split; if no boundary occurs the
// text is cut hard at maxChars, possibly mid-word. The remainder is trimmed
// of surrounding whitespace before the next iteration.
//
// Empty input yields no chunks. Identical input always yields an identical
// sequence.
func Chunk(text string, maxChars int) []string {
	if maxChars < 1 {
		maxChars = DefaultMaxChars
	}

	var chunks []string
	for text != "" {
		if len(text) <= maxChars {
			chunks = append(chunks, text)
			break
		}

		splitIndex := 0
		window := text[:maxChars]
		for _, b := range boundaries {
			if idx := strings.LastIndex(window, b); idx > 0 {
				splitIndex = idx + len(b)
				break
			}
		}
		if splitIndex == 0 {
			// Hard cut, backed off to a rune boundary so a multi-byte
			// character is never split across chunks.
			splitIndex = maxChars
			for splitIndex > 0 && !utf8.RuneStart(text[splitIndex]) {
				splitIndex--
			}
			if splitIndex == 0 {
				_, size := utf8.DecodeRuneInString(text)
				splitIndex = size
			}
		}

		chunks = append(chunks, text[:splitIndex])
		text = strings.TrimSpace(text[splitIndex:])
	}

	return chunks
}
