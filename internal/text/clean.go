// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     text
// Description: Cleaning and normalization of extracted PDF text
// License:     MIT
// ============================================================================

package text

import (
	"regexp"
	"strings"
)

// Cleaning rules, compiled once. The order they run in is part of the
// contract: later rules see the output of earlier ones.
var (
	// Any run of whitespace, including Unicode spaces and line/paragraph
	// separators, collapses to a single ASCII space.
	whitespaceRe = regexp.MustCompile(`[\s\p{Z}\x{85}]+`)

	// Anything outside the printable ASCII range becomes a space.
	nonPrintableRe = regexp.MustCompile(`[^\x20-\x7E]`)

	// Whitespace around a hyphen collapses into a bare hyphen, rejoining
	// words the PDF line-break hyphenation split apart.
	hyphenRe = regexp.MustCompile(`\s*-\s*`)

	// Standalone page-number tokens left over from headers and footers.
	pageNumberRe = regexp.MustCompile(`\bPage \d+\b`)

	// Curly quotes normalize to their straight ASCII forms.
	doubleQuoteRe = regexp.MustCompile(`[\x{201C}\x{201D}]`)
	singleQuoteRe = regexp.MustCompile(`[\x{2018}\x{2019}]`)
)

// Clean normalizes raw extracted text for speech synthesis. It collapses
// whitespace, strips non-printable characters, rejoins hyphenated words,
// removes page-number tokens, straightens curly quotes and trims the result.
//
// The rules run in a fixed order. Note that the non-printable rule runs
// before quote normalization, so curly quotes present in the input are
// replaced by spaces rather than straightened; the quote rules only matter
// for callers that feed already-ASCII-safe text. This mirrors the historical
// behavior of the converter and must not be reordered.
func Clean(s string) string {
	s = whitespaceRe.ReplaceAllString(s, " ")
	s = nonPrintableRe.ReplaceAllString(s, " ")
	s = hyphenRe.ReplaceAllString(s, "-")
	s = pageNumberRe.ReplaceAllString(s, "")
	s = doubleQuoteRe.ReplaceAllString(s, `"`)
	s = singleQuoteRe.ReplaceAllString(s, "'")
	return strings.TrimSpace(s)
}
