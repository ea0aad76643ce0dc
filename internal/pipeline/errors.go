// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     pipeline
// Description: Tagged error kinds for conversion outcomes
// License:     MIT
// ============================================================================

package pipeline

import (
	"errors"
	"fmt"
)

// Kind classifies a conversion failure. Every error the pipeline returns
// carries exactly one kind, so front ends render outcomes uniformly instead
// of mixing soft-failure tuples with raised errors.
type Kind int

const (
	// KindInput covers a missing PDF, an invalid request or a failed
	// output-directory creation.
	KindInput Kind = iota

	// KindExtraction covers an unreadable or corrupt PDF.
	KindExtraction

	// KindEmptyExtraction means the PDF opened fine but yielded no text
	// (scanned or image-only). Front ends report this as "nothing to
	// convert", not as a crash.
	KindEmptyExtraction

	// KindToolchain means the external audio decoder is unavailable.
	KindToolchain

	// KindSynthesis covers TTS network failures, empty responses and
	// decode failures of the synthesized audio.
	KindSynthesis

	// KindAssembly covers an empty segment list and failed export.
	KindAssembly

	// KindSpeedAdjustment marks the non-fatal post-processing failure;
	// the pipeline downgrades it to a warning.
	KindSpeedAdjustment

	// KindPlayback covers a failed decode of a finished audiobook for
	// local playback. The audiobook file itself is fine.
	KindPlayback
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindExtraction:
		return "extraction"
	case KindEmptyExtraction:
		return "empty extraction"
	case KindToolchain:
		return "toolchain"
	case KindSynthesis:
		return "synthesis"
	case KindAssembly:
		return "assembly"
	case KindSpeedAdjustment:
		return "speed adjustment"
	case KindPlayback:
		return "playback"
	default:
		return "unknown"
	}
}

// Error is the pipeline's error type: a kind, the operation that failed and
// the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s failed", e.Kind, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errf wraps an underlying error with a kind and operation.
func errf(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// IsKind reports whether err is a pipeline Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Kind == kind
}
