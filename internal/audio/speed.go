// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     audio
// Description: Playback speed adjustment by sample-rate reinterpretation
// License:     MIT
// ============================================================================

package audio

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Speed factor bounds.
const (
	MinSpeed = 0.5
	MaxSpeed = 2.0
)

// ValidSpeed reports whether factor is within the supported range.
func ValidSpeed(factor float64) bool {
	return factor >= MinSpeed && factor <= MaxSpeed
}

// speedFilter builds the ffmpeg audio filter that reinterprets the stream
// at rate*factor and then relabels it back to the nominal rate. This
// changes pitch along with speed; it is deliberately not true
// time-stretching, matching the converter's historical audible output.
func speedFilter(rate int, factor float64) string {
	return fmt.Sprintf("asetrate=%d,aresample=%d", int(float64(rate)*factor), rate)
}

// AdjustSpeed rewrites the audio file at path with its playback speed
// scaled by factor. A factor of 1.0 is a no-op and leaves the file
// untouched. The adjusted file replaces the original atomically; on any
// failure the original file is preserved.
func (t *Toolchain) AdjustSpeed(ctx context.Context, path string, factor float64) error {
	if factor == 1.0 {
		return nil
	}
	if !ValidSpeed(factor) {
		return fmt.Errorf("speed factor must be between %g and %g, got %g", MinSpeed, MaxSpeed, factor)
	}

	seg, err := t.Decode(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to probe %s for speed adjustment: %w", path, err)
	}

	// Staged next to the target so the final rename never crosses
	// filesystems.
	tmp := fmt.Sprintf("%s.adjust-%s.mp3", path, uuid.NewString())
	defer removeQuiet(tmp)

	filter := speedFilter(seg.SampleRate, factor)
	if err := t.run(ctx, "-y", "-i", path, "-af", filter, tmp); err != nil {
		return fmt.Errorf("speed adjustment failed: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s with adjusted audio: %w", path, err)
	}
	return nil
}
