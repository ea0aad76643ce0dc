// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     audio
// Description: Segment assembly into the final audiobook file
// License:     MIT
// ============================================================================

package audio

import (
	"context"
	"fmt"
	"os"
)

// Assemble concatenates segments in order and exports the result as a
// single MP3 at outPath. The exported file is verified to exist and be
// non-empty before returning.
func (t *Toolchain) Assemble(ctx context.Context, segments []*Segment, outPath string) error {
	combined, err := Concat(segments)
	if err != nil {
		return err
	}

	if err := t.Export(ctx, combined, outPath); err != nil {
		return err
	}

	info, err := os.Stat(outPath)
	if err != nil {
		return fmt.Errorf("exported file %s is missing: %w", outPath, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("exported file %s is empty", outPath)
	}
	return nil
}
