// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     audio
// Description: In-memory PCM audio segments
// License:     MIT
// ============================================================================

package audio

import (
	"fmt"
	"time"
)

// Segment is a decoded, in-memory audio buffer: mono 16-bit PCM samples at
// a given sample rate. One Segment corresponds to one synthesized chunk.
type Segment struct {
	Samples    []int16
	SampleRate int
}

// Duration returns the playback duration of the segment.
func (s *Segment) Duration() time.Duration {
	if s.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(s.Samples)) / float64(s.SampleRate) * float64(time.Second))
}

// Concat joins segments strictly in input order by appending raw sample
// data. The first segment's sample rate governs the result; later segments
// are not resampled. An empty input is an error: there is nothing to
// assemble.
func Concat(segments []*Segment) (*Segment, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("no audio segments to concatenate")
	}

	total := 0
	for _, seg := range segments {
		total += len(seg.Samples)
	}

	out := &Segment{
		Samples:    make([]int16, 0, total),
		SampleRate: segments[0].SampleRate,
	}
	for _, seg := range segments {
		out.Samples = append(out.Samples, seg.Samples...)
	}
	return out, nil
}
