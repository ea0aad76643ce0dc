package audio

import (
	"testing"
	"time"
)

func TestSegment_Duration(t *testing.T) {
	tests := []struct {
		name     string
		seg      Segment
		expected time.Duration
	}{
		{"one second", Segment{Samples: make([]int16, 24000), SampleRate: 24000}, time.Second},
		{"half second", Segment{Samples: make([]int16, 4000), SampleRate: 8000}, 500 * time.Millisecond},
		{"empty", Segment{SampleRate: 24000}, 0},
		{"zero rate", Segment{Samples: make([]int16, 100)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Duration(); got != tt.expected {
				t.Errorf("Duration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConcat(t *testing.T) {
	a := &Segment{Samples: []int16{1, 2, 3}, SampleRate: 24000}
	b := &Segment{Samples: []int16{4, 5}, SampleRate: 24000}
	c := &Segment{Samples: []int16{6}, SampleRate: 22050}

	out, err := Concat([]*Segment{a, b, c})
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}

	// Total sample count is the sum of the inputs.
	if want := len(a.Samples) + len(b.Samples) + len(c.Samples); len(out.Samples) != want {
		t.Errorf("sample count = %d, want %d", len(out.Samples), want)
	}
	for i, want := range []int16{1, 2, 3, 4, 5, 6} {
		if out.Samples[i] != want {
			t.Errorf("sample %d = %d, want %d", i, out.Samples[i], want)
		}
	}

	// First segment's format parameters govern the result.
	if out.SampleRate != 24000 {
		t.Errorf("SampleRate = %d, want 24000 (first segment)", out.SampleRate)
	}
}

func TestConcat_Empty(t *testing.T) {
	if _, err := Concat(nil); err == nil {
		t.Error("Concat(nil) error = nil, want failure")
	}
	if _, err := Concat([]*Segment{}); err == nil {
		t.Error("Concat(empty) error = nil, want failure")
	}
}
