package audio

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"testing"
)

func TestEncodeDecodeWAV_RoundTrip(t *testing.T) {
	seg := &Segment{
		Samples:    []int16{0, 100, -100, 32767, -32768, 42},
		SampleRate: 24000,
	}

	data, err := EncodeWAV(seg)
	if err != nil {
		t.Fatalf("EncodeWAV() error = %v", err)
	}
	if len(data) != 44+len(seg.Samples)*2 {
		t.Errorf("encoded size = %d, want %d", len(data), 44+len(seg.Samples)*2)
	}

	decoded, err := DecodeWAV(data)
	if err != nil {
		t.Fatalf("DecodeWAV() error = %v", err)
	}
	if decoded.SampleRate != seg.SampleRate {
		t.Errorf("SampleRate = %d, want %d", decoded.SampleRate, seg.SampleRate)
	}
	if !reflect.DeepEqual(decoded.Samples, seg.Samples) {
		t.Errorf("Samples = %v, want %v", decoded.Samples, seg.Samples)
	}
}

// ffmpeg's WAV muxer writes a LIST/INFO chunk carrying its encoder tag
// between fmt and data, so the decoder must walk chunks instead of
// assuming data at a fixed offset.
func TestDecodeWAV_FFmpegChunkLayout(t *testing.T) {
	samples := []int16{1, -2, 3, -4}

	fmtBody := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtBody[0:2], 1)      // PCM
	binary.LittleEndian.PutUint16(fmtBody[2:4], 1)      // mono
	binary.LittleEndian.PutUint32(fmtBody[4:8], 24000)  // sample rate
	binary.LittleEndian.PutUint32(fmtBody[8:12], 48000) // byte rate
	binary.LittleEndian.PutUint16(fmtBody[12:14], 2)    // block align
	binary.LittleEndian.PutUint16(fmtBody[14:16], 16)   // bit depth

	encoderTag := []byte("Lavf61.1.100\x00")
	listBody := []byte("INFOISFT")
	listBody = append(listBody, byte(len(encoderTag)), 0, 0, 0)
	listBody = append(listBody, encoderTag...)
	if len(encoderTag)%2 != 0 {
		listBody = append(listBody, 0)
	}

	var dataBody bytes.Buffer
	if err := binary.Write(&dataBody, binary.LittleEndian, samples); err != nil {
		t.Fatal(err)
	}

	var chunks bytes.Buffer
	writeChunk := func(id string, body []byte) {
		chunks.WriteString(id)
		if err := binary.Write(&chunks, binary.LittleEndian, uint32(len(body))); err != nil {
			t.Fatal(err)
		}
		chunks.Write(body)
		if len(body)%2 != 0 {
			chunks.WriteByte(0)
		}
	}
	writeChunk("fmt ", fmtBody)
	writeChunk("LIST", listBody)
	writeChunk("data", dataBody.Bytes())

	var file bytes.Buffer
	file.WriteString("RIFF")
	if err := binary.Write(&file, binary.LittleEndian, uint32(4+chunks.Len())); err != nil {
		t.Fatal(err)
	}
	file.WriteString("WAVE")
	file.Write(chunks.Bytes())

	seg, err := DecodeWAV(file.Bytes())
	if err != nil {
		t.Fatalf("DecodeWAV() error = %v", err)
	}
	if seg.SampleRate != 24000 {
		t.Errorf("SampleRate = %d, want 24000", seg.SampleRate)
	}
	if !reflect.DeepEqual(seg.Samples, samples) {
		t.Errorf("Samples = %v, want %v", seg.Samples, samples)
	}
}

func TestEncodeWAV_Invalid(t *testing.T) {
	tests := []struct {
		name string
		seg  *Segment
	}{
		{"nil segment", nil},
		{"empty samples", &Segment{SampleRate: 24000}},
		{"zero sample rate", &Segment{Samples: []int16{1}, SampleRate: 0}},
		{"negative sample rate", &Segment{Samples: []int16{1}, SampleRate: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := EncodeWAV(tt.seg); err == nil {
				t.Error("EncodeWAV() error = nil, want failure")
			}
		})
	}
}

func TestDecodeWAV_Invalid(t *testing.T) {
	valid, err := EncodeWAV(&Segment{Samples: []int16{1, 2, 3}, SampleRate: 8000})
	if err != nil {
		t.Fatal(err)
	}

	corrupt := func(offset int, b []byte) []byte {
		out := append([]byte(nil), valid...)
		copy(out[offset:], b)
		return out
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", valid[:20]},
		{"bad riff", corrupt(0, []byte("RAFF"))},
		{"bad wave", corrupt(8, []byte("WOVE"))},
		{"bad fmt", corrupt(12, []byte("xmt "))},
		{"bad data marker", corrupt(36, []byte("beef"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeWAV(tt.data); err == nil {
				t.Error("DecodeWAV() error = nil, want failure")
			}
		})
	}
}
