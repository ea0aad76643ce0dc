// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     audio
// Description: WAV encoding and decoding for mono 16-bit PCM
// License:     MIT
// ============================================================================

package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// wavHeader is the canonical 44-byte RIFF/WAVE header for PCM data.
type wavHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // file size - 8
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16 // NumChannels * BitsPerSample / 8
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // bytes of sample data
}

// EncodeWAV serializes a Segment into a WAV byte stream.
func EncodeWAV(seg *Segment) ([]byte, error) {
	if seg == nil || len(seg.Samples) == 0 {
		return nil, fmt.Errorf("cannot encode empty audio segment")
	}
	if seg.SampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", seg.SampleRate)
	}

	const (
		numChannels   = uint16(1)
		bitsPerSample = uint16(16)
	)
	dataSize := uint32(len(seg.Samples) * 2)

	header := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   numChannels,
		SampleRate:    uint32(seg.SampleRate),
		ByteRate:      uint32(seg.SampleRate) * uint32(numChannels) * uint32(bitsPerSample) / 8,
		BlockAlign:    numChannels * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	buf := bytes.NewBuffer(make([]byte, 0, 44+len(seg.Samples)*2))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, seg.Samples); err != nil {
		return nil, fmt.Errorf("failed to write WAV data: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeWAV parses a WAV byte stream into a Segment by walking the RIFF
// chunks until fmt and data are found. ffmpeg inserts a LIST/INFO chunk
// between the two, so fixed offsets cannot be assumed. Only mono 16-bit
// PCM is supported, which is the only format the toolchain produces.
func DecodeWAV(data []byte) (*Segment, error) {
	if len(data) < 44 {
		return nil, fmt.Errorf("WAV data too short: need at least 44 bytes, got %d", len(data))
	}
	if string(data[0:4]) != "RIFF" {
		return nil, fmt.Errorf("invalid WAV file: missing RIFF header")
	}
	if string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("invalid WAV file: missing WAVE format")
	}

	var (
		fmtFound      bool
		audioFormat   uint16
		numChannels   uint16
		bitsPerSample uint16
		sampleRate    uint32
		sampleData    []byte
	)

	pos := 12
	for pos+8 <= len(data) {
		chunkID := string(data[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := data[pos+8:]
		if chunkSize > len(body) {
			chunkSize = len(body)
		}

		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("invalid WAV file: fmt chunk too short (%d bytes)", chunkSize)
			}
			fmtFound = true
			audioFormat = binary.LittleEndian.Uint16(body[0:2])
			numChannels = binary.LittleEndian.Uint16(body[2:4])
			sampleRate = binary.LittleEndian.Uint32(body[4:8])
			bitsPerSample = binary.LittleEndian.Uint16(body[14:16])
		case "data":
			sampleData = body[:chunkSize]
		}

		pos += 8 + chunkSize
		if pos%2 != 0 {
			pos++ // word alignment
		}
	}

	if !fmtFound {
		return nil, fmt.Errorf("invalid WAV file: missing fmt chunk")
	}
	if sampleData == nil {
		return nil, fmt.Errorf("invalid WAV file: missing data chunk")
	}
	if audioFormat != 1 {
		return nil, fmt.Errorf("unsupported audio format: %d (only PCM is supported)", audioFormat)
	}
	if bitsPerSample != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (only 16-bit is supported)", bitsPerSample)
	}
	if numChannels != 1 {
		return nil, fmt.Errorf("unsupported channel count: %d (only mono is supported)", numChannels)
	}

	numSamples := len(sampleData) / 2
	if numSamples <= 0 {
		return nil, fmt.Errorf("no audio data found")
	}

	samples := make([]int16, numSamples)
	if err := binary.Read(bytes.NewReader(sampleData[:numSamples*2]), binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("failed to read WAV samples: %w", err)
	}

	return &Segment{Samples: samples, SampleRate: int(sampleRate)}, nil
}
