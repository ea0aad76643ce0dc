// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     pipeline
// Description: Front-end-agnostic PDF to audiobook conversion pipeline
// License:     MIT
// ============================================================================

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talevox/talevox/internal/audio"
	"github.com/talevox/talevox/internal/config"
	"github.com/talevox/talevox/internal/extract"
	"github.com/talevox/talevox/internal/text"
	"github.com/talevox/talevox/internal/tts"
	"github.com/talevox/talevox/pkg/logger"
)

// Stage identifies a pipeline phase for progress reporting.
type Stage int

const (
	StageExtracting Stage = iota
	StageCleaning
	StageChunking
	StageSynthesizing
	StageAssembling
	StageAdjusting
)

// String returns the progress label for the stage.
func (s Stage) String() string {
	switch s {
	case StageExtracting:
		return "extracting"
	case StageCleaning:
		return "cleaning"
	case StageChunking:
		return "chunking"
	case StageSynthesizing:
		return "synthesizing"
	case StageAssembling:
		return "assembling"
	case StageAdjusting:
		return "adjusting"
	default:
		return "unknown"
	}
}

// Engine is the audio backend the pipeline drives. *audio.Toolchain is the
// production implementation; tests substitute a stub.
type Engine interface {
	Decode(ctx context.Context, path string) (*audio.Segment, error)
	Assemble(ctx context.Context, segments []*audio.Segment, outPath string) error
	AdjustSpeed(ctx context.Context, path string, factor float64) error
}

// SynthesizerFactory creates a Synthesizer for a language. Injected so the
// front ends share one wiring and tests can stub the network.
type SynthesizerFactory func(cfg tts.Config) (tts.Synthesizer, error)

// Request describes one conversion.
type Request struct {
	// PDFPath is the input document. Ignored when Text is set: the TUI
	// passes the user-edited text directly.
	PDFPath string

	// Text, when non-empty, skips extraction and cleaning of the PDF and
	// synthesizes this text instead.
	Text string

	// OutputPath is the audiobook file to write. Overwritten if present.
	OutputPath string

	// Language is the synthesis language code. Empty means the configured
	// default.
	Language string

	// Speed is the playback speed factor in [0.5, 2.0]. Zero means the
	// configured default.
	Speed float64
}

// Result describes a completed conversion.
type Result struct {
	OutputPath string
	Chunks     int
	Duration   time.Duration

	// Warnings lists non-fatal problems, such as a failed speed
	// adjustment. The conversion still succeeded.
	Warnings []string
}

// ProgressFunc receives stage transitions. During synthesis done/total
// count chunks; other stages report 0/0.
type ProgressFunc func(stage Stage, done, total int)

// Converter runs the conversion pipeline. It is front-end agnostic and
// safe to share: each Convert call keeps all state on its own stack, and
// temp file names are unique per invocation.
type Converter struct {
	cfg      config.Config
	log      logger.Logger
	engine   Engine
	newSynth SynthesizerFactory

	// OnProgress, when set, receives stage transitions.
	OnProgress ProgressFunc
}

// New creates a Converter. engine may come from audio.FindToolchain;
// a nil engine defers the toolchain error until a conversion actually
// needs audio work, so text-only operations (extraction preview) still
// function without ffmpeg installed.
func New(cfg config.Config, log logger.Logger, engine Engine, newSynth SynthesizerFactory) *Converter {
	return &Converter{
		cfg:      cfg,
		log:      log,
		engine:   engine,
		newSynth: newSynth,
	}
}

// ExtractText runs extraction and cleaning only. The TUI uses this to fill
// the editable text view before conversion.
func (c *Converter) ExtractText(pdfPath string) (string, error) {
	if err := extract.ValidatePath(pdfPath); err != nil {
		c.log.Error("input validation failed", "pdf", pdfPath, "err", err)
		return "", errf(KindInput, "validate input", err)
	}

	raw, err := extract.Extract(pdfPath)
	if err != nil {
		c.log.Error("extraction failed", "pdf", pdfPath, "err", err)
		return "", errf(KindExtraction, "extract text", err)
	}
	if strings.TrimSpace(raw) == "" {
		c.log.Warn("no text extracted", "pdf", pdfPath)
		return "", errf(KindEmptyExtraction, "extract text",
			fmt.Errorf("no text extracted from %s; the file may be scanned or image-based", pdfPath))
	}

	return text.Clean(raw), nil
}

// Convert runs the full pipeline for one request. On success the audiobook
// file exists at req.OutputPath; all intermediate files are gone either
// way.
func (c *Converter) Convert(ctx context.Context, req Request) (*Result, error) {
	speed := req.Speed
	if speed == 0 {
		speed = c.cfg.Audio.Speed
	}
	language := req.Language
	if language == "" {
		language = c.cfg.TTS.Language
	}

	if req.OutputPath == "" {
		return nil, errf(KindInput, "validate request", fmt.Errorf("output path is required"))
	}
	if !audio.ValidSpeed(speed) {
		return nil, errf(KindInput, "validate request",
			fmt.Errorf("speed factor must be between %g and %g, got %g", audio.MinSpeed, audio.MaxSpeed, speed))
	}

	if dir := filepath.Dir(req.OutputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			c.log.Error("failed to create output directory", "dir", dir, "err", err)
			return nil, errf(KindInput, "create output directory", err)
		}
	}

	// Text to synthesize: the request's pre-edited text, or the cleaned
	// extraction of the PDF.
	cleaned := strings.TrimSpace(req.Text)
	if cleaned == "" {
		c.progress(StageExtracting, 0, 0)
		extracted, err := c.ExtractText(req.PDFPath)
		if err != nil {
			return nil, err
		}
		c.progress(StageCleaning, 0, 0)
		cleaned = extracted
	}

	c.progress(StageChunking, 0, 0)
	chunks := text.Chunk(cleaned, c.cfg.TTS.MaxChars)
	if len(chunks) == 0 {
		return nil, errf(KindEmptyExtraction, "chunk text", fmt.Errorf("no text to convert"))
	}
	c.log.Info("text chunked", "chunks", len(chunks), "max_chars", c.cfg.TTS.MaxChars)

	// The decoder requirement is checked before the first network call.
	if c.engine == nil {
		c.log.Error("audio toolchain unavailable")
		return nil, errf(KindToolchain, "locate audio toolchain", audio.ErrToolchainNotFound)
	}

	synth, err := c.newSynth(tts.Config{Language: language, Endpoint: c.cfg.TTS.Endpoint})
	if err != nil {
		c.log.Error("synthesizer setup failed", "language", language, "err", err)
		return nil, errf(KindSynthesis, "create synthesizer", err)
	}
	defer synth.Close()

	segments, err := c.synthesizeChunks(ctx, synth, chunks)
	if err != nil {
		return nil, err
	}

	c.progress(StageAssembling, 0, 0)
	if err := c.engine.Assemble(ctx, segments, req.OutputPath); err != nil {
		c.log.Error("assembly failed", "output", req.OutputPath, "err", err)
		return nil, errf(KindAssembly, "assemble audio", err)
	}

	result := &Result{
		OutputPath: req.OutputPath,
		Chunks:     len(chunks),
	}
	for _, seg := range segments {
		result.Duration += seg.Duration()
	}

	if speed != 1.0 {
		c.progress(StageAdjusting, 0, 0)
		if err := c.engine.AdjustSpeed(ctx, req.OutputPath, speed); err != nil {
			// Non-fatal: the unadjusted audiobook is kept.
			c.log.Warn("speed adjustment failed, keeping unadjusted audio", "factor", speed, "err", err)
			result.Warnings = append(result.Warnings,
				errf(KindSpeedAdjustment, "adjust speed", err).Error())
		}
	}

	c.log.Info("conversion finished",
		"output", req.OutputPath, "chunks", result.Chunks, "duration", result.Duration)
	return result, nil
}

// DecodeForPlayback loads a finished audiobook file into a PCM segment so a
// front end can play it through the local audio device.
func (c *Converter) DecodeForPlayback(ctx context.Context, path string) (*audio.Segment, error) {
	if c.engine == nil {
		return nil, errf(KindToolchain, "locate audio toolchain", audio.ErrToolchainNotFound)
	}
	seg, err := c.engine.Decode(ctx, path)
	if err != nil {
		c.log.Error("playback decode failed", "path", path, "err", err)
		return nil, errf(KindPlayback, "decode for playback", err)
	}
	return seg, nil
}

// synthesizeChunks synthesizes each chunk to a temp file sequentially and
// decodes it into a segment. Chunk i+1 is not started until chunk i's file
// is written, validated and decoded. All temp files are removed best-effort
// before returning, on success and on failure alike.
func (c *Converter) synthesizeChunks(ctx context.Context, synth tts.Synthesizer, chunks []string) ([]*audio.Segment, error) {
	var tempFiles []string
	defer func() {
		for _, f := range tempFiles {
			if err := os.Remove(f); err != nil && !os.IsNotExist(err) {
				c.log.Warn("failed to delete temp file", "path", f, "err", err)
			}
		}
	}()

	segments := make([]*audio.Segment, 0, len(chunks))
	for i, chunk := range chunks {
		c.progress(StageSynthesizing, i, len(chunks))

		path := filepath.Join(os.TempDir(), fmt.Sprintf("talevox-chunk-%s.mp3", uuid.NewString()))
		tempFiles = append(tempFiles, path)

		if err := synth.SynthesizeToFile(ctx, chunk, path); err != nil {
			c.log.Error("synthesis failed", "chunk", i+1, "of", len(chunks), "err", err)
			return nil, errf(KindSynthesis, fmt.Sprintf("synthesize chunk %d/%d", i+1, len(chunks)), err)
		}

		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			c.log.Error("synthesized file missing or empty", "chunk", i+1, "path", path)
			return nil, errf(KindSynthesis, fmt.Sprintf("validate chunk %d/%d", i+1, len(chunks)),
				fmt.Errorf("synthesized audio file %s is missing or empty", path))
		}

		seg, err := c.engine.Decode(ctx, path)
		if err != nil {
			c.log.Error("decoding failed", "chunk", i+1, "err", err)
			return nil, errf(KindSynthesis, fmt.Sprintf("decode chunk %d/%d", i+1, len(chunks)), err)
		}
		segments = append(segments, seg)
	}
	c.progress(StageSynthesizing, len(chunks), len(chunks))

	return segments, nil
}

func (c *Converter) progress(stage Stage, done, total int) {
	if c.OnProgress != nil {
		c.OnProgress(stage, done, total)
	}
}
