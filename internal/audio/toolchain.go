// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     audio
// Description: ffmpeg toolchain discovery, decoding and export
// License:     MIT
// ============================================================================

package audio

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
)

// ErrToolchainNotFound is returned when ffmpeg cannot be located. Audio
// work fails fast on this before any network call is made.
var ErrToolchainNotFound = fmt.Errorf("required audio decoder not found: install ffmpeg and add it to PATH")

// Toolchain wraps the external ffmpeg binary used for all encoded-audio
// work: decoding MP3 to PCM, exporting PCM to MP3 and the speed filter.
type Toolchain struct {
	ffmpegPath string
}

// FindToolchain locates ffmpeg on the search path or at a small set of
// well-known installation locations. An explicit non-empty override skips
// discovery entirely.
func FindToolchain(override string) (*Toolchain, error) {
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return nil, fmt.Errorf("configured ffmpeg path %s: %w", override, err)
		}
		return &Toolchain{ffmpegPath: override}, nil
	}

	if path, err := exec.LookPath("ffmpeg"); err == nil {
		return &Toolchain{ffmpegPath: path}, nil
	}

	for _, path := range wellKnownPaths() {
		if _, err := os.Stat(path); err == nil {
			return &Toolchain{ffmpegPath: path}, nil
		}
	}

	return nil, ErrToolchainNotFound
}

// wellKnownPaths lists the installation locations probed when ffmpeg is
// not on the search path.
func wellKnownPaths() []string {
	cwd, _ := os.Getwd()

	if runtime.GOOS == "windows" {
		programFiles := os.Getenv("PROGRAMFILES")
		if programFiles == "" {
			programFiles = `C:\Program Files`
		}
		programFilesX86 := os.Getenv("PROGRAMFILES(X86)")
		if programFilesX86 == "" {
			programFilesX86 = `C:\Program Files (x86)`
		}
		systemDrive := os.Getenv("SYSTEMDRIVE")
		if systemDrive == "" {
			systemDrive = "C:"
		}
		return []string{
			filepath.Join(programFiles, "ffmpeg", "bin", "ffmpeg.exe"),
			filepath.Join(programFilesX86, "ffmpeg", "bin", "ffmpeg.exe"),
			filepath.Join(systemDrive, "ffmpeg", "bin", "ffmpeg.exe"),
			filepath.Join(cwd, "ffmpeg.exe"),
		}
	}

	return []string{
		"/usr/bin/ffmpeg",
		"/usr/local/bin/ffmpeg",
		"/opt/bin/ffmpeg",
		filepath.Join(cwd, "ffmpeg"),
	}
}

// Path returns the resolved ffmpeg binary path.
func (t *Toolchain) Path() string {
	return t.ffmpegPath
}

// Decode converts the encoded audio file at path into a mono 16-bit PCM
// Segment at the file's native sample rate.
func (t *Toolchain) Decode(ctx context.Context, path string) (*Segment, error) {
	tmp := tempFile("wav")
	defer removeQuiet(tmp)

	if err := t.run(ctx, "-y", "-i", path, "-acodec", "pcm_s16le", "-ac", "1", tmp); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio: %w", err)
	}
	return DecodeWAV(data)
}

// Export encodes a Segment as MP3 at outPath, overwriting any existing
// file.
func (t *Toolchain) Export(ctx context.Context, seg *Segment, outPath string) error {
	wav, err := EncodeWAV(seg)
	if err != nil {
		return err
	}

	tmp := tempFile("wav")
	defer removeQuiet(tmp)
	if err := os.WriteFile(tmp, wav, 0o644); err != nil {
		return fmt.Errorf("failed to stage audio for export: %w", err)
	}

	if err := t.run(ctx, "-y", "-i", tmp, "-codec:a", "libmp3lame", outPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", outPath, err)
	}
	return nil
}

// run executes ffmpeg with args, surfacing stderr in the error.
func (t *Toolchain) run(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, t.ffmpegPath, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w, stderr: %s", err, tail(stderr.String(), 400))
	}
	return nil
}

// tempFile returns a collision-free temp file path with the given
// extension. Unique names keep concurrent conversions from clobbering each
// other's intermediates.
func tempFile(ext string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("talevox-%s.%s", uuid.NewString(), ext))
}

// removeQuiet deletes path, ignoring failure. Cleanup must never mask the
// original error.
func removeQuiet(path string) {
	_ = os.Remove(path)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
