// ============================================================================
// TaleVox - PDF to Audiobook Converter
// ============================================================================
//
// Package:     extract
// Description: PDF text extraction via MuPDF (go-fitz)
// License:     MIT
// ============================================================================

package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// ValidatePath checks that path exists, is a regular file and looks like a
// PDF before the document is handed to MuPDF.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("file path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("cannot access file %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return fmt.Errorf("file is not a PDF (has extension %q): %s", ext, path)
	}
	return nil
}

// Extract reads every page of the PDF at path and returns the concatenated
// text, each non-empty page followed by a newline. A PDF with no extractable
// text (scanned or image-only) returns an empty string and no error; the
// caller distinguishes that from a hard failure.
func Extract(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		pageText, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d of %s: %w", page+1, path, err)
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}
