/*
File: writer.go
Description: Fixed-format text report writer. For each probed file it appends
a delimiter banner, the path relative to the parent of the scanned root, a
human-readable size, the structure description, and the raw preview. Pure
formatting; no inference decisions.
*/

package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fleetalytics/jsonprobe/pkg/interfaces"
)

const bannerWidth = 80

// TextWriter renders probe results as the plain-text preview report.
type TextWriter struct {
	out io.Writer

	// baseDir is the parent of the scanned root; file paths are reported
	// relative to it.
	baseDir string
}

// NewTextWriter creates a writer that reports paths relative to the parent of
// scanRoot.
func NewTextWriter(out io.Writer, scanRoot string) *TextWriter {
	return &TextWriter{
		out:     out,
		baseDir: filepath.Dir(scanRoot),
	}
}

// WriteHeader writes the report preamble.
func (t *TextWriter) WriteHeader(fileCount int) error {
	_, err := fmt.Fprintf(t.out, "JSON FILE PREVIEWS\nGenerated preview of %d JSON files\n\n", fileCount)
	return err
}

// WriteResult appends one file's preview block.
func (t *TextWriter) WriteResult(result interfaces.ProbeResult) error {
	banner := strings.Repeat("=", bannerWidth)

	_, err := fmt.Fprintf(t.out, "\n%s\nFILE: %s\nSIZE: %s\n%s\n\nSTRUCTURE: %s\n\nPREVIEW:\n%s\n\n",
		banner,
		t.relativePath(result.Path),
		FormatFileSize(result.FileSizeBytes),
		banner,
		result.Structure,
		result.RawPreview,
	)
	return err
}

func (t *TextWriter) relativePath(path string) string {
	rel, err := filepath.Rel(t.baseDir, path)
	if err != nil {
		return path
	}
	return rel
}

// FormatFileSize renders a byte count in a human-readable unit, dividing by
// 1024 per step with two-decimal precision. GB is the terminal unit even when
// the value exceeds 1024.
func FormatFileSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 || unit == "GB" {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f GB", size)
}
