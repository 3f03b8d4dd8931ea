/*
File: probe.go
Description: The structure prober. Orchestrates the tiered inference chain and
the raw preview reader, producing one ProbeResult per file. A probe never
fails: every error path degrades to descriptive text in the result.
*/

package probe

import (
	"os"

	"github.com/fleetalytics/jsonprobe/pkg/interfaces"
)

const (
	// DefaultPreviewBytes is the default raw preview budget per file.
	DefaultPreviewBytes = 10240
	// DefaultMaxKeys is the candidate key cap for object descriptions.
	DefaultMaxKeys = 5
)

// Prober infers the top-level structure of JSON-ish files. Safe for
// concurrent use; it holds no per-file state.
type Prober struct {
	previewBytes int
	maxKeys      int
}

// NewProber creates a prober with the given preview byte budget. Non-positive
// budgets are replaced with the default; the key cap is fixed.
func NewProber(previewBytes int) *Prober {
	if previewBytes <= 0 {
		previewBytes = DefaultPreviewBytes
	}
	return &Prober{
		previewBytes: previewBytes,
		maxKeys:      DefaultMaxKeys,
	}
}

// Probe reads the file's size and leading content and infers its structure.
// On a read failure the result carries an "Error reading file:" preview and a
// zero size instead of an error.
func (p *Prober) Probe(path string) interfaces.ProbeResult {
	info, err := os.Stat(path)
	if err != nil {
		return errorResult(path, err)
	}

	preview, err := readPrefixString(path, p.previewBytes)
	if err != nil {
		return errorResult(path, err)
	}

	return interfaces.ProbeResult{
		Path:          path,
		RawPreview:    preview,
		Structure:     p.Analyze(path).String(),
		FileSizeBytes: info.Size(),
	}
}

// Analyze runs the inference tiers in order, degrading to the next tier on
// error. Only when every tier fails does the tier-1 error surface, and then
// only as text inside the descriptor.
func (p *Prober) Analyze(path string) Descriptor {
	desc, firstErr := p.fastPath(path)
	if firstErr == nil {
		return desc
	}
	if desc, err := p.bracketMatch(path); err == nil {
		return desc
	}
	if desc, err := p.byteSniff(path); err == nil {
		return desc
	}
	return Descriptor{Kind: KindError, Err: firstErr.Error()}
}

func errorResult(path string, err error) interfaces.ProbeResult {
	return interfaces.ProbeResult{
		Path:       path,
		RawPreview: "Error reading file: " + err.Error(),
		Structure:  "Error",
	}
}
