/*
File: interfaces.go
Description: Core interfaces and shared types for the Fleetalytics JSON probe.
Defines the contracts between the file scanner, the structure prober, and the
report writers, plus the configuration struct passed to the entry point.
*/

package interfaces

import "fmt"

// ProbeResult holds everything learned about a single file: a raw preview of
// its leading content, a human-readable description of its top-level JSON
// structure, and its size on disk. One is produced per file and never mutated
// after construction.
type ProbeResult struct {
	Path          string `json:"path"`
	RawPreview    string `json:"preview"`
	Structure     string `json:"structure"`
	FileSizeBytes int64  `json:"file_size"`
}

// Failed reports whether the probe could not read the file at all. Structure
// inference failures are not fatal; they degrade to descriptive text instead.
func (r *ProbeResult) Failed() bool {
	return r.Structure == "Error"
}

// ProbeConfig holds the configuration for a preview run. It is built from CLI
// flags, config files, and environment variables, and handed explicitly to the
// components that need it.
type ProbeConfig struct {
	ScanDir      string `json:"scan_dir"`      // root directory to scan for .json files
	OutputPath   string `json:"output_path"`   // text report destination
	SummaryPath  string `json:"summary_path"`  // machine-readable run summary destination
	PreviewBytes int    `json:"preview_bytes"` // raw preview budget per file
	MaxKeys      int    `json:"max_keys"`      // candidate key cap for object descriptions
	Workers      int    `json:"workers"`       // parallel probe workers (1 = sequential)
}

// Validate checks the ProbeConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *ProbeConfig) Validate() error {
	if c.ScanDir == "" {
		return fmt.Errorf("scan_dir must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path must not be empty")
	}
	if c.PreviewBytes <= 0 {
		return fmt.Errorf("preview_bytes must be positive")
	}
	if c.MaxKeys <= 0 {
		return fmt.Errorf("max_keys must be positive")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}

// Scanner enumerates the files eligible for probing under a root directory.
// The returned order is deterministic for a given filesystem snapshot.
type Scanner interface {
	FindJSONFiles(root string) ([]string, error)
}

// Prober performs one structure-inference pass over a single file. It never
// returns an error: every failure path degrades to descriptive text inside
// the ProbeResult.
type Prober interface {
	Probe(path string) ProbeResult
}

// ReportSink receives probe results for rendering. Implementations are pure
// formatting; they make no inference decisions of their own.
type ReportSink interface {
	WriteHeader(fileCount int) error
	WriteResult(result ProbeResult) error
}
