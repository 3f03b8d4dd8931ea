/*
File: summary.go
Description: Machine-readable run summary written alongside the text report.
Carries a run ID, timing, per-file outcomes, and aggregate counts so scan runs
can be compared or fed into other tooling.
*/

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fleetalytics/jsonprobe/pkg/interfaces"
	"github.com/google/uuid"
)

// FileSummary is the per-file slice of the run summary. The preview text is
// deliberately left out; it lives in the text report.
type FileSummary struct {
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
	SizeHuman string `json:"size_human"`
	Structure string `json:"structure"`
	Failed    bool   `json:"failed,omitempty"`
}

// RunSummary aggregates one preview run.
type RunSummary struct {
	RunID          string        `json:"run_id"`
	ScanDir        string        `json:"scan_dir"`
	ReportPath     string        `json:"report_path"`
	StartedAt      time.Time     `json:"started_at"`
	FinishedAt     time.Time     `json:"finished_at"`
	FilesFound     int           `json:"files_found"`
	FilesProcessed int           `json:"files_processed"`
	FilesFailed    int           `json:"files_failed"`
	Files          []FileSummary `json:"files"`
}

// NewRunSummary starts a summary for a scan of scanDir reporting to
// reportPath.
func NewRunSummary(scanDir, reportPath string) *RunSummary {
	return &RunSummary{
		RunID:      uuid.New().String(),
		ScanDir:    scanDir,
		ReportPath: reportPath,
		StartedAt:  time.Now().UTC(),
	}
}

// Add records one probe result.
func (s *RunSummary) Add(result interfaces.ProbeResult) {
	failed := result.Failed()
	s.Files = append(s.Files, FileSummary{
		Path:      result.Path,
		SizeBytes: result.FileSizeBytes,
		SizeHuman: FormatFileSize(result.FileSizeBytes),
		Structure: result.Structure,
		Failed:    failed,
	})
	s.FilesProcessed++
	if failed {
		s.FilesFailed++
	}
}

// Write finalizes the summary and writes it as indented JSON.
func (s *RunSummary) Write(path string) error {
	s.FinishedAt = time.Now().UTC()
	if s.FilesFound == 0 {
		s.FilesFound = s.FilesProcessed
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	return nil
}
