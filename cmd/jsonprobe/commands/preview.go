/*
File: preview.go
Description: Preview command implementation. Enumerates JSON files under the
scan directory, probes each one for structure, and writes the text report and
the machine-readable run summary.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/fleetalytics/jsonprobe/pkg/probe"
	"github.com/fleetalytics/jsonprobe/pkg/report"
	"github.com/fleetalytics/jsonprobe/pkg/scanner"
	"github.com/spf13/cobra"
)

// RunPreview executes the scan-and-report run
func RunPreview(cmd *cobra.Command, args []string) error {
	fmt.Println("📦 Fleetalytics JSON Probe - Preview Scan")
	fmt.Println("=========================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	// Build and validate configuration
	config := createProbeConfig()
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Printf("📁 Scanning directory: %s\n", config.ScanDir)
	fmt.Printf("📄 Report output: %s\n", config.OutputPath)
	fmt.Println()

	// Find all JSON files
	files, err := scanner.NewFileScanner(logger.Logrus()).FindJSONFiles(config.ScanDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", config.ScanDir, err)
	}
	fmt.Printf("📊 Found %d JSON files\n", len(files))
	fmt.Println()

	logger.LogScanStart(config.ScanDir, len(files))

	// Probe every file; a single file's failure degrades to an error entry
	prober := probe.NewProber(config.PreviewBytes)
	results := probe.ProbeAll(prober, files, config.Workers)

	// Create the report file
	out, err := os.Create(config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer out.Close()

	writer := report.NewTextWriter(out, config.ScanDir)
	if err := writer.WriteHeader(len(files)); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	summary := report.NewRunSummary(config.ScanDir, config.OutputPath)
	summary.FilesFound = len(files)

	for _, result := range results {
		if err := writer.WriteResult(result); err != nil {
			return fmt.Errorf("failed to write report entry: %w", err)
		}
		summary.Add(result)
		logger.LogFileProbed(result.Path, result.FileSizeBytes, result.Structure)

		fmt.Printf("Processed: %s (%s)\n", result.Path, report.FormatFileSize(result.FileSizeBytes))
	}

	// Write the machine-readable summary
	if config.SummaryPath != "" {
		if err := summary.Write(config.SummaryPath); err != nil {
			return fmt.Errorf("failed to write run summary: %w", err)
		}
	}

	logger.LogScanComplete(config.OutputPath, summary.FilesProcessed, summary.FilesFailed)

	fmt.Println()
	fmt.Printf("✨ Preview file created: %s\n", config.OutputPath)
	return nil
}
