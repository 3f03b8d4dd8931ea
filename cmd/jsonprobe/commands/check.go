/*
File: check.go
Description: Self-check command for the jsonprobe. Validates scan directory
existence, JSON file presence, and report/log destination writability before
a large scan is started.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fleetalytics/jsonprobe/pkg/scanner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformSelfCheck validates scan prerequisites
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Fleetalytics JSON Probe - Self-Check")
	fmt.Println("=======================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Scan Directory", checkScanDirectory},
		{"JSON Files Present", checkJSONFilesPresent},
		{"Report Destination", checkReportDestination},
		{"Log Directory", checkLogDirectory},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! Ready to scan.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before scanning.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkScanDirectory validates that the scan directory exists
func checkScanDirectory() error {
	scanDir := viper.GetString("scan_dir")
	info, err := os.Stat(scanDir)
	if err != nil {
		return fmt.Errorf("scan directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", scanDir)
	}
	return nil
}

// checkJSONFilesPresent validates that the scan directory contains JSON files
func checkJSONFilesPresent() error {
	files, err := scanner.NewFileScanner(nil).FindJSONFiles(viper.GetString("scan_dir"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json files found under %s", viper.GetString("scan_dir"))
	}
	return nil
}

// checkReportDestination validates that the report directory is writable
func checkReportDestination() error {
	return checkWritableDir(filepath.Dir(viper.GetString("output_path")))
}

// checkLogDirectory validates that the log directory is writable
func checkLogDirectory() error {
	logDir := viper.GetString("log_dir")
	if logDir == "" {
		logDir = "./logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return checkWritableDir(logDir)
}

// checkWritableDir verifies write access by creating and removing a temp file
func checkWritableDir(dir string) error {
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, ".jsonprobe-check-*")
	if err != nil {
		return fmt.Errorf("directory not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
