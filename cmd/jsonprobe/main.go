/*
File: main.go
Description: Command-line interface for the Fleetalytics JSON probe. Provides
the preview, inspect, and check commands with configuration management and
structured logging for scanning data drops of large JSON files.
*/

package main

import (
	"fmt"
	"os"

	"github.com/fleetalytics/jsonprobe/cmd/jsonprobe/commands"
	"github.com/fleetalytics/jsonprobe/pkg/probe"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logDir     string
	jsonLogs   bool
	noColors   bool

	// Scan configuration
	scanDir      string
	outputPath   string
	summaryPath  string
	previewBytes int
	workers      int
)

func main() {
	_ = godotenv.Load()

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "jsonprobe",
		Short: "Fleetalytics JSON probe - structure previews for large JSON files",
		Long: `jsonprobe scans a directory tree for JSON files and writes a preview report
describing each file's top-level structure without fully parsing it. Files with
non-standard tokens such as unquoted NaN values are handled with a tiered
fallback analysis instead of being rejected.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")
	rootCmd.PersistentFlags().BoolVar(&noColors, "no-colors", false, "Disable colored log output")

	// Scan flags are persistent so preview, inspect, and check share one
	// viper binding each.
	rootCmd.PersistentFlags().StringVar(&scanDir, "dir", "almrrc2021", "Base directory containing the JSON files")
	rootCmd.PersistentFlags().StringVar(&outputPath, "output", "json_previews.txt", "Output file to write previews to")
	rootCmd.PersistentFlags().StringVar(&summaryPath, "summary", "json_preview_summary.json", "Output file for the JSON run summary")
	rootCmd.PersistentFlags().IntVar(&previewBytes, "size", probe.DefaultPreviewBytes, "Number of bytes to preview from each file")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 1, "Number of parallel probe workers")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("no_colors", rootCmd.PersistentFlags().Lookup("no-colors"))
	viper.BindPFlag("scan_dir", rootCmd.PersistentFlags().Lookup("dir"))
	viper.BindPFlag("output_path", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("summary_path", rootCmd.PersistentFlags().Lookup("summary"))
	viper.BindPFlag("preview_bytes", rootCmd.PersistentFlags().Lookup("size"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))

	// Add preview command
	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Scan a directory for JSON files and write a preview report",
		Long: `Recursively find every .json file under the scan directory, probe each one
for its top-level structure, and write a fixed-format text report plus a
machine-readable run summary. A single unreadable file degrades to an error
entry in the report; it never aborts the scan.`,
		RunE: commands.RunPreview,
	}
	rootCmd.AddCommand(previewCmd)

	// Add inspect command
	inspectCmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Probe a single JSON file and print the result",
		Long: `Probe one file with the same tiered structure analysis used by preview and
print the structure description, size, and raw preview to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunInspect,
	}
	rootCmd.AddCommand(inspectCmd)

	// Add check command for built-in self-checks
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for scan prerequisites",
		Long: `Validate that the scan directory exists and contains JSON files, and that
the report and log destinations are writable. Useful before large scans and
for CI integration.`,
		RunE: commands.PerformSelfCheck,
	}
	rootCmd.AddCommand(checkCmd)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
