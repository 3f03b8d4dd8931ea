/*
File: inspect.go
Description: Inspect command implementation. Probes a single file with the
same tiered analysis as the preview scan and prints the result to stdout.
*/

package commands

import (
	"fmt"

	"github.com/fleetalytics/jsonprobe/pkg/probe"
	"github.com/fleetalytics/jsonprobe/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunInspect probes one file and prints the result
func RunInspect(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Fleetalytics JSON Probe - Inspect")
	fmt.Println("====================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	path := args[0]
	prober := probe.NewProber(viper.GetInt("preview_bytes"))
	result := prober.Probe(path)

	fmt.Printf("FILE: %s\n", path)
	fmt.Printf("SIZE: %s\n", report.FormatFileSize(result.FileSizeBytes))
	fmt.Printf("STRUCTURE: %s\n", result.Structure)
	fmt.Println()
	fmt.Println("PREVIEW:")
	fmt.Println(result.RawPreview)

	return nil
}
