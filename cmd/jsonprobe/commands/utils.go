/*
File: utils.go
Description: Shared utilities for the jsonprobe commands. Provides common
configuration loading, logging setup, and the config struct assembly used
across all command implementations.
*/

package commands

import (
	"fmt"

	"github.com/fleetalytics/jsonprobe/pkg/interfaces"
	"github.com/fleetalytics/jsonprobe/pkg/logging"
	"github.com/fleetalytics/jsonprobe/pkg/probe"
	"github.com/spf13/viper"
)

// Package-level logger shared by the command implementations, created by
// SetupLogging.
var logger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("JSONPROBE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system
func SetupLogging() error {
	format := logging.LogFormatText
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		Colors:    !viper.GetBool("no_colors"),
	}

	l, err := logging.NewLogger(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l

	return nil
}

// createProbeConfig assembles the ProbeConfig from the loaded configuration.
func createProbeConfig() *interfaces.ProbeConfig {
	return &interfaces.ProbeConfig{
		ScanDir:      viper.GetString("scan_dir"),
		OutputPath:   viper.GetString("output_path"),
		SummaryPath:  viper.GetString("summary_path"),
		PreviewBytes: viper.GetInt("preview_bytes"),
		MaxKeys:      probe.DefaultMaxKeys,
		Workers:      viper.GetInt("workers"),
	}
}
