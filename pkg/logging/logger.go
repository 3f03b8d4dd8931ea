/*
File: logger.go
Description: Logging for the JSON probe. Wraps logrus with a timestamped log
file next to stdout output, plus structured helpers for scan progress.
*/

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warn"
	LogLevelError   LogLevel = "error"
)

// LogFormat represents the logging format.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

// LoggerConfig holds the configuration for the logger.
type LoggerConfig struct {
	Level     LogLevel  `json:"level"`
	Format    LogFormat `json:"format"`
	OutputDir string    `json:"output_dir"`
	Colors    bool      `json:"colors"`
}

// Validate checks the LoggerConfig for invalid or missing values.
// Returns an error if the config is invalid, or nil if valid.
func (c *LoggerConfig) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	switch c.Format {
	case LogFormatJSON, LogFormatText:
		// ok
	default:
		return fmt.Errorf("unsupported log format: %s", c.Format)
	}
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		// ok
	default:
		return fmt.Errorf("unsupported log level: %s", c.Level)
	}
	return nil
}

// DefaultLoggerConfig returns the configuration used when none is supplied.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:     LogLevelInfo,
		Format:    LogFormatText,
		OutputDir: "./logs",
		Colors:    true,
	}
}

// Logger writes structured scan logs to stdout and a timestamped file.
type Logger struct {
	config     *LoggerConfig
	logger     *logrus.Logger
	fileHandle *os.File
	startTime  time.Time
}

// NewLogger creates a new logger instance.
func NewLogger(config *LoggerConfig) (*Logger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger config: %w", err)
	}

	l := &Logger{
		config:    config,
		logger:    logrus.New(),
		startTime: time.Now(),
	}
	if err := l.setup(); err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return l, nil
}

// setup configures the underlying logrus instance and opens the log file.
func (l *Logger) setup() error {
	level, err := logrus.ParseLevel(string(l.config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logger.SetLevel(level)

	if l.config.Format == LogFormatJSON {
		l.logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.logger.SetFormatter(&ScanFormatter{Colors: l.config.Colors})
	}

	if err := os.MkdirAll(l.config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	filename := fmt.Sprintf("jsonprobe_%s.log", l.startTime.Format("2006-01-02_15-04-05"))
	file, err := os.OpenFile(filepath.Join(l.config.OutputDir, filename),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.fileHandle = file
	l.logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Logrus exposes the underlying logrus logger for components that take one.
func (l *Logger) Logrus() *logrus.Logger {
	return l.logger
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l.fileHandle == nil {
		return nil
	}
	err := l.fileHandle.Close()
	l.fileHandle = nil
	return err
}

// LogScanStart records the beginning of a preview run.
func (l *Logger) LogScanStart(scanDir string, fileCount int) {
	l.logger.WithFields(logrus.Fields{
		"scan_dir": scanDir,
		"files":    fileCount,
	}).Info("Starting JSON preview scan")
}

// LogFileProbed records one probed file.
func (l *Logger) LogFileProbed(path string, sizeBytes int64, structure string) {
	l.logger.WithFields(logrus.Fields{
		"file":      path,
		"size":      sizeBytes,
		"structure": structure,
	}).Debug("Probed file")
}

// LogScanComplete records the end of a preview run.
func (l *Logger) LogScanComplete(reportPath string, processed, failed int) {
	l.logger.WithFields(logrus.Fields{
		"report":    reportPath,
		"processed": processed,
		"failed":    failed,
		"duration":  time.Since(l.startTime),
	}).Info("Preview scan complete")
}

// Debug logs a debug message with fields.
func (l *Logger) Debug(msg string, fields logrus.Fields) {
	l.logger.WithFields(fields).Debug(msg)
}

// Info logs an info message with fields.
func (l *Logger) Info(msg string, fields logrus.Fields) {
	l.logger.WithFields(fields).Info(msg)
}

// Warn logs a warning message with fields.
func (l *Logger) Warn(msg string, fields logrus.Fields) {
	l.logger.WithFields(fields).Warn(msg)
}

// Error logs an error message with fields.
func (l *Logger) Error(msg string, fields logrus.Fields) {
	l.logger.WithFields(fields).Error(msg)
}
