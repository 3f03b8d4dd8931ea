/*
File: interfaces_test.go
Description: Tests for probe configuration validation and result helpers.
*/

package interfaces_test

import (
	"testing"

	"github.com/fleetalytics/jsonprobe/pkg/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() interfaces.ProbeConfig {
	return interfaces.ProbeConfig{
		ScanDir:      "almrrc2021",
		OutputPath:   "json_previews.txt",
		PreviewBytes: 10240,
		MaxKeys:      5,
		Workers:      1,
	}
}

func TestProbeConfigValidate(t *testing.T) {
	config := validConfig()
	assert.NoError(t, config.Validate())
}

func TestProbeConfigValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*interfaces.ProbeConfig)
		wantErr string
	}{
		{"empty scan dir", func(c *interfaces.ProbeConfig) { c.ScanDir = "" }, "scan_dir"},
		{"empty output", func(c *interfaces.ProbeConfig) { c.OutputPath = "" }, "output_path"},
		{"zero preview budget", func(c *interfaces.ProbeConfig) { c.PreviewBytes = 0 }, "preview_bytes"},
		{"negative key cap", func(c *interfaces.ProbeConfig) { c.MaxKeys = -1 }, "max_keys"},
		{"zero workers", func(c *interfaces.ProbeConfig) { c.Workers = 0 }, "workers"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := validConfig()
			tc.mutate(&config)
			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestProbeResultFailed(t *testing.T) {
	ok := interfaces.ProbeResult{Structure: "JSON array (list)"}
	failed := interfaces.ProbeResult{Structure: "Error"}

	assert.False(t, ok.Failed())
	assert.True(t, failed.Failed())
}
