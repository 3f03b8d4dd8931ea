/*
File: probe_test.go
Description: Behavior tests for the structure prober. Covers fast-path key
extraction, NaN tolerance, the candidate key cap, read-failure degradation,
preview budgets, and probe idempotence.
*/

package probe_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fleetalytics/jsonprobe/pkg/probe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestProbeObjectKeysInOrder(t *testing.T) {
	path := writeFile(t, "routes.json", `{"a": 1, "b": 2, "c": 3}`)

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "JSON object with keys including: a, b, c", result.Structure)
	assert.False(t, result.Failed())
}

func TestProbeToleratesNaNValues(t *testing.T) {
	path := writeFile(t, "stops.json", `{"x": NaN, "y": 2}`)

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "JSON object with keys including: x, y", result.Structure)
}

func TestProbeArray(t *testing.T) {
	path := writeFile(t, "packages.json", `[1, 2, 3]`)

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "JSON array (list)", result.Structure)
	assert.NotContains(t, result.Structure, "keys")
}

func TestProbeUnknownStructure(t *testing.T) {
	path := writeFile(t, "notes.json", "hello world")

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "Unknown JSON structure", result.Structure)
}

func TestProbeEmptyObject(t *testing.T) {
	path := writeFile(t, "empty.json", `{}`)

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "JSON object (dictionary)", result.Structure)
}

func TestProbeKeyCapAndDeduplication(t *testing.T) {
	content := `{"k1": 1, "k2": 2, "k1": 3, "k3": 4, "k4": 5, "k5": 6, "k6": 7, "k7": 8}`
	path := writeFile(t, "wide.json", content)

	result := probe.NewProber(0).Probe(path)

	// First five distinct keys in first-seen order, duplicate k1 ignored.
	assert.Equal(t, "JSON object with keys including: k1, k2, k3, k4, k5", result.Structure)
}

func TestProbeNestedKeysAreSampledToo(t *testing.T) {
	// The key scan runs over raw text, so nested object keys surface in the
	// candidate list. Known heuristic behavior, kept on purpose.
	path := writeFile(t, "nested.json", `{"outer": {"inner": 1}}`)

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "JSON object with keys including: outer, inner", result.Structure)
}

func TestProbeMissingFile(t *testing.T) {
	result := probe.NewProber(0).Probe(filepath.Join(t.TempDir(), "missing.json"))

	assert.True(t, strings.HasPrefix(result.RawPreview, "Error reading file:"))
	assert.Equal(t, "Error", result.Structure)
	assert.Equal(t, int64(0), result.FileSizeBytes)
	assert.True(t, result.Failed())
}

func TestProbePreviewHonorsBudget(t *testing.T) {
	content := strings.Repeat("x", 100)
	path := writeFile(t, "big.json", content)

	result := probe.NewProber(16).Probe(path)

	assert.Len(t, result.RawPreview, 16)
	assert.Equal(t, int64(100), result.FileSizeBytes)
}

func TestProbePreviewShorterThanBudget(t *testing.T) {
	path := writeFile(t, "small.json", `{"a": 1}`)

	result := probe.NewProber(4096).Probe(path)

	assert.Equal(t, `{"a": 1}`, result.RawPreview)
}

func TestProbeTolerantDecoding(t *testing.T) {
	// Invalid UTF-8 bytes become replacement characters, not failures.
	path := filepath.Join(t.TempDir(), "dirty.json")
	require.NoError(t, os.WriteFile(path, []byte{'{', '"', 'a', '"', ':', 0xff, 0xfe, '}'}, 0644))

	result := probe.NewProber(0).Probe(path)

	assert.Equal(t, "JSON object with keys including: a", result.Structure)
	assert.Contains(t, result.RawPreview, "�")
}

func TestProbeIsIdempotent(t *testing.T) {
	path := writeFile(t, "stable.json", `{"route": "A1", "stops": [1, 2], "weight": NaN}`)

	prober := probe.NewProber(0)
	first := prober.Probe(path)
	second := prober.Probe(path)

	assert.Equal(t, first, second)
}

func TestProbeLargeFileReportsFullSize(t *testing.T) {
	content := `{"payload": "` + strings.Repeat("z", 20000) + `"}`
	path := writeFile(t, "huge.json", content)

	result := probe.NewProber(probe.DefaultPreviewBytes).Probe(path)

	assert.Equal(t, int64(len(content)), result.FileSizeBytes)
	assert.Len(t, result.RawPreview, probe.DefaultPreviewBytes)
	assert.Equal(t, "JSON object with keys including: payload", result.Structure)
}
