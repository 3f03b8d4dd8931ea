/*
File: tiers_test.go
Description: Tier-level tests for the structure sniffer. Each tier is
exercised directly so its contract holds independently of the fallback chain.
*/

package probe

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTopLevelKeysDocumentOrder(t *testing.T) {
	keys, err := topLevelKeys(`{"z": 1, "a": {"b": 2}, "m": [1, 2, 3]}`, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestTopLevelKeysCap(t *testing.T) {
	keys, err := topLevelKeys(`{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6,"g":7}`, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, keys)
}

func TestTopLevelKeysRejectsNonObjects(t *testing.T) {
	_, err := topLevelKeys(`[1, 2, 3]`, 5)
	assert.Error(t, err)

	_, err = topLevelKeys(`{"a": }`, 5)
	assert.Error(t, err)
}

func TestExtractKeysSkipsUnquotedValues(t *testing.T) {
	p := NewProber(0)

	keys := p.extractKeys(`{"route": "A1", "distance": 12.5}`)

	// "A1" is a value, not followed by a colon, so it must not appear.
	assert.Equal(t, []string{"route", "distance"}, keys)
}

func TestFastPathReadFailureReturnsError(t *testing.T) {
	p := NewProber(0)

	_, err := p.fastPath(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestBracketMatchParsesFirstObject(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `{"beta": 1, "alpha": {"nested": true}}{"second": 2}`)

	desc, err := p.bracketMatch(path)

	require.NoError(t, err)
	assert.Equal(t, KindObject, desc.Kind)
	assert.Equal(t, []string{"beta", "alpha"}, desc.Keys)
}

func TestBracketMatchNonObject(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `[1, 2, 3]`)

	desc, err := p.bracketMatch(path)

	require.NoError(t, err)
	assert.Equal(t, KindPartial, desc.Kind)
}

func TestBracketMatchUnterminatedObject(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `{"a": 1, "b": {"c": 2}`)

	desc, err := p.bracketMatch(path)

	require.NoError(t, err)
	assert.Equal(t, KindPartial, desc.Kind)
}

func TestBracketMatchUnparseableObject(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `{"a": not-json}`)

	desc, err := p.bracketMatch(path)

	require.NoError(t, err)
	assert.Equal(t, KindPartial, desc.Kind)
}

func TestBracketMatchSubstitutesNaN(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `{"weight": NaN, "id": 7}`)

	desc, err := p.bracketMatch(path)

	require.NoError(t, err)
	assert.Equal(t, KindObject, desc.Kind)
	assert.Equal(t, []string{"weight", "id"}, desc.Keys)
}

func TestByteSniffObject(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `{"a": NaN}`)

	desc, err := p.byteSniff(path)

	require.NoError(t, err)
	assert.Equal(t, "JSON object (dictionary) with non-standard numeric values", desc.String())
}

func TestByteSniffArray(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `[NaN]`)

	desc, err := p.byteSniff(path)

	require.NoError(t, err)
	assert.Equal(t, "JSON array (list) with non-standard numeric values", desc.String())
}

func TestByteSniffUnknown(t *testing.T) {
	p := NewProber(0)
	path := tempFile(t, `plain text`)

	desc, err := p.byteSniff(path)

	require.NoError(t, err)
	assert.Equal(t, "Unknown JSON structure with possible non-standard numeric values", desc.String())
}

func TestTruncateRunesNeverSplitsARune(t *testing.T) {
	s := "日本語テキスト"

	assert.Equal(t, "日本", truncateRunes(s, 2))
	assert.Equal(t, s, truncateRunes(s, 100))
}

func TestCleanContentReplacesNaN(t *testing.T) {
	assert.Equal(t, `{"x": null}`, cleanContent(`{"x": NaN}`))
	assert.Equal(t, `{"x": 1}`, cleanContent(`{"x": 1}`))
}
