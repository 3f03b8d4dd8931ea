/*
File: decode.go
Description: Tolerant file reading for the probe tiers. Reads a byte-budgeted
prefix of a file and decodes it as UTF-8 with replacement, so undecodable
byte sequences become U+FFFD instead of failing the probe.
*/

package probe

import (
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readPrefix reads up to budget raw bytes from the start of the file.
func readPrefix(path string, budget int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(budget)))
	if err != nil {
		return nil, err
	}
	return data, nil
}

// decodeTolerant converts raw bytes to a string, substituting the Unicode
// replacement character for invalid UTF-8 sequences.
func decodeTolerant(raw []byte) string {
	decoded, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
	if err != nil {
		// The replacement decoder does not fail on bad input; keep the raw
		// bytes if it ever does.
		return string(raw)
	}
	return string(decoded)
}

// readPrefixString combines readPrefix and decodeTolerant.
func readPrefixString(path string, budget int) (string, error) {
	raw, err := readPrefix(path, budget)
	if err != nil {
		return "", err
	}
	return decodeTolerant(raw), nil
}
