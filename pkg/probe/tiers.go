/*
File: tiers.go
Description: The three inference tiers of the structure sniffer. Each tier
returns a Descriptor or an error; an error means "degrade to the next tier".
Tier 1 is a lexical fast path, tier 2 brace-matches and parses one complete
top-level object, tier 3 sniffs a single raw byte.
*/

package probe

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

const (
	// fastPathWindow is how much of the file the fast path inspects.
	fastPathWindow = 1024
	// keyScanWindow limits how far into the cleaned text candidate keys are
	// extracted.
	keyScanWindow = 1000
	// bracketWindow is the read budget for the brace-matching tier.
	bracketWindow = 10240

	nonStandardSuffix      = " with non-standard numeric values"
	maybeNonStandardSuffix = " with possible non-standard numeric values"
)

// keyPattern matches a double-quoted token followed by a colon. It runs over
// raw unparsed text, so nested objects and string values containing `"word":`
// can produce false-positive keys; the capped "keys including" wording frames
// the result as a sample for exactly that reason.
var keyPattern = regexp.MustCompile(`"([^"]+)"\s*:`)

// cleanContent applies the NaN->null lexical substitution. This is a cheap
// fix for one known non-standard-JSON extension, not relaxed-JSON support.
func cleanContent(s string) string {
	return strings.ReplaceAll(s, "NaN", "null")
}

// truncateRunes returns at most n characters of s, never splitting a rune.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// fastPath inspects the first non-whitespace character of the cleaned leading
// content and, for objects, extracts candidate keys lexically.
func (p *Prober) fastPath(path string) (Descriptor, error) {
	content, err := readPrefixString(path, fastPathWindow)
	if err != nil {
		return Descriptor{}, err
	}
	clean := cleanContent(content)

	switch {
	case strings.HasPrefix(strings.TrimSpace(clean), "{"):
		return Descriptor{
			Kind: KindObject,
			Keys: p.extractKeys(truncateRunes(clean, keyScanWindow)),
		}, nil
	case strings.HasPrefix(strings.TrimSpace(clean), "["):
		return Descriptor{Kind: KindArray}, nil
	default:
		return Descriptor{Kind: KindUnknown}, nil
	}
}

// extractKeys pulls candidate key names out of raw object text, deduplicated
// in first-seen order and capped at the prober's key limit.
func (p *Prober) extractKeys(text string) []string {
	matches := keyPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var keys []string
	for _, m := range matches {
		key := m[1]
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
		if len(keys) >= p.maxKeys {
			break
		}
	}
	return keys
}

// bracketMatch re-reads a larger window, locates the first complete top-level
// object by brace depth, and parses it properly to list keys in document
// order. The depth scan ignores braces inside strings; that imprecision is
// acceptable for a preview heuristic.
func (p *Prober) bracketMatch(path string) (Descriptor, error) {
	content, err := readPrefixString(path, bracketWindow)
	if err != nil {
		return Descriptor{}, err
	}
	clean := cleanContent(content)
	if !strings.HasPrefix(strings.TrimSpace(clean), "{") {
		return Descriptor{Kind: KindPartial}, nil
	}

	depth := 0
	end := 0
	for i, c := range clean {
		if c == '{' {
			depth++
		} else if c == '}' {
			depth--
			if depth == 0 {
				end = i + 1
				break
			}
		}
	}
	if end == 0 {
		return Descriptor{Kind: KindPartial}, nil
	}

	keys, err := topLevelKeys(clean[:end], p.maxKeys)
	if err != nil {
		return Descriptor{Kind: KindPartial}, nil
	}
	return Descriptor{Kind: KindObject, Keys: keys}, nil
}

// topLevelKeys parses a complete JSON object and returns its first max keys
// in document order. Uses the token stream rather than a map so insertion
// order survives.
func topLevelKeys(text string, max int) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(text))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("not a JSON object")
	}

	seen := make(map[string]struct{})
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		if _, dup := seen[key]; !dup {
			seen[key] = struct{}{}
			if len(keys) < max {
				keys = append(keys, key)
			}
		}

		// Consume the value so the decoder advances to the next key.
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return keys, nil
}

// byteSniff is the last resort: one raw byte, tolerantly decoded.
func (p *Prober) byteSniff(path string) (Descriptor, error) {
	raw, err := readPrefix(path, 1)
	if err != nil {
		return Descriptor{}, err
	}
	switch {
	case strings.HasPrefix(decodeTolerant(raw), "{"):
		return Descriptor{Kind: KindObject, Suffix: nonStandardSuffix}, nil
	case strings.HasPrefix(decodeTolerant(raw), "["):
		return Descriptor{Kind: KindArray, Suffix: nonStandardSuffix}, nil
	default:
		return Descriptor{Kind: KindUnknown, Suffix: maybeNonStandardSuffix}, nil
	}
}
