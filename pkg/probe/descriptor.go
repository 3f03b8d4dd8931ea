/*
File: descriptor.go
Description: Tagged structure descriptor produced by the inference tiers.
Each tier returns a Descriptor instead of a pre-rendered string so the tiers
stay independently testable; rendering happens once, in String.
*/

package probe

import "strings"

// Kind identifies the top-level shape a tier inferred for a file.
type Kind int

const (
	// KindObject is a top-level JSON object, optionally with candidate keys.
	KindObject Kind = iota
	// KindArray is a top-level JSON array.
	KindArray
	// KindUnknown means the leading content matched no known JSON shape.
	KindUnknown
	// KindPartial means a structure was detected but could not be parsed
	// within the read budget.
	KindPartial
	// KindError carries the tier-1 error message after every tier failed.
	KindError
)

// Descriptor is the result of one inference tier.
type Descriptor struct {
	Kind Kind

	// Keys holds candidate top-level key names for KindObject, in first-seen
	// order, deduplicated, capped by the prober's key limit. A representative
	// sample, not an exhaustive listing.
	Keys []string

	// Suffix is a qualifier appended to the rendered base description, used
	// by the byte-sniff tier to flag non-standard numeric values.
	Suffix string

	// Err is the original tier-1 error message, set only for KindError.
	Err string
}

// String renders the descriptor as the human-readable description that ends
// up in the report.
func (d Descriptor) String() string {
	switch d.Kind {
	case KindObject:
		if len(d.Keys) > 0 {
			return "JSON object with keys including: " + strings.Join(d.Keys, ", ")
		}
		return "JSON object (dictionary)" + d.Suffix
	case KindArray:
		return "JSON array (list)" + d.Suffix
	case KindPartial:
		return "JSON structure detected, but details could not be parsed"
	case KindError:
		return "Could not analyze structure: " + d.Err
	default:
		return "Unknown JSON structure" + d.Suffix
	}
}
