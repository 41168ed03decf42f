package jsonschema

import "strings"

// Draft identifies a JSON Schema specification revision. The keyword set
// and reference semantics ($recursiveRef vs $dynamicRef, $id vs id) a
// Schema honors are draft-dependent.
type Draft int

const (
	// DraftUnknown means no draft could be determined; callers get the
	// DefaultDraft behavior.
	DraftUnknown Draft = iota
	Draft4
	Draft6
	Draft7
	Draft2019
	Draft2020
)

// DefaultDraft is used when a schema has no `$schema` keyword and the
// caller gave no hint. Draft 2020-12 is the safer default for a library
// whose keyword tables are built around it; the historical default is a
// recorded decision (see DESIGN.md) rather than a guess.
const DefaultDraft = Draft2020

var draftIDs = map[string]Draft{
	"http://json-schema.org/draft-04/schema#":      Draft4,
	"https://json-schema.org/draft-04/schema#":     Draft4,
	"http://json-schema.org/draft-06/schema#":      Draft6,
	"https://json-schema.org/draft-06/schema#":     Draft6,
	"http://json-schema.org/draft-07/schema#":      Draft7,
	"https://json-schema.org/draft-07/schema#":     Draft7,
	"https://json-schema.org/draft/2019-09/schema": Draft2019,
	"https://json-schema.org/draft/2020-12/schema": Draft2020,
}

// DetectDraft inspects a schema's `$schema` value and returns the draft it
// names, or DraftUnknown if it names none recognized.
func DetectDraft(schemaURI string) Draft {
	if schemaURI == "" {
		return DraftUnknown
	}
	trimmed := strings.TrimSuffix(schemaURI, "#")
	if d, ok := draftIDs[schemaURI]; ok {
		return d
	}
	if d, ok := draftIDs[trimmed+"#"]; ok {
		return d
	}
	return DraftUnknown
}

// String renders a human-readable draft name, used in error messages and
// in the CLI-free `Draft.String()` callers may log.
func (d Draft) String() string {
	switch d {
	case Draft4:
		return "draft-04"
	case Draft6:
		return "draft-06"
	case Draft7:
		return "draft-07"
	case Draft2019:
		return "2019-09"
	case Draft2020:
		return "2020-12"
	default:
		return "unknown"
	}
}

// supportsDynamicRef reports whether a draft recognizes $dynamicRef /
// $dynamicAnchor (introduced in 2020-12).
func (d Draft) supportsDynamicRef() bool { return d == Draft2020 }

// supportsRecursiveRef reports whether a draft recognizes $recursiveRef /
// $recursiveAnchor (introduced in 2019-09, superseded in 2020-12).
func (d Draft) supportsRecursiveRef() bool { return d == Draft2019 }

// legacyIDFragment reports whether a draft permits `$id`/`id` to be a
// bare fragment used as an anchor (Draft 4/6 behavior; Draft 7+ requires
// $id to be a URI and uses $anchor/$recursiveAnchor/$dynamicAnchor
// instead).
func (d Draft) legacyIDFragment() bool { return d == Draft4 || d == Draft6 }

// usesDefinitions reports whether a draft spells its definitions container
// "definitions" rather than "$defs" (Draft 4/6/7; $defs was introduced in
// 2019-09, though schema.go's UnmarshalJSON accepts both on every draft
// for robustness).
func (d Draft) usesDefinitions() bool { return d != Draft2019 && d != Draft2020 }
