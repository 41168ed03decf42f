package jsonschema

import (
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// ParsePointer splits a JSON Pointer (RFC 6901) into its unescaped tokens.
// ParsePointer("/a~1b/0") returns []string{"a/b", "0"}.
func ParsePointer(ptr string) []string {
	if ptr == "" {
		return nil
	}
	return jsonpointer.Parse(ptr)
}

// FormatPointer renders tokens back into an escaped JSON Pointer string,
// escaping "~" as "~0" and "/" as "~1" per RFC 6901 §3.
func FormatPointer(tokens ...string) string {
	return jsonpointer.Format(tokens...)
}

// EscapeToken escapes a single JSON Pointer token.
func EscapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}
