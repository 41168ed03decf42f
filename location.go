package jsonschema

import (
	"strconv"
	"strings"
)

// Location is an immutable JSON Pointer represented as a linked list of
// tokens, one node per path segment. Building a pointer this way lets
// sibling branches of the evaluation walk share an unmodified prefix
// instead of each re-deriving its own copy of the ancestor path via
// fmt.Sprintf. The keyword evaluators do not use it; they still build
// their location strings with fmt.Sprintf.
//
// A nil *Location denotes the root ("" as a pointer).
type Location struct {
	parent *Location
	token  string
}

// Push returns a new Location with token appended as the final segment.
// The receiver is left unmodified, so a single Location can be the base
// for any number of sibling branches (e.g. one per object property).
func (l *Location) Push(token string) *Location {
	return &Location{parent: l, token: token}
}

// PushIndex is Push for array indices, rendered without extra formatting.
func (l *Location) PushIndex(index int) *Location {
	return l.Push(strconv.Itoa(index))
}

// String renders the location as an RFC 6901 JSON Pointer.
func (l *Location) String() string {
	if l == nil {
		return ""
	}

	var tokens []string
	for n := l; n != nil; n = n.parent {
		tokens = append(tokens, n.token)
	}

	var b strings.Builder
	for i := len(tokens) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(EscapeToken(tokens[i]))
	}
	return b.String()
}
