package jsonschema

import (
	"net/url"
	"path"
	"strings"
)

// NormalizeURI puts a URI into the canonical form used as Registry keys:
// scheme and host case-folded, dot-segments removed from the path, and an
// empty fragment treated as no fragment at all.
func NormalizeURI(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path != "" {
		u.Path = path.Clean(u.Path)
		if u.Path == "." {
			u.Path = ""
		}
	}
	if u.Fragment == "" {
		u.Fragment = ""
		u.RawFragment = ""
	}
	return u.String()
}

// JoinURI resolves ref against base the way a browser resolves an <a href>,
// then normalizes the result. Used to compute the base URI of a schema
// resource after following an `$id` or to resolve a relative `$ref`.
func JoinURI(base, ref string) string {
	if ref == "" {
		return NormalizeURI(base)
	}
	if base == "" {
		return NormalizeURI(ref)
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return NormalizeURI(ref)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return NormalizeURI(ref)
	}
	return NormalizeURI(baseURL.ResolveReference(refURL).String())
}

// FragmentOf splits a URI into its base (without fragment) and fragment
// parts. FragmentOf("http://x/y#/a/b") returns ("http://x/y", "/a/b").
func FragmentOf(uri string) (base string, fragment string) {
	idx := strings.IndexByte(uri, '#')
	if idx < 0 {
		return uri, ""
	}
	return uri[:idx], uri[idx+1:]
}

// WithFragment rebuilds a URI from a base and a (possibly empty) fragment.
func WithFragment(base, fragment string) string {
	if fragment == "" {
		return base
	}
	return base + "#" + fragment
}

// IsAbsoluteURI reports whether uri has both a scheme and a host, i.e. is
// usable directly as a Registry key without further resolution.
func IsAbsoluteURI(uri string) bool {
	u, err := url.Parse(uri)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// IsValidURI reports whether s parses as a URI reference at all (absolute
// or relative).
func IsValidURI(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

// SchemeOf returns the scheme component of a URI, or "" if it has none.
func SchemeOf(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	return u.Scheme
}

// BaseOf returns the directory-level base URI for an identifier, the way a
// relative `$ref` sibling to `$id` would resolve: strip the last path
// segment, keep everything else. Used when a schema declares `$id` and its
// children need a base URI to resolve relative references against.
func BaseOf(id string) string {
	if id == "" {
		return ""
	}
	u, err := url.Parse(id)
	if err != nil {
		return ""
	}
	u.Fragment = ""
	u.RawFragment = ""
	if strings.HasSuffix(u.Path, "/") {
		return NormalizeURI(u.String())
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "." {
		u.Path = "/"
	}
	if u.Path != "/" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return ""
	}
	return NormalizeURI(u.String())
}
