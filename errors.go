package jsonschema

import "errors"

// === Network and IO Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrDataRead is returned when data cannot be read from the specified URL.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from the URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Serialization Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrXMLUnmarshal is returned when there is an error unmarshalling XML.
	ErrXMLUnmarshal = errors.New("xml unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")
)

// === Schema Compilation and Parsing Related Errors ===
var (
	// ErrSchemaCompilation is returned when a schema compilation fails.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrReferenceResolution is returned when a reference cannot be resolved.
	ErrReferenceResolution = errors.New("reference resolution failed")

	// ErrGlobalReferenceResolution is returned when a global reference cannot be resolved.
	ErrGlobalReferenceResolution = errors.New("global reference resolution failed")

	// ErrJSONPointerSegmentDecode is returned when a segment cannot be decoded.
	ErrJSONPointerSegmentDecode = errors.New("json pointer segment decode failed")

	// ErrJSONPointerSegmentNotFound is returned when a segment is not found in the schema context.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")

	// ErrInvalidSchemaType is returned when the JSON schema type is invalid.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrRegexValidation is returned when one or more pattern/patternProperties
	// regular expressions in a schema fail to compile under Go RE2 syntax.
	ErrRegexValidation = errors.New("regex validation failed")

	// ErrResourceNotFound is returned when a registry or retriever has no
	// resource registered under the requested URI.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrRetrieverFailed is returned when a Retriever could not produce a
	// document for a URI, wrapping the underlying cause.
	ErrRetrieverFailed = errors.New("retriever failed")

	// ErrRetrievalDepthExceeded is returned when closing a Registry's
	// reference closure still has unresolved base URIs after
	// maxRetrievalDepth rounds, most likely a retriever returning documents
	// that keep referencing new, never-satisfied URIs.
	ErrRetrievalDepthExceeded = errors.New("retrieval depth exceeded")
)

// ReferenceResolutionError reports which URI a $ref/$dynamicRef/
// $recursiveRef failed to resolve to, alongside the underlying cause
// (a retriever error, a compilation error for the fetched document, or
// a JSON Pointer that named no such location).
type ReferenceResolutionError struct {
	URI string
	Err error
}

func (e *ReferenceResolutionError) Error() string {
	return "resolve reference " + e.URI + ": " + e.Err.Error()
}

func (e *ReferenceResolutionError) Unwrap() error { return e.Err }

// RegexPatternError reports a pattern/patternProperties regular expression
// that does not compile, with the JSON Pointer Location of its keyword.
type RegexPatternError struct {
	Keyword  string
	Location string
	Pattern  string
	Err      error
}

func (e *RegexPatternError) Error() string {
	return e.Keyword + " at " + e.Location + ": invalid pattern " + e.Pattern + ": " + e.Err.Error()
}

func (e *RegexPatternError) Unwrap() error { return e.Err }

// === Numeric and Format Related Errors ===
var (
	// ErrNilConstValue is returned when trying to unmarshal into a nil ConstValue.
	ErrNilConstValue = errors.New("cannot unmarshal into nil ConstValue")

	// ErrRatConversion is returned when a numeric value cannot be converted to *big.Rat.
	ErrRatConversion = errors.New("rat conversion failed")

	// ErrUnsupportedRatType is returned when the type is unsupported for conversion to *big.Rat.
	ErrUnsupportedRatType = errors.New("unsupported rat type")

	// ErrIPv6AddressFormat is returned when an IPv6 address is not properly formatted.
	ErrIPv6AddressFormat = errors.New("ipv6 address format error")

	// ErrInvalidIPv6 is returned when the IPv6 address is invalid.
	ErrInvalidIPv6 = errors.New("invalid ipv6 address")
)

// ErrorKind classifies a validation failure by the keyword family that
// produced it, a stable contract callers can switch on without parsing
// EvaluationError.Keyword strings.
type ErrorKind string

const (
	KindType                  ErrorKind = "type"
	KindEnum                  ErrorKind = "enum"
	KindConst                 ErrorKind = "const"
	KindPattern               ErrorKind = "pattern"
	KindFormat                ErrorKind = "format"
	KindMinLength             ErrorKind = "min_length"
	KindMaxLength             ErrorKind = "max_length"
	KindMinItems              ErrorKind = "min_items"
	KindMaxItems              ErrorKind = "max_items"
	KindMinProperties         ErrorKind = "min_properties"
	KindMaxProperties         ErrorKind = "max_properties"
	KindMinimum               ErrorKind = "minimum"
	KindMaximum               ErrorKind = "maximum"
	KindExclusiveMinimum      ErrorKind = "exclusive_minimum"
	KindExclusiveMaximum      ErrorKind = "exclusive_maximum"
	KindMultipleOf            ErrorKind = "multiple_of"
	KindRequired              ErrorKind = "required"
	KindAdditionalProperties  ErrorKind = "additional_properties"
	KindAdditionalItems       ErrorKind = "additional_items"
	KindPropertyNames         ErrorKind = "property_names"
	KindUniqueItems           ErrorKind = "unique_items"
	KindContains              ErrorKind = "contains"
	KindOneOfNotValid         ErrorKind = "one_of_not_valid"
	KindOneOfMultipleValid    ErrorKind = "one_of_multiple_valid"
	KindAnyOf                 ErrorKind = "any_of"
	KindAllOf                 ErrorKind = "all_of"
	KindNot                   ErrorKind = "not"
	KindIf                    ErrorKind = "if"
	KindUnevaluatedProperties ErrorKind = "unevaluated_properties"
	KindUnevaluatedItems      ErrorKind = "unevaluated_items"
	KindFalseSchema           ErrorKind = "false_schema"
	KindRef                   ErrorKind = "ref"
	KindCustom                ErrorKind = "custom"
)

// keywordKinds maps a keyword's EvaluationError.Keyword to its ErrorKind.
// Keywords with no entry resolve to KindCustom.
var keywordKinds = map[string]ErrorKind{
	"type":                  KindType,
	"enum":                  KindEnum,
	"const":                 KindConst,
	"pattern":               KindPattern,
	"format":                KindFormat,
	"minLength":             KindMinLength,
	"maxLength":             KindMaxLength,
	"minItems":              KindMinItems,
	"maxItems":              KindMaxItems,
	"minProperties":         KindMinProperties,
	"maxProperties":         KindMaxProperties,
	"minimum":               KindMinimum,
	"maximum":               KindMaximum,
	"exclusiveMinimum":      KindExclusiveMinimum,
	"exclusiveMaximum":      KindExclusiveMaximum,
	"multipleOf":            KindMultipleOf,
	"required":              KindRequired,
	"additionalProperties":  KindAdditionalProperties,
	"additionalItems":       KindAdditionalItems,
	"propertyNames":         KindPropertyNames,
	"uniqueItems":           KindUniqueItems,
	"contains":              KindContains,
	"minContains":           KindContains,
	"maxContains":           KindContains,
	"oneOf":                 KindOneOfNotValid,
	"anyOf":                 KindAnyOf,
	"allOf":                 KindAllOf,
	"not":                   KindNot,
	"then":                  KindIf,
	"else":                  KindIf,
	"unevaluatedProperties": KindUnevaluatedProperties,
	"unevaluatedItems":      KindUnevaluatedItems,
	"$ref":                  KindRef,
	"$dynamicRef":           KindRef,
	"$recursiveRef":         KindRef,
}

// kindForKeyword resolves a keyword to its ErrorKind, falling back to
// KindCustom for anything not in the stable contract above. Two codes need
// special-casing because the keyword string alone doesn't disambiguate:
// "one_of_multiple_matches" is the only oneOf failure mode that maps to
// KindOneOfMultipleValid instead of KindOneOfNotValid, and a boolean `false`
// schema reports its keyword as "schema" rather than a real keyword name.
func kindForKeyword(keyword, code string) ErrorKind {
	switch {
	case keyword == "oneOf" && code == "one_of_multiple_matches":
		return KindOneOfMultipleValid
	case keyword == "schema" && code == "false_schema_mismatch":
		return KindFalseSchema
	}
	if kind, ok := keywordKinds[keyword]; ok {
		return kind
	}
	return KindCustom
}
