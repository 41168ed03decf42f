package jsonschema

// defaultCompiler backs Schema.GetCompiler's final fallback, for schemas
// constructed directly (e.g. via json.Unmarshal into a *Schema) rather than
// through a Compiler.
var defaultCompiler = NewCompiler()

// SetDefaultCompiler replaces the package-wide default compiler used by
// schemas that were never associated with one explicitly.
func SetDefaultCompiler(c *Compiler) {
	defaultCompiler = c
}

// GetDefaultCompiler returns the current package-wide default compiler.
func GetDefaultCompiler() *Compiler {
	return defaultCompiler
}

// AnyToJSONString renders an arbitrary decoded JSON value back to its JSON
// text form, used by keyword evaluators that need to embed an instance
// value inside an error message parameter.
func AnyToJSONString(v any) string {
	data, err := defaultCompiler.jsonEncoder(v)
	if err != nil {
		return ""
	}
	return string(data)
}
