package jsonschema

// ValidateJSON decodes raw JSON bytes and validates the result, the usual
// entry point when the caller has a request/response body rather than an
// already-decoded Go value.
func (s *Schema) ValidateJSON(data []byte) *EvaluationResult {
	var instance any
	if err := s.GetCompiler().jsonDecoder(data, &instance); err != nil {
		result := NewEvaluationResult(s)
		result.AddError(NewEvaluationError("$", "invalid_json", "Invalid JSON: {error}", map[string]any{"error": err.Error()}))
		return result
	}
	return s.Validate(instance)
}

// IsValid reports whether instance conforms to the schema. It runs the
// fast walk (validateFast), which stops at the first keyword failure found
// anywhere in the tree instead of building the full error/annotation tree
// Validate does.
func (s *Schema) IsValid(instance any) bool {
	return s.validateFast(instance).IsValid()
}

// ValidateMap validates an already-decoded JSON object, the common case when
// the caller built the instance by hand or decoded it upstream.
func (s *Schema) ValidateMap(m map[string]any) *EvaluationResult {
	return s.Validate(m)
}

// Apply runs validation and renders it as BasicOutput, the flat
// errors/annotations format (see result.go), the shape external callers
// should serialize.
func (s *Schema) Apply(instance any) *BasicOutput {
	return s.Validate(instance).ToBasicOutput()
}

// Errors returns every leaf-level validation failure as a flat map from
// instance location to message, the lazy "error stream" entry point found
// in other validator APIs, rendered eagerly since the evaluator always
// computes the full tree up front.
func (s *Schema) Errors(instance any) map[string]string {
	return s.Validate(instance).GetDetailedErrors()
}
