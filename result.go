package jsonschema

import (
	"sort"

	"github.com/kaptinlin/go-i18n"
)

// EvaluationError is the public ValidationError contract: every keyword
// failure carries a human-readable message, a stable machine-checkable
// Kind, the JSON Pointer into the instance and schema that produced it,
// and a borrow of the instance fragment that failed so a caller doesn't
// have to re-walk the instance by hand to report it.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
	Kind    ErrorKind      `json:"kind"`

	InstancePath string `json:"instance_path"`
	SchemaPath   string `json:"schema_path"`
	InstanceRef  any    `json:"-"`
}

// NewEvaluationError creates a new evaluation error with the specified details.
// InstancePath/SchemaPath/InstanceRef are filled in by AddError once the
// error is attached to the EvaluationResult node it occurred at, since only
// the node knows its own location in the walk.
func NewEvaluationError(keyword string, code string, message string, params ...map[string]any) *EvaluationError {
	e := &EvaluationError{
		Keyword: keyword,
		Code:    code,
		Message: message,
		Kind:    kindForKeyword(keyword, code),
	}
	if len(params) > 0 {
		e.Params = params[0]
	}
	return e
}

func (e *EvaluationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize returns a localized error message using the provided localizer.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// Flag is the cheapest possible validation result: one boolean.
type Flag struct {
	Valid bool `json:"valid"`
}

// List is the teacher's original hierarchical/flat output shape, kept as an
// alternate "verbose tree" rendering of EvaluationResult (see BasicOutput
// below for the flat errors/annotations shape callers should prefer).
type List struct {
	Valid            bool              `json:"valid"`
	EvaluationPath   string            `json:"evaluationPath"`
	SchemaLocation   string            `json:"schemaLocation"`
	InstanceLocation string            `json:"instanceLocation"`
	Annotations      map[string]any    `json:"annotations,omitempty"`
	Errors           map[string]string `json:"errors,omitempty"`
	Details          []List            `json:"details,omitempty"`
}

// EvaluationResult is the full tree produced by a single evaluate() walk:
// one node per schema visited, each carrying its own location (already
// resolved to an absolute schema URI + fragment by the time evaluate()
// returns), the errors keywords at that node raised, and child nodes for
// every subschema it recursed into.
type EvaluationResult struct {
	schema           *Schema                     `json:"-"`
	instance         any                         `json:"-"`
	Valid            bool                        `json:"valid"`
	EvaluationPath   string                      `json:"evaluationPath"`
	SchemaLocation   string                      `json:"schemaLocation"`
	InstanceLocation string                      `json:"instanceLocation"`
	Annotations      map[string]any              `json:"annotations,omitempty"`
	Errors           map[string]*EvaluationError `json:"errors,omitempty"`
	Details          []*EvaluationResult         `json:"details,omitempty"`
}

// NewEvaluationResult creates a new evaluation result for the given schema.
func NewEvaluationResult(schema *Schema) *EvaluationResult {
	e := &EvaluationResult{
		schema: schema,
		Valid:  true,
	}
	//nolint:errcheck
	e.CollectAnnotations()

	return e
}

// SetEvaluationPath sets the evaluation path for this result.
func (e *EvaluationResult) SetEvaluationPath(evaluationPath string) *EvaluationResult {
	e.EvaluationPath = evaluationPath
	return e
}

// SetSchemaLocation sets the schema location for this result.
func (e *EvaluationResult) SetSchemaLocation(location string) *EvaluationResult {
	e.SchemaLocation = location
	return e
}

// SetInstanceLocation sets the instance location for this result.
func (e *EvaluationResult) SetInstanceLocation(instanceLocation string) *EvaluationResult {
	e.InstanceLocation = instanceLocation
	return e
}

// SetInvalid marks this result as invalid.
func (e *EvaluationResult) SetInvalid() *EvaluationResult {
	e.Valid = false
	return e
}

// IsValid returns whether this result is valid.
func (e *EvaluationResult) IsValid() bool {
	return e.Valid
}

// AddError adds an evaluation error to this result, stamping it with the
// node's own instance/schema location and a borrow of the offending value
// so the error is self-describing once it leaves the tree.
func (e *EvaluationResult) AddError(err *EvaluationError) *EvaluationResult {
	if e.Errors == nil {
		e.Errors = make(map[string]*EvaluationError)
	}

	if e.Valid {
		e.Valid = false
	}

	err.InstancePath = e.InstanceLocation
	err.SchemaPath = e.SchemaLocation
	if err.InstanceRef == nil {
		err.InstanceRef = e.instance
	}

	e.Errors[err.Keyword] = err
	return e
}

// AddDetail adds a detailed evaluation result to this result.
func (e *EvaluationResult) AddDetail(detail *EvaluationResult) *EvaluationResult {
	if e.Details == nil {
		e.Details = make([]*EvaluationResult, 0)
	}

	e.Details = append(e.Details, detail)
	return e
}

// AddAnnotation adds an annotation to this result.
func (e *EvaluationResult) AddAnnotation(keyword string, annotation any) *EvaluationResult {
	if e.Annotations == nil {
		e.Annotations = make(map[string]any)
	}

	e.Annotations[keyword] = annotation
	return e
}

// CollectAnnotations collects the schema's own annotation keywords.
func (e *EvaluationResult) CollectAnnotations() *EvaluationResult {
	if e.Annotations == nil {
		e.Annotations = make(map[string]any)
	}

	if e.schema.Title != nil {
		e.Annotations["title"] = e.schema.Title
	}
	if e.schema.Description != nil {
		e.Annotations["description"] = e.schema.Description
	}
	if e.schema.Default != nil {
		e.Annotations["default"] = e.schema.Default
	}
	if e.schema.Deprecated != nil {
		e.Annotations["deprecated"] = e.schema.Deprecated
	}
	if e.schema.ReadOnly != nil {
		e.Annotations["readOnly"] = e.schema.ReadOnly
	}
	if e.schema.WriteOnly != nil {
		e.Annotations["writeOnly"] = e.schema.WriteOnly
	}
	if e.schema.Examples != nil {
		e.Annotations["examples"] = e.schema.Examples
	}

	return e
}

// ToFlag converts EvaluationResult to a simple Flag struct.
func (e *EvaluationResult) ToFlag() *Flag {
	return &Flag{Valid: e.Valid}
}

// ToList converts the evaluation results into the teacher's original list
// format with optional hierarchy. includeHierarchy is variadic; if not
// provided, it defaults to true.
func (e *EvaluationResult) ToList(includeHierarchy ...bool) *List {
	hierarchyIncluded := true
	if len(includeHierarchy) > 0 {
		hierarchyIncluded = includeHierarchy[0]
	}

	return e.ToLocalizeList(nil, hierarchyIncluded)
}

// ToLocalizeList converts the evaluation results into a list format with
// optional hierarchy, localizing error messages through localizer.
func (e *EvaluationResult) ToLocalizeList(localizer *i18n.Localizer, includeHierarchy ...bool) *List {
	hierarchyIncluded := true
	if len(includeHierarchy) > 0 {
		hierarchyIncluded = includeHierarchy[0]
	}

	list := &List{
		Valid:            e.Valid,
		EvaluationPath:   e.EvaluationPath,
		SchemaLocation:   e.SchemaLocation,
		InstanceLocation: e.InstanceLocation,
		Annotations:      e.Annotations,
		Errors:           e.convertErrors(localizer),
		Details:          make([]List, 0),
	}

	if hierarchyIncluded {
		for _, detail := range e.Details {
			childList := detail.ToLocalizeList(localizer, true)
			list.Details = append(list.Details, *childList)
		}
	} else {
		e.flattenDetailsToList(localizer, list, e.Details)
	}

	return list
}

func (e *EvaluationResult) flattenDetailsToList(localizer *i18n.Localizer, list *List, details []*EvaluationResult) {
	for _, detail := range details {
		flatDetail := List{
			Valid:            detail.Valid,
			EvaluationPath:   detail.EvaluationPath,
			SchemaLocation:   detail.SchemaLocation,
			InstanceLocation: detail.InstanceLocation,
			Annotations:      detail.Annotations,
			Errors:           detail.convertErrors(localizer),
		}
		list.Details = append(list.Details, flatDetail)

		if len(detail.Details) > 0 {
			e.flattenDetailsToList(localizer, list, detail.Details)
		}
	}
}

func (e *EvaluationResult) convertErrors(localizer *i18n.Localizer) map[string]string {
	errors := make(map[string]string)
	for key, err := range e.Errors {
		if localizer != nil {
			errors[key] = err.Localize(localizer)
		} else {
			errors[key] = err.Error()
		}
	}
	return errors
}

// GetDetailedErrors collects all detailed validation errors from the nested
// Details hierarchy. Returns a map where keys are field paths and values are
// the most specific error messages. For localized messages, pass a
// localizer; for default English messages, call without arguments.
func (e *EvaluationResult) GetDetailedErrors(localizer ...*i18n.Localizer) map[string]string {
	var loc *i18n.Localizer
	if len(localizer) > 0 {
		loc = localizer[0]
	}

	detailedErrors := make(map[string]string)
	e.collectDetailedErrors(detailedErrors, loc, "")
	return detailedErrors
}

func (e *EvaluationResult) collectDetailedErrors(collector map[string]string, localizer *i18n.Localizer, basePath string) {
	if len(e.Errors) > 0 {
		currentPath := basePath + e.InstanceLocation
		for key, err := range e.Errors {
			fieldPath := currentPath
			if fieldPath != "" && key != "" {
				fieldPath = fieldPath + "/" + key
			} else if key != "" {
				fieldPath = key
			}

			if localizer != nil {
				collector[fieldPath] = err.Localize(localizer)
			} else {
				collector[fieldPath] = err.Error()
			}
		}
	}

	for _, detail := range e.Details {
		detail.collectDetailedErrors(collector, localizer, basePath+e.InstanceLocation)
	}
}

// BasicOutputError is one entry of BasicOutput.Errors: a single keyword
// failure located both relative to the evaluation walk (KeywordLocation)
// and by the absolute URI of the schema resource that raised it
// (AbsoluteKeywordLocation, which differs from KeywordLocation once a $ref
// has been followed into another resource).
type BasicOutputError struct {
	KeywordLocation         string `json:"keywordLocation"`
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation,omitempty"`
	InstanceLocation        string `json:"instanceLocation"`
	Error                   string `json:"error"`
}

// BasicOutputAnnotation is one entry of BasicOutput.Annotations.
type BasicOutputAnnotation struct {
	KeywordLocation  string         `json:"keywordLocation"`
	InstanceLocation string         `json:"instanceLocation"`
	Annotations      map[string]any `json:"annotations"`
}

// BasicOutput is the draft 2019-09 "basic" output format: a flat list of
// errors and annotations, each self-locating rather than nested under a
// Details tree. This is the shape external callers should serialize;
// EvaluationResult.ToList's nested/flattened List format is kept
// alongside it as the teacher's original "verbose tree" rendering.
type BasicOutput struct {
	Valid       bool                    `json:"valid"`
	Errors      []BasicOutputError      `json:"errors,omitempty"`
	Annotations []BasicOutputAnnotation `json:"annotations,omitempty"`
}

// ToBasicOutput walks the Details tree once, collecting every error and
// annotation into a flat errors/annotations pair instead of the nested
// Details tree.
func (e *EvaluationResult) ToBasicOutput() *BasicOutput {
	out := &BasicOutput{Valid: e.Valid}
	e.collectBasicOutput(out)
	return out
}

func (e *EvaluationResult) collectBasicOutput(out *BasicOutput) {
	for _, err := range e.sortedErrors() {
		out.Errors = append(out.Errors, BasicOutputError{
			KeywordLocation:         joinPointer(e.EvaluationPath, err.Keyword),
			AbsoluteKeywordLocation: e.SchemaLocation,
			InstanceLocation:        e.InstanceLocation,
			Error:                   err.Error(),
		})
	}

	if len(e.Annotations) > 0 {
		out.Annotations = append(out.Annotations, BasicOutputAnnotation{
			KeywordLocation:  e.EvaluationPath,
			InstanceLocation: e.InstanceLocation,
			Annotations:      e.Annotations,
		})
	}

	for _, detail := range e.Details {
		detail.collectBasicOutput(out)
	}
}

// sortedErrors returns this node's errors in a stable, deterministic order
// (Go map iteration order is randomized, and BasicOutput is meant to be
// diffable across runs).
func (e *EvaluationResult) sortedErrors() []*EvaluationError {
	if len(e.Errors) == 0 {
		return nil
	}
	keywords := make([]string, 0, len(e.Errors))
	for k := range e.Errors {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	out := make([]*EvaluationError, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, e.Errors[k])
	}
	return out
}

func joinPointer(base, keyword string) string {
	if base == "/" {
		base = ""
	}
	return base + "/" + keyword
}
