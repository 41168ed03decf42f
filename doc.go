// Package jsonschema implements a JSON Schema validator for Go spanning
// Draft 4 through 2020-12: URI and JSON Pointer handling, a Registry of
// compiled resources fed by a pluggable Retriever, a Compiler that builds a
// validation tree eagerly at compile time, and an evaluator exposing
// boolean (IsValid), error-stream (Errors), and basic-output (Apply)
// results.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
