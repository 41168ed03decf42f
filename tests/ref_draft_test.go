package tests

import (
	"context"
	"testing"

	"github.com/goschema/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDynamicRefExtensibleList is the canonical 2020-12 $dynamicRef/
// $dynamicAnchor example: a generic "list" schema recurses into itself via
// an extensible "items" $dynamicAnchor that a subclassing schema overrides.
// A plain $ref to the same target would always bind to the base schema's
// own anchor and never see the override.
func TestDynamicRefExtensibleList(t *testing.T) {
	schemaJSON := []byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$id": "https://example.com/positive-list.json",
		"$ref": "https://example.com/list.json",
		"$defs": {
			"items": {
				"$dynamicAnchor": "items",
				"type": "integer",
				"minimum": 0
			}
		}
	}`)

	schema, err := jsonschema.NewCompiler().
		WithResource("https://example.com/list.json", map[string]any{
			"$schema":        "https://json-schema.org/draft/2020-12/schema",
			"$id":            "https://example.com/list.json",
			"$dynamicAnchor": "items",
			"type":           "array",
			"items":          map[string]any{"$dynamicRef": "#items"},
		}).
		Build(context.Background(), schemaJSON)
	require.NoError(t, err)

	valid := schema.Validate([]any{1, 2, 3})
	assert.True(t, valid.IsValid())

	invalid := schema.Validate([]any{1, -2, 3})
	assert.False(t, invalid.IsValid())
}

// TestRecursiveRefExtensibleList is the 2019-09 predecessor of the same
// pattern, using $recursiveRef/$recursiveAnchor instead of $dynamicRef/
// $dynamicAnchor.
func TestRecursiveRefExtensibleList(t *testing.T) {
	schema, err := jsonschema.NewCompiler().
		WithResource("https://example.com/tree.json", map[string]any{
			"$schema":          "https://json-schema.org/draft/2019-09/schema",
			"$id":              "https://example.com/tree.json",
			"$recursiveAnchor": true,
			"type":             "object",
			"properties": map[string]any{
				"children": map[string]any{
					"type":  "array",
					"items": map[string]any{"$recursiveRef": "#"},
				},
			},
		}).
		Build(context.Background(), []byte(`{
			"$schema": "https://json-schema.org/draft/2019-09/schema",
			"$id": "https://example.com/strict-tree.json",
			"$recursiveAnchor": true,
			"$ref": "https://example.com/tree.json",
			"properties": {
				"label": {"type": "string"}
			},
			"required": ["label"]
		}`))
	require.NoError(t, err)

	valid := schema.ValidateMap(map[string]any{
		"label":    "root",
		"children": []any{map[string]any{"label": "child"}},
	})
	assert.True(t, valid.IsValid())

	invalid := schema.ValidateMap(map[string]any{
		"children": []any{map[string]any{"label": "child"}},
	})
	assert.False(t, invalid.IsValid())
}

// TestDraftDefaultsTo2020WhenSchemaKeywordAbsent verifies the recorded
// Open Question resolution: a schema with no $schema keyword is treated
// as Draft 2020-12.
func TestDraftDefaultsTo2020WhenSchemaKeywordAbsent(t *testing.T) {
	schema, err := jsonschema.NewCompiler().Compile([]byte(`{"type": "object"}`))
	require.NoError(t, err)
	assert.Equal(t, jsonschema.Draft2020, schema.Draft())
}

// TestDraftDetectedFromSchemaKeyword exercises $schema sniffing across the
// full set of recognized draft identifiers, including the pre-2019 URIs
// that carry no trailing "/schema#" anchor.
func TestDraftDetectedFromSchemaKeyword(t *testing.T) {
	cases := []struct {
		schemaURI string
		want      jsonschema.Draft
	}{
		{"http://json-schema.org/draft-04/schema#", jsonschema.Draft4},
		{"http://json-schema.org/draft-06/schema#", jsonschema.Draft6},
		{"http://json-schema.org/draft-07/schema#", jsonschema.Draft7},
		{"https://json-schema.org/draft/2019-09/schema", jsonschema.Draft2019},
		{"https://json-schema.org/draft/2020-12/schema", jsonschema.Draft2020},
	}
	for _, tc := range cases {
		t.Run(tc.schemaURI, func(t *testing.T) {
			schema, err := jsonschema.NewCompiler().Compile([]byte(`{"$schema": "` + tc.schemaURI + `", "type": "object"}`))
			require.NoError(t, err)
			assert.Equal(t, tc.want, schema.Draft())
		})
	}
}
