package jsonschema

// Property represents a Schema property definition, used by Object to build
// an object schema's properties map inline.
type Property struct {
	Name   string
	Schema *Schema
}

// Prop creates a property definition for use inside Object.
func Prop(name string, schema *Schema) Property {
	return Property{Name: name, Schema: schema}
}

// Object creates an object schema from a mix of Property and Keyword values.
func Object(items ...any) *Schema {
	schema := &Schema{Type: SchemaType{"object"}}

	var properties []Property
	var keywords []Keyword

	for _, item := range items {
		switch v := item.(type) {
		case Property:
			properties = append(properties, v)
		case Keyword:
			keywords = append(keywords, v)
		}
	}

	if len(properties) > 0 {
		props := make(SchemaMap)
		for _, prop := range properties {
			props[prop.Name] = prop.Schema
		}
		schema.Properties = &props
	}

	for _, keyword := range keywords {
		keyword(schema)
	}

	schema.initializeSchema(nil, nil)
	return schema
}

// String creates a string schema with validation keywords.
func String(keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{"string"}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Integer creates an integer schema with validation keywords.
func Integer(keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{"integer"}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Number creates a number schema with validation keywords.
func Number(keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{"number"}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Boolean creates a boolean schema.
func Boolean(keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{"boolean"}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Null creates a null schema.
func Null(keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{"null"}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Array creates an array schema with validation keywords.
func Array(keywords ...Keyword) *Schema {
	schema := &Schema{Type: SchemaType{"array"}}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Any creates a schema with no type restriction.
func Any(keywords ...Keyword) *Schema {
	schema := &Schema{}
	for _, keyword := range keywords {
		keyword(schema)
	}
	schema.initializeSchema(nil, nil)
	return schema
}

// Const creates a const schema.
func Const(value any) *Schema {
	schema := &Schema{Const: &ConstValue{Value: value, IsSet: true}}
	schema.initializeSchema(nil, nil)
	return schema
}

// Enum creates an enum schema.
func Enum(values ...any) *Schema {
	schema := &Schema{Enum: values}
	schema.initializeSchema(nil, nil)
	return schema
}

// OneOf creates a oneOf combination schema.
func OneOf(schemas ...*Schema) *Schema {
	schema := &Schema{OneOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// AnyOf creates an anyOf combination schema.
func AnyOf(schemas ...*Schema) *Schema {
	schema := &Schema{AnyOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// AllOf creates an allOf combination schema.
func AllOf(schemas ...*Schema) *Schema {
	schema := &Schema{AllOf: schemas}
	schema.initializeSchema(nil, nil)
	return schema
}

// Not creates a not combination schema.
func Not(schema *Schema) *Schema {
	result := &Schema{Not: schema}
	result.initializeSchema(nil, nil)
	return result
}

// If starts a conditional schema built from if/then/else keywords.
func If(condition *Schema) *ConditionalSchema {
	return &ConditionalSchema{condition: condition}
}

// ConditionalSchema accumulates the condition/then/else legs of an if/then/else schema.
type ConditionalSchema struct {
	condition *Schema
	then      *Schema
	otherwise *Schema
}

// Then sets the then clause of a conditional schema.
func (cs *ConditionalSchema) Then(then *Schema) *ConditionalSchema {
	cs.then = then
	return cs
}

// Else sets the else clause and finalizes the conditional schema.
func (cs *ConditionalSchema) Else(otherwise *Schema) *Schema {
	cs.otherwise = otherwise
	return cs.ToSchema()
}

// ToSchema finalizes a conditional schema without an else clause.
func (cs *ConditionalSchema) ToSchema() *Schema {
	schema := &Schema{If: cs.condition, Then: cs.then, Else: cs.otherwise}
	schema.initializeSchema(nil, nil)
	return schema
}

// Ref creates a schema consisting solely of a $ref keyword.
func Ref(ref string) *Schema {
	schema := &Schema{Ref: ref}
	schema.initializeSchema(nil, nil)
	return schema
}

// RecursiveRef creates a schema consisting solely of a $recursiveRef keyword.
func RecursiveRef(ref string) *Schema {
	schema := &Schema{RecursiveRef: ref}
	schema.initializeSchema(nil, nil)
	return schema
}
