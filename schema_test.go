package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaParseErrorKindString(t *testing.T) {
	cases := map[SchemaParseErrorKind]string{
		IllegalVocabularyType:    "illegal vocabulary type",
		InvalidUri:               "invalid uri",
		VocabularyNotBool:        "vocabulary entry not bool",
		NotObject:                "not an object",
		NotArray:                 "not an array",
		ArrayEmpty:               "array empty",
		InvalidType:              "invalid type",
		RefNotString:             "$ref is not a string",
		RefNotFound:              "$ref target not found in $defs",
		SchemaParseErrorKind(99): "unknown schema parse error",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestSchemaParseErrorMessage(t *testing.T) {
	err := &SchemaParseError{Path: Key{}.Push("type"), Kind: InvalidType}
	assert.Equal(t, "schema parse error at /type: invalid type", err.Error())
}

func TestJsonSchemaZeroValueHasNoRoots(t *testing.T) {
	var schema JsonSchema
	assert.Empty(t, schema.Roots)
	assert.True(t, schema.Id.IsZero())
}

func TestPropertyRequiresNonEmptySchemaList(t *testing.T) {
	trueSchema := &JsonSchema{}
	p := Property{Name: "id", Required: true, Schemas: []*JsonSchema{trueSchema}}
	assert.Len(t, p.Schemas, 1)
	assert.Same(t, trueSchema, p.Schemas[0])
}
