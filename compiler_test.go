package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileJSONPrimitiveSchema(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`true`)
	require.NoError(t, err)
	require.Len(t, schema.Roots, 1)
	assert.Equal(t, PrimitiveSchema, schema.Roots[0].Kind)
}

func TestCompileJSONEmptyDocument(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(``)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaCompilation)
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestCompileJSONParseError(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"type": }`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaCompilation)
}

func TestCompileId(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{"$id": "https://example.com/schema.json"}`)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/schema.json", schema.Id.String())
}

func TestCompileIdNotString(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"$id": 5}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, InvalidUri, parseErr.Kind)
}

func TestCompileVocabulary(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{"$vocabulary": {"https://json-schema.org/draft/2020-12/vocab/core": true}}`)
	require.NoError(t, err)
	assert.True(t, schema.Vocabulary["https://json-schema.org/draft/2020-12/vocab/core"])
}

func TestCompileVocabularyNotObject(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"$vocabulary": true}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, IllegalVocabularyType, parseErr.Kind)
}

func TestCompileVocabularyEntryNotBool(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"$vocabulary": {"https://example.com/v": "yes"}}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, VocabularyNotBool, parseErr.Kind)
}

func TestCompileDefsAndRef(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{
		"$defs": {"positive": {"type": "number"}},
		"$ref": "#/$defs/positive"
	}`)
	require.NoError(t, err)
	require.Contains(t, schema.Defs, "positive")
	require.Len(t, schema.Roots, 1)
	assert.Equal(t, RefSchema, schema.Roots[0].Kind)
	assert.Same(t, schema.Defs["positive"], schema.Roots[0].Ref)
}

func TestCompileDefsNotObject(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"$defs": true}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, NotObject, parseErr.Kind)
}

func TestCompileRefCycleThroughDefs(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{
		"$defs": {
			"a": {"$ref": "#/$defs/b"},
			"b": {"$ref": "#/$defs/a"}
		},
		"$ref": "#/$defs/a"
	}`)
	require.NoError(t, err)
	require.NotNil(t, schema.Roots[0].Ref)
	// a's single root points at b, whose single root points back at a: the
	// pointer cycle exists without any indirection through an index/arena.
	a := schema.Defs["a"]
	b := schema.Defs["b"]
	require.Len(t, a.Roots, 1)
	require.Len(t, b.Roots, 1)
	assert.Same(t, b, a.Roots[0].Ref)
	assert.Same(t, a, b.Roots[0].Ref)
}

func TestCompileRefMissingDefsEntryIsCompileError(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"$ref": "#/$defs/missing"}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, RefNotFound, parseErr.Kind)
}

func TestCompileRefNotStringIsCompileError(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"$ref": 5}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, RefNotString, parseErr.Kind)
}

func TestCompileRefNonLocalTreatedAsUnknownKeyword(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{"$ref": "https://example.com/other.json"}`)
	require.NoError(t, err, "a non-local $ref is out of scope and falls back to an unrecognized keyword")
	assert.Empty(t, schema.Roots)
	require.Contains(t, schema.Unknowns, "$ref")
	assert.Equal(t, "https://example.com/other.json", schema.Unknowns["$ref"].Str)
}

func TestCompileUnknownKeywordRetained(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{"minContains": 2, "title": "example"}`)
	require.NoError(t, err)
	require.Contains(t, schema.Unknowns, "minContains")
	require.Contains(t, schema.Unknowns, "title")
}

func TestCompileAllOfEmptyArray(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"allOf": []}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ArrayEmpty, parseErr.Kind)
}

func TestCompileAllOfNotArray(t *testing.T) {
	c := NewCompiler()
	_, err := c.CompileJSON(`{"allOf": {}}`)
	require.Error(t, err)
	var parseErr *SchemaParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, NotArray, parseErr.Kind)
}

func TestCompilePropertiesWithRequired(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{
		"properties": {"name": {"type": "string"}},
		"required": ["name", "age"]
	}`)
	require.NoError(t, err)
	require.Len(t, schema.Roots, 1)
	props := schema.Roots[0].Properties
	require.Len(t, props, 2)

	byName := map[string]Property{}
	for _, p := range props {
		byName[p.Name] = p
	}
	assert.True(t, byName["name"].Required)
	assert.True(t, byName["age"].Required)
	// "age" has no declared schema, so it is anchored on an
	// always-succeeding empty schema rather than left without one.
	require.Len(t, byName["age"].Schemas, 1)
	assert.Empty(t, byName["age"].Schemas[0].Roots)
}

func TestCompileRequiredWithoutProperties(t *testing.T) {
	c := NewCompiler()
	schema, err := c.CompileJSON(`{"required": ["id"]}`)
	require.NoError(t, err)
	require.Len(t, schema.Roots, 1)
	assert.Equal(t, PropertiesSchema, schema.Roots[0].Kind)
	require.Len(t, schema.Roots[0].Properties, 1)
	assert.Equal(t, "id", schema.Roots[0].Properties[0].Name)
	assert.True(t, schema.Roots[0].Properties[0].Required)
}
