// Package jsonschema implements the core of a JSON Schema validator: a
// lexer and parser that yield a typed, source-span-tracked value tree, a
// compiler that turns a schema document into a tree of keyword
// applicators, and a validator that walks schema and instance in lock-step
// to produce an ordered bus of annotations.
//
// Remote $ref resolution, regex-based pattern/format validation, and
// human-readable diagnostic rendering are outside this package's scope;
// unrecognized keywords are retained verbatim rather than rejected.
package jsonschema
