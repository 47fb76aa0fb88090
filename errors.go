package jsonschema

import "errors"

// === Compilation Related Errors ===
var (
	// ErrSchemaCompilation is returned when CompileJSON's input fails to
	// lex, parse, or compile for any reason; wrap it with errors.Is to
	// detect compile-stage failure without matching on the precise cause.
	ErrSchemaCompilation = errors.New("schema compilation failed")

	// ErrEmptyDocument is returned by CompileJSON when the schema document
	// is empty (the parser produced no root value). ParseString itself
	// returns a nil value and no error for empty input.
	ErrEmptyDocument = errors.New("document is empty")
)

// === Validation Resource Limit Errors ===
var (
	// ErrRecursionLimitExceeded is returned when a Validator run descends
	// past its configured MaxDepth, guarding against unbounded recursion
	// through a $ref cycle (§5's recursion-depth-cap recommendation).
	ErrRecursionLimitExceeded = errors.New("validator recursion limit exceeded")
)

// === Decoding Front-End Errors ===
var (
	// ErrUnsupportedYAMLRoot is returned when a decoded YAML document holds
	// a value, at the root or nested inside it, that is not representable
	// as a Json value: any decoded type other than null, bool, string,
	// integer, float, sequence, or string-keyed mapping.
	ErrUnsupportedYAMLRoot = errors.New("unsupported yaml root value")
)
