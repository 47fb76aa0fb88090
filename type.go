package jsonschema

// typeNames maps the seven recognized JSON Schema type names to the
// PrimitiveType they compile to (§4.3).
var typeNames = map[string]PrimitiveType{
	"null":    TypeNull,
	"boolean": TypeBoolean,
	"object":  TypeObject,
	"array":   TypeArray,
	"number":  TypeNumber,
	"string":  TypeString,
	"integer": TypeInteger,
}

// compileType compiles the "type" keyword into a TypeSchema RootSchema: a
// single string or an array of strings, each one of the seven recognized
// type names. An empty array is accepted and yields an empty set, which no
// instance matches.
func compileType(path Key, doc *Json) (RootSchema, error) {
	val, _ := doc.ObjectGet("type")
	typePath := path.Push("type")

	names := []string{}
	switch val.Kind {
	case JsonString:
		names = append(names, val.Str)
	case JsonArray:
		for _, item := range val.Array {
			if item.Kind != JsonString {
				return RootSchema{}, &SchemaParseError{Path: typePath, Kind: InvalidType}
			}
			names = append(names, item.Str)
		}
	default:
		return RootSchema{}, &SchemaParseError{Path: typePath, Kind: InvalidType}
	}

	types := make(map[PrimitiveType]struct{}, len(names))
	for _, name := range names {
		pt, ok := typeNames[name]
		if !ok {
			return RootSchema{}, &SchemaParseError{Path: typePath, Kind: InvalidType}
		}
		types[pt] = struct{}{}
	}

	return RootSchema{Kind: TypeSchema, Types: types}, nil
}

// matchesType reports whether instance satisfies one of the declared types
// (§4.4). Integer matches a Number instance only when its Fraction.Digits is
// zero (so 5 and 5.0 match, 5.5 does not); Number matches every Number
// instance regardless of fraction.
// This is a deliberate generalization beyond a Json value's own
// classification (json.go's classify never reports Integer on its own).
func matchesType(types map[PrimitiveType]struct{}, instance *Json) bool {
	if instance.Kind == JsonNumber {
		if _, ok := types[TypeNumber]; ok {
			return true
		}
		if _, ok := types[TypeInteger]; ok && instance.Num.Fraction.Digits == 0 {
			return true
		}
		return false
	}
	_, ok := types[classify(instance)]
	return ok
}
