package jsonschema

// SchemaParseErrorKind enumerates the Schema Compiler's rejection reasons
// (§4.3).
type SchemaParseErrorKind int

const (
	// IllegalVocabularyType is returned when $vocabulary is present but is
	// not a JSON object.
	IllegalVocabularyType SchemaParseErrorKind = iota
	// InvalidUri is returned when $id is present but is not a string.
	InvalidUri
	// VocabularyNotBool is returned when a $vocabulary entry's value is not
	// a boolean.
	VocabularyNotBool
	// NotObject is returned when $defs or properties is present but is not
	// a JSON object.
	NotObject
	// NotArray is returned when enum, prefixItems, allOf/anyOf/oneOf, or
	// required is present but is not a JSON array.
	NotArray
	// ArrayEmpty is returned for an empty allOf/anyOf/oneOf array.
	ArrayEmpty
	// InvalidType is returned for a type keyword whose value is not a
	// string, not an array of strings, or names something outside the
	// seven recognized primitive type names.
	InvalidType
	// RefNotString is returned when $ref is present but is not a string.
	RefNotString
	// RefNotFound is returned when a local "#/$defs/<name>" $ref names an
	// entry absent from $defs once the whole container finishes compiling.
	RefNotFound
)

func (k SchemaParseErrorKind) String() string {
	switch k {
	case IllegalVocabularyType:
		return "illegal vocabulary type"
	case InvalidUri:
		return "invalid uri"
	case VocabularyNotBool:
		return "vocabulary entry not bool"
	case NotObject:
		return "not an object"
	case NotArray:
		return "not an array"
	case ArrayEmpty:
		return "array empty"
	case InvalidType:
		return "invalid type"
	case RefNotString:
		return "$ref is not a string"
	case RefNotFound:
		return "$ref target not found in $defs"
	default:
		return "unknown schema parse error"
	}
}

// SchemaParseError reports a Schema Compiler rejection at a specific Key
// path within the schema document being compiled.
type SchemaParseError struct {
	Path Key
	Kind SchemaParseErrorKind
}

func (e *SchemaParseError) Error() string {
	return "schema parse error at " + e.Path.String() + ": " + e.Kind.String()
}

// RootSchemaKind tags which applicator variant a RootSchema node holds
// (§3).
type RootSchemaKind int

const (
	PrimitiveSchema RootSchemaKind = iota
	TypeSchema
	EnumSchema
	PropertiesSchema
	ItemsSchema
	PrefixItemsSchema
	ContainsSchema
	LogicSchema
	RefSchema
)

// Property is one member of a Properties applicator: a name, whether its
// absence is tolerated, and the (non-empty) list of sub-schemas the member's
// value must satisfy when present.
type Property struct {
	Name     string
	Required bool
	Schemas  []*JsonSchema
}

// LogicApplierKind tags which boolean combinator a LogicApplier holds.
type LogicApplierKind int

const (
	AllOfApplier LogicApplierKind = iota
	AnyOfApplier
	OneOfApplier
	NotApplier
)

// LogicApplier is the payload of a LogicSchema RootSchema node. AllOf/AnyOf/
// OneOf carry Schemas; Not carries a single Schema.
type LogicApplier struct {
	Kind    LogicApplierKind
	Schemas []*JsonSchema
	Schema  *JsonSchema
}

// RootSchema is a tagged variant over the applicators a JsonSchema's Roots
// list can hold (§3). Exactly the fields matching Kind are meaningful; the
// rest are the zero value.
type RootSchema struct {
	Kind RootSchemaKind

	// PrimitiveSchema: the literal instances are compared against.
	Primitive *Json

	// TypeSchema: the declared set of acceptable PrimitiveTypes.
	Types map[PrimitiveType]struct{}

	// EnumSchema: the explicit set of acceptable values.
	EnumValues []Json

	// PropertiesSchema.
	Properties []Property

	// ItemsSchema / ContainsSchema: both wrap a single sub-schema; Kind
	// disambiguates which keyword it came from.
	Sub *JsonSchema

	// PrefixItemsSchema: ordered per-index sub-schemas.
	PrefixItems []*JsonSchema

	// LogicSchema.
	Logic LogicApplier

	// RefSchema: a non-owning pointer to the $defs entry this $ref names,
	// and the name it was resolved from (for RefError reporting when the
	// pointer is nil, i.e. unresolved).
	Ref     *JsonSchema
	RefName string
}

// JsonSchema is the compiled tree the Schema Compiler produces from a Json
// schema document (§3, §4.3): an optional $id, an optional declared
// $vocabulary, an optional named $defs map, the ordered list of applicators
// that apply directly to an instance at this node, and any keywords the
// compiler did not recognize, retained verbatim for forward compatibility.
//
// Once built by Compile, a JsonSchema is immutable and safe to share across
// concurrent Validator runs (§5).
type JsonSchema struct {
	Id         Uri
	Vocabulary map[string]bool
	Defs       map[string]*JsonSchema
	Roots      []RootSchema
	Unknowns   map[string]Json
}
