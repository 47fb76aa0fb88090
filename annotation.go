package jsonschema

// AnnotationKind tags which variant of the Annotation tagged union a value
// holds (§3, §4.4).
type AnnotationKind int

const (
	// Unequal is emitted by the Primitive keyword when the instance does
	// not structurally equal the literal the schema was built from.
	Unequal AnnotationKind = iota
	// TypeErrorKind is emitted by the Type keyword when the instance's
	// PrimitiveType is not in the declared set.
	TypeErrorKind
	// EnumErrorKind is emitted by the Enum keyword when the instance
	// matches none of the enumerated values.
	EnumErrorKind
	// PropertyErrorKind is emitted by the Properties keyword for a named
	// member that failed one of its schemas, a member absent from the
	// instance (required or not), or a non-object instance.
	PropertyErrorKind
	// ArrayErrorKind is emitted by Items, PrefixItems, and Contains for a
	// non-array instance, a missing prefix element, or a Contains with no
	// matching element.
	ArrayErrorKind
	// LogicErrorKind is emitted by AllOf/AnyOf/OneOf/Not when the boolean
	// combination does not hold.
	LogicErrorKind
	// RefErrorKind is emitted by Ref when the RootSchema carries no resolved
	// $ref target.
	RefErrorKind
	// PrefixItemsLenKind is emitted by PrefixItems unconditionally (success
	// or failure) so Items can later look up how many leading elements were
	// already accounted for at the same path (§4.4).
	PrefixItemsLenKind
)

// PropertyErrorReason distinguishes why a Properties-keyword annotation for a
// given member was emitted.
type PropertyErrorReason int

const (
	// PropertySchemaFailed means the member's value failed one of its
	// Property's Schemas.
	PropertySchemaFailed PropertyErrorReason = iota
	// PropertyMissing means the member was absent from the instance. It is
	// emitted whether or not the Property is required; only a required one
	// fails.
	PropertyMissing
	// PropertyIncorrectType means the instance was not an object at all.
	PropertyIncorrectType
)

// ArrayErrorReason distinguishes why an array-keyword annotation was emitted.
type ArrayErrorReason int

const (
	// NotArray means an Items, PrefixItems, or Contains keyword was
	// evaluated against a non-array instance.
	NotArray ArrayErrorReason = iota
	// ItemFailed is part of the wire vocabulary but is not emitted by the
	// Validator: an element that fails its Items or PrefixItems schema is
	// reported through that schema's own annotations.
	ItemFailed
	// PrefixItemMissing means a PrefixItems index had no corresponding
	// array element.
	PrefixItemMissing
	// DoesNotContain means a Contains keyword found no element satisfying
	// its schema.
	DoesNotContain
)

// LogicErrorReason distinguishes which Logic applicator produced a
// LogicError annotation.
type LogicErrorReason int

const (
	// AllOfMissing means at least one allOf sub-schema failed.
	AllOfMissing LogicErrorReason = iota
	// AnyOfMissing means every anyOf sub-schema failed.
	AnyOfMissing
	// OneOfMissing means zero sub-schemas of a oneOf succeeded.
	OneOfMissing
	// OneOfMoreThanOne means more than one sub-schema of a oneOf succeeded.
	OneOfMoreThanOne
	// NotIs means a not keyword's wrapped schema succeeded (so not fails).
	NotIs
)

// RefErrorReason distinguishes why a Ref annotation reports failure.
type RefErrorReason int

const (
	// RefUnresolved means the $ref's target name was not found among the
	// schema's $defs.
	RefUnresolved RefErrorReason = iota
	// RefCycle is part of the wire vocabulary but is not emitted by the
	// Validator: recursion past MaxDepth makes Validate return
	// ErrRecursionLimitExceeded instead.
	RefCycle
)

// Annotation is one entry of the flat, ordered bus a Validator run produces
// (§3). Every Annotation carries the Key path at which it was emitted; Kind
// selects which of the remaining fields are meaningful.
type Annotation struct {
	Path Key
	Kind AnnotationKind

	// SchemaRef is the RootSchema node that produced this Annotation,
	// cloned in as a minimal back-reference rather than a full schema-path
	// string (§9): Unequal, PropertyError, and LogicError all carry one.
	SchemaRef *RootSchema

	// TypeError payload: the instance's actual runtime type, since the
	// declared set it failed to match is already recoverable from the
	// RootSchema at SchemaRef.
	Actual PrimitiveType

	// EnumError payload: the values the instance matched none of.
	EnumValues []Json

	// PropertyError payload.
	PropertyName   string
	PropertyReason PropertyErrorReason

	// ArrayError payload.
	ArrayReason ArrayErrorReason

	// LogicError payload.
	LogicReason LogicErrorReason

	// RefError payload.
	RefReason RefErrorReason
	RefTarget string

	// PrefixItemsLen payload: the number of leading array elements the
	// PrefixItems keyword at this path accounted for.
	PrefixItemsLen int
}

// IsError reports whether this Annotation represents a validation failure
// rather than a purely informational entry (PrefixItemsLen is the only
// non-error kind: it is emitted whether or not the prefix items matched).
func (a Annotation) IsError() bool {
	return a.Kind != PrefixItemsLenKind
}
