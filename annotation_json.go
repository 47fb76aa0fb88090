package jsonschema

import (
	"encoding/json"
	"fmt"
)

// annotationKindNames / annotationKindFromName map AnnotationKind to and from the
// wire string used by Annotation's JSON envelope (§13).
var annotationKindNames = map[AnnotationKind]string{
	Unequal:            "unequal",
	TypeErrorKind:      "type_error",
	EnumErrorKind:      "enum_error",
	PropertyErrorKind:  "property_error",
	ArrayErrorKind:     "array_error",
	LogicErrorKind:     "logic_error",
	RefErrorKind:       "ref_error",
	PrefixItemsLenKind: "prefix_items_len",
}

var propertyReasonNames = map[PropertyErrorReason]string{
	PropertySchemaFailed:  "schema_failed",
	PropertyMissing:       "missing",
	PropertyIncorrectType: "incorrect_type",
}

var arrayReasonNames = map[ArrayErrorReason]string{
	NotArray:          "not_array",
	ItemFailed:        "item_failed",
	PrefixItemMissing: "prefix_item_missing",
	DoesNotContain:    "does_not_contain",
}

var logicReasonNames = map[LogicErrorReason]string{
	AllOfMissing:     "all_of_missing",
	AnyOfMissing:     "any_of_missing",
	OneOfMissing:     "one_of_missing",
	OneOfMoreThanOne: "one_of_more_than_one",
	NotIs:            "not_is",
}

var refReasonNames = map[RefErrorReason]string{
	RefUnresolved: "unresolved",
	RefCycle:      "cycle",
}

func invertAnnotationKind(names map[AnnotationKind]string) map[string]AnnotationKind {
	out := make(map[string]AnnotationKind, len(names))
	for k, v := range names {
		out[v] = k
	}
	return out
}

func invertPropertyReason(names map[PropertyErrorReason]string) map[string]PropertyErrorReason {
	out := make(map[string]PropertyErrorReason, len(names))
	for k, v := range names {
		out[v] = k
	}
	return out
}

func invertArrayReason(names map[ArrayErrorReason]string) map[string]ArrayErrorReason {
	out := make(map[string]ArrayErrorReason, len(names))
	for k, v := range names {
		out[v] = k
	}
	return out
}

func invertLogicReason(names map[LogicErrorReason]string) map[string]LogicErrorReason {
	out := make(map[string]LogicErrorReason, len(names))
	for k, v := range names {
		out[v] = k
	}
	return out
}

func invertRefReason(names map[RefErrorReason]string) map[string]RefErrorReason {
	out := make(map[string]RefErrorReason, len(names))
	for k, v := range names {
		out[v] = k
	}
	return out
}

var (
	annotationKindFromName = invertAnnotationKind(annotationKindNames)
	propertyReasonFromName = invertPropertyReason(propertyReasonNames)
	arrayReasonFromName    = invertArrayReason(arrayReasonNames)
	logicReasonFromName    = invertLogicReason(logicReasonNames)
	refReasonFromName      = invertRefReason(refReasonNames)
)

// annotationWire is the tagged-union JSON envelope an Annotation serializes
// to: "kind" plus whichever fields that kind's payload uses (§13). Fields
// irrelevant to a given kind are simply omitted, via omitempty.
type annotationWire struct {
	Kind           string            `json:"kind"`
	Path           string            `json:"path"`
	Actual         string            `json:"actual,omitempty"`
	Values         []json.RawMessage `json:"values,omitempty"`
	PropertyName   string            `json:"property_name,omitempty"`
	PropertyReason string            `json:"property_reason,omitempty"`
	ArrayReason    string            `json:"array_reason,omitempty"`
	LogicReason    string            `json:"logic_reason,omitempty"`
	RefReason      string            `json:"ref_reason,omitempty"`
	RefTarget      string            `json:"ref_target,omitempty"`
	PrefixItemsLen *int              `json:"prefix_items_len,omitempty"`
}

// MarshalJSON encodes an Annotation as a tagged-union object: {"kind":
// "...", "path": "...", ...} with only the fields relevant to Kind present.
func (a Annotation) MarshalJSON() ([]byte, error) {
	kindName, ok := annotationKindNames[a.Kind]
	if !ok {
		return nil, fmt.Errorf("annotation: unknown kind %d", a.Kind)
	}

	wire := annotationWire{Kind: kindName, Path: a.Path.String()}

	if len(a.EnumValues) > 0 {
		wire.Values = make([]json.RawMessage, len(a.EnumValues))
		for i, v := range a.EnumValues {
			wire.Values[i] = json.RawMessage(v.String())
		}
	}

	switch a.Kind {
	case TypeErrorKind:
		wire.Actual = a.Actual.String()
	case PropertyErrorKind:
		wire.PropertyName = a.PropertyName
		wire.PropertyReason = propertyReasonNames[a.PropertyReason]
	case ArrayErrorKind:
		wire.ArrayReason = arrayReasonNames[a.ArrayReason]
	case LogicErrorKind:
		wire.LogicReason = logicReasonNames[a.LogicReason]
	case RefErrorKind:
		wire.RefReason = refReasonNames[a.RefReason]
		wire.RefTarget = a.RefTarget
	case PrefixItemsLenKind:
		n := a.PrefixItemsLen
		wire.PrefixItemsLen = &n
	}

	return json.Marshal(wire)
}

// UnmarshalJSON decodes a tagged-union object produced by MarshalJSON back
// into an Annotation.
func (a *Annotation) UnmarshalJSON(data []byte) error {
	var wire annotationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	kind, ok := annotationKindFromName[wire.Kind]
	if !ok {
		return fmt.Errorf("annotation: unknown kind %q", wire.Kind)
	}

	*a = Annotation{Kind: kind, Path: ParsePointer(wire.Path)}

	if len(wire.Values) > 0 {
		values := make([]Json, len(wire.Values))
		for i, raw := range wire.Values {
			parsed, err := ParseString(string(raw))
			if err != nil {
				return fmt.Errorf("annotation: decoding values[%d]: %w", i, err)
			}
			values[i] = *parsed
		}
		a.EnumValues = values
	}

	switch kind {
	case TypeErrorKind:
		a.Actual = typeNames[wire.Actual]
	case PropertyErrorKind:
		a.PropertyName = wire.PropertyName
		a.PropertyReason = propertyReasonFromName[wire.PropertyReason]
	case ArrayErrorKind:
		a.ArrayReason = arrayReasonFromName[wire.ArrayReason]
	case LogicErrorKind:
		a.LogicReason = logicReasonFromName[wire.LogicReason]
	case RefErrorKind:
		a.RefReason = refReasonFromName[wire.RefReason]
		a.RefTarget = wire.RefTarget
	case PrefixItemsLenKind:
		if wire.PrefixItemsLen != nil {
			a.PrefixItemsLen = *wire.PrefixItemsLen
		}
	}

	return nil
}
