package jsonschema

import (
	"strconv"
	"strings"
)

// JsonKind tags which variant of the Json tagged union a value holds.
type JsonKind int

const (
	JsonObject JsonKind = iota
	JsonArray
	JsonNumber
	JsonString
	JsonBoolean
	JsonNull
)

func (k JsonKind) String() string {
	switch k {
	case JsonObject:
		return "object"
	case JsonArray:
		return "array"
	case JsonNumber:
		return "number"
	case JsonString:
		return "string"
	case JsonBoolean:
		return "boolean"
	case JsonNull:
		return "null"
	default:
		return "unknown"
	}
}

// Fraction is the decimal part of a Number: LeadingZeros counts the literal
// '0' characters at the start of the fraction segment before the first
// nonzero digit (or before the segment ends, if the fraction is all zero);
// Digits is the fraction segment read as an unsigned integer. Keeping these
// separate is what lets "1.005" and "1.5" stay distinguishable even though
// naively parsing the fraction as a bare integer would lose the former's
// leading zero.
type Fraction struct {
	LeadingZeros uint64
	Digits       uint64
}

// Number is the lossless structured representation of a JSON number
// literal: Integer is the signed integer part, Fraction is the decimal part,
// and Exponent is the signed exponent.
//
// Fraction is the zero value iff the literal had no '.'; an all-zero
// fraction such as "1.0" has Digits 0 and a non-zero LeadingZeros.
// Exponent is 0 when the literal had no 'e'/'E', and also for an explicit
// zero exponent such as "1e0".
type Number struct {
	Integer  int64
	Fraction Fraction
	Exponent int64
}

// HasFraction reports whether the literal this Number was parsed from had a
// decimal point.
func (n Number) HasFraction() bool {
	return n.Fraction.Digits != 0 || n.Fraction.LeadingZeros != 0
}

// Equal compares two Numbers structurally: identical Integer, Fraction, and
// Exponent fields. Two literals that denote the same mathematical value but
// decompose into different fields (e.g. "1e1" vs "10") are NOT equal under
// this definition; Json equality is defined field-wise throughout (§3), and
// extending that uniformly to Number avoids introducing a second,
// arithmetic notion of equality alongside the structural one used for
// Object/Array/String/Boolean.
func (n Number) Equal(other Number) bool {
	return n.Integer == other.Integer && n.Fraction == other.Fraction && n.Exponent == other.Exponent
}

// jsonObject is an insertion-ordered string-keyed map. Keys are unique (§3);
// insertion order is preserved for serialization stability even though the
// spec treats it as irrelevant to equality.
type jsonObject struct {
	keys []string
	vals []Json
	idx  map[string]int
}

func newJSONObject() *jsonObject {
	return &jsonObject{idx: make(map[string]int)}
}

func (o *jsonObject) set(key string, val Json) {
	if i, ok := o.idx[key]; ok {
		o.vals[i] = val
		return
	}
	o.idx[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
}

func (o *jsonObject) get(key string) (*Json, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.idx[key]
	if !ok {
		return nil, false
	}
	return &o.vals[i], true
}

func (o *jsonObject) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Json is the typed in-memory representation of a parsed JSON document: a
// tagged union over Object, Array, Number, String, Boolean, and Null.
type Json struct {
	Kind    JsonKind
	object  *jsonObject
	Array   []Json
	Num     Number
	Str     string
	Boolean bool
}

// NewNull, NewBool, NewString, NewNumber, NewArray, and NewObject build Json
// values of each respective kind.
func NewNull() Json { return Json{Kind: JsonNull} }

func NewBool(b bool) Json { return Json{Kind: JsonBoolean, Boolean: b} }

func NewString(s string) Json { return Json{Kind: JsonString, Str: s} }

func NewNumber(n Number) Json { return Json{Kind: JsonNumber, Num: n} }

func NewArray(items []Json) Json { return Json{Kind: JsonArray, Array: items} }

// NewObject builds an object Json value from an ordered list of key/value
// pairs. Duplicate keys overwrite earlier ones, keeping the first key's
// position (matching common JSON-decoder "last value wins" behavior).
func NewObject(pairs ...KV) Json {
	obj := newJSONObject()
	for _, kv := range pairs {
		obj.set(kv.Key, kv.Value)
	}
	return Json{Kind: JsonObject, object: obj}
}

// KV is one member of an object literal passed to NewObject.
type KV struct {
	Key   string
	Value Json
}

// ObjectGet looks up name in an object-kind Json, returning ok=false if j is
// not an object or has no such member.
func (j *Json) ObjectGet(name string) (*Json, bool) {
	if j == nil || j.Kind != JsonObject {
		return nil, false
	}
	return j.object.get(name)
}

// ObjectKeys returns the member names of an object-kind Json in insertion
// order, or nil if j is not an object.
func (j *Json) ObjectKeys() []string {
	if j == nil || j.Kind != JsonObject {
		return nil
	}
	return j.object.keys
}

// ObjectLen reports the number of members of an object-kind Json.
func (j *Json) ObjectLen() int {
	if j == nil {
		return 0
	}
	return j.object.Len()
}

// Equal reports structural equality between two Json values: equal kind and
// equal payload. Two Objects are equal when they have the same key set and
// equal values for every key (§3); member order does not affect equality.
func (j Json) Equal(other Json) bool {
	if j.Kind != other.Kind {
		return false
	}
	switch j.Kind {
	case JsonNull:
		return true
	case JsonBoolean:
		return j.Boolean == other.Boolean
	case JsonString:
		return j.Str == other.Str
	case JsonNumber:
		return j.Num.Equal(other.Num)
	case JsonArray:
		if len(j.Array) != len(other.Array) {
			return false
		}
		for i := range j.Array {
			if !j.Array[i].Equal(other.Array[i]) {
				return false
			}
		}
		return true
	case JsonObject:
		if j.object.Len() != other.object.Len() {
			return false
		}
		for _, key := range j.object.keys {
			mine, _ := j.object.get(key)
			theirs, ok := other.object.get(key)
			if !ok || !mine.Equal(*theirs) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// PrimitiveType classifies a Json value's runtime shape, as distinct from
// the schema-level "type" keyword's declared set (type.go). Integer is never
// produced by this classification directly from a Json value — a Number is
// always classified Number here; Integer-vs-Number is a property the Type
// keyword tests against Fraction.Digits (§4.4), not a separate Json kind.
type PrimitiveType int

const (
	TypeString PrimitiveType = iota
	TypeNumber
	TypeInteger
	TypeObject
	TypeArray
	TypeBoolean
	TypeNull
)

func (t PrimitiveType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeInteger:
		return "integer"
	case TypeObject:
		return "object"
	case TypeArray:
		return "array"
	case TypeBoolean:
		return "boolean"
	case TypeNull:
		return "null"
	default:
		return "unknown"
	}
}

// classify returns the PrimitiveType of j's Kind, always reporting Number
// for a JsonNumber regardless of its fraction (see PrimitiveType's doc).
func classify(j *Json) PrimitiveType {
	switch j.Kind {
	case JsonObject:
		return TypeObject
	case JsonArray:
		return TypeArray
	case JsonNumber:
		return TypeNumber
	case JsonString:
		return TypeString
	case JsonBoolean:
		return TypeBoolean
	case JsonNull:
		return TypeNull
	default:
		return TypeNull
	}
}

// String serializes j back into JSON text. It is used by the round-trip
// testable property (§8.2): re-parsing String's output must produce a
// structurally Equal value.
func (j Json) String() string {
	var b strings.Builder
	j.writeTo(&b)
	return b.String()
}

func (j Json) writeTo(b *strings.Builder) {
	switch j.Kind {
	case JsonNull:
		b.WriteString("null")
	case JsonBoolean:
		if j.Boolean {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case JsonString:
		b.WriteByte('"')
		b.WriteString(j.Str)
		b.WriteByte('"')
	case JsonNumber:
		b.WriteString(j.Num.String())
	case JsonArray:
		b.WriteByte('[')
		for i, item := range j.Array {
			if i > 0 {
				b.WriteByte(',')
			}
			item.writeTo(b)
		}
		b.WriteByte(']')
	case JsonObject:
		b.WriteByte('{')
		for i, key := range j.object.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(key)
			b.WriteString("\":")
			val, _ := j.object.get(key)
			val.writeTo(b)
		}
		b.WriteByte('}')
	}
}

// String renders the Number back into a JSON number literal, reconstructing
// the '.' and 'e'/'E' exactly when Fraction/Exponent indicate they were
// present in the source (§3's invariants).
func (n Number) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(n.Integer, 10))
	if n.HasFraction() {
		b.WriteByte('.')
		if n.Fraction.LeadingZeros > 0 {
			b.WriteString(strings.Repeat("0", int(n.Fraction.LeadingZeros)))
		}
		if n.Fraction.Digits > 0 {
			b.WriteString(strconv.FormatUint(n.Fraction.Digits, 10))
		}
	}
	if n.Exponent != 0 {
		b.WriteByte('e')
		if n.Exponent > 0 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.FormatInt(n.Exponent, 10))
	}
	return b.String()
}
