package jsonschema

import (
	"errors"
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
)

// LoaderOptions configures LoadJSONFast's diagnostic sink. Use
// defaultLoaderOptions and LoaderOption functions rather than constructing
// this directly.
type LoaderOptions struct {
	logger Logger
}

func defaultLoaderOptions() LoaderOptions {
	return LoaderOptions{logger: noopLogger{}}
}

func (o LoaderOptions) warnf(format string, args ...any) {
	o.logger.Warnf(format, args...)
}

// LoaderOption configures LoadJSONFast.
type LoaderOption func(*LoaderOptions)

// WithLoaderLogger attaches a Logger to LoadJSONFast's diagnostic output.
func WithLoaderLogger(l Logger) LoaderOption {
	return func(o *LoaderOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// errFastValueUnrepresentable marks a convertFastValue failure that
// LoadJSONFast should recover from by falling back to the hand-rolled
// lexer/parser, rather than one that would defeat ParseString too (a
// malformed number, say, which no front-end can do anything useful with).
var errFastValueUnrepresentable = errors.New("value not representable losslessly by the fast path")

// LoadJSONFast decodes data through goccy/go-json into the Json value model
// (§12.1), for callers who want a conventional-speed path over large,
// well-formed documents and do not need the hand-rolled Lexer/Parser's
// source-span tracking. UseNumber mode is enabled internally so every
// number's original decimal text survives for parseNumberText to convert
// into the lossless {integer, fraction, exponent} form the core parser
// produces — LoadJSONFast and ParseString agree bit-for-bit on every number
// they can both represent.
//
// If the decoded tree contains a shape the fast path cannot represent
// losslessly, LoadJSONFast logs a Warnf through the configured Logger (§10)
// and falls back to re-parsing the same bytes through ParseString rather
// than failing outright — the fast path is an optimization, not the only
// source of truth for what is valid JSON.
func LoadJSONFast(data []byte, opts ...LoaderOption) (*Json, error) {
	o := defaultLoaderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dec := gojson.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fast json load failed: %w", err)
	}

	return finishFastLoad(raw, data, o)
}

// finishFastLoad converts an already-decoded value, falling back to
// ParseString over the original bytes on an unrepresentable shape. Split out
// from LoadJSONFast so the fallback branch is exercisable directly against a
// synthetic raw value, since goccy/go-json's own decode surface (with
// UseNumber) never actually produces one for syntactically valid JSON.
func finishFastLoad(raw any, original []byte, o LoaderOptions) (*Json, error) {
	result, err := convertFastValue(raw)
	if err != nil {
		if errors.Is(err, errFastValueUnrepresentable) {
			o.warnf("fast json load: %s, falling back to lexer/parser", err)
			return ParseString(string(original))
		}
		return nil, err
	}
	return result, nil
}

// fastStringEscaper re-escapes text goccy/go-json has already decoded, so
// string values and object keys hold escape sequences the way the lexer keeps
// them (token.go). Control characters other than \b \f \n \r \t are left as
// they are, and a source escape of the \uXXXX form or \/ comes back as the
// character it denotes.
var fastStringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\b", `\b`, "\f", `\f`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

func convertFastValue(raw any) (*Json, error) {
	switch v := raw.(type) {
	case nil:
		j := NewNull()
		return &j, nil
	case bool:
		j := NewBool(v)
		return &j, nil
	case string:
		j := NewString(fastStringEscaper.Replace(v))
		return &j, nil
	case gojson.Number:
		n, err := numberFromDecimalText(string(v))
		if err != nil {
			return nil, err
		}
		j := NewNumber(n)
		return &j, nil
	case []any:
		items := make([]Json, len(v))
		for i, elem := range v {
			converted, err := convertFastValue(elem)
			if err != nil {
				return nil, err
			}
			items[i] = *converted
		}
		j := NewArray(items)
		return &j, nil
	case map[string]any:
		pairs := make([]KV, 0, len(v))
		for key, elem := range v {
			converted, err := convertFastValue(elem)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, KV{Key: fastStringEscaper.Replace(key), Value: *converted})
		}
		j := NewObject(pairs...)
		return &j, nil
	default:
		return nil, fmt.Errorf("%w: type %T", errFastValueUnrepresentable, raw)
	}
}

// numberFromDecimalText parses json.Number's decimal text using the same
// segment-splitting rules as the core parser's parseNumberText (§4.2
// steps 1-3), so both front-ends agree on the resulting structured Number.
func numberFromDecimalText(text string) (Number, error) {
	span := Span{}
	n, err := parseNumberText(span, text)
	if err != nil {
		return Number{}, fmt.Errorf("fast json load: %w", err)
	}
	return n, nil
}
