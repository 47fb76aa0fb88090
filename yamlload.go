package jsonschema

import (
	"errors"
	"fmt"
	"strconv"

	goyaml "github.com/goccy/go-yaml"
)

// LoadYAML decodes data as YAML through goccy/go-yaml and narrows the result
// to the Json value model (§12.2). YAML's scalar grammar is richer than
// JSON's — timestamps, merge keys, multiple representations of the same
// number — so this only recognizes the subset that already has an obvious
// Json counterpart; anything else (including a root that isn't a mapping,
// sequence, or scalar at all) is reported as ErrUnsupportedYAMLRoot rather
// than guessed at. Unlike LoadJSONFast, there is no hand-rolled fallback
// parser to recover into here — the hand-rolled Lexer/Parser only speaks
// JSON's grammar, not YAML's — so an unsupported shape logs a Warnf through
// the configured Logger (§10) and then still returns ErrUnsupportedYAMLRoot.
func LoadYAML(data []byte, opts ...LoaderOption) (*Json, error) {
	o := defaultLoaderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var raw any
	if err := goyaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml load failed: %w", err)
	}
	result, err := convertYAMLValue(raw)
	if errors.Is(err, ErrUnsupportedYAMLRoot) {
		o.warnf("yaml load: %s", err)
	}
	return result, err
}

func convertYAMLValue(raw any) (*Json, error) {
	switch v := raw.(type) {
	case nil:
		j := NewNull()
		return &j, nil
	case bool:
		j := NewBool(v)
		return &j, nil
	case string:
		j := NewString(v)
		return &j, nil
	case int:
		return yamlIntNumber(int64(v))
	case int64:
		return yamlIntNumber(v)
	case uint64:
		return yamlIntNumber(int64(v))
	case float64:
		return yamlFloatNumber(v)
	case []any:
		items := make([]Json, len(v))
		for i, elem := range v {
			converted, err := convertYAMLValue(elem)
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
			converted, err := convertYAMLValue(elem)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, KV{Key: key, Value: *converted})
		}
		j := NewObject(pairs...)
		return &j, nil
	default:
		return nil, ErrUnsupportedYAMLRoot
	}
}

func yamlIntNumber(i int64) (*Json, error) {
	n, err := parseNumberText(Span{}, strconv.FormatInt(i, 10))
	if err != nil {
		return nil, fmt.Errorf("yaml load: %w", err)
	}
	j := NewNumber(n)
	return &j, nil
}

func yamlFloatNumber(f float64) (*Json, error) {
	text := strconv.FormatFloat(f, 'f', -1, 64)
	n, err := parseNumberText(Span{}, text)
	if err != nil {
		return nil, fmt.Errorf("yaml load: %w", err)
	}
	j := NewNumber(n)
	return &j, nil
}
