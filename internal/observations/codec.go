package observations

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// ErrNoMatch is returned by Query when the path selects nothing.
var ErrNoMatch = errors.New("query matched nothing")

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RoundTrip parses data, serializes the parse tree and parses the result
// again. It fails when the two generic structures differ.
func RoundTrip(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	out, err := encode(&node)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	var before, after any
	if err := yaml.Unmarshal(data, &before); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := yaml.Unmarshal(out, &after); err != nil {
		return fmt.Errorf("reparse: %w", err)
	}
	if !reflect.DeepEqual(before, after) {
		return errors.New("document changed across parse/serialize/parse")
	}
	return nil
}

// ToJSON converts a YAML document into JSON.
func ToJSON(data []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse observations: %w", err)
	}
	return json.Marshal(jsonable(v))
}

// Query evaluates a gjson path (for example "smry.#.key") against a YAML document.
func Query(data []byte, path string) (gjson.Result, error) {
	js, err := ToJSON(data)
	if err != nil {
		return gjson.Result{}, err
	}
	res := gjson.GetBytes(js, path)
	if !res.Exists() {
		return res, fmt.Errorf("%w: %s", ErrNoMatch, path)
	}
	return res, nil
}

// jsonable rewrites non-string map keys so encoding/json accepts the value.
func jsonable(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = jsonable(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonable(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = jsonable(val)
		}
		return t
	default:
		return v
	}
}
