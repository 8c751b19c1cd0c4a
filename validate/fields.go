package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// DecodeJSON decodes a response body into untyped JSON. Numbers are kept as
// json.Number so integer identifiers survive without float rounding.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode JSON: unexpected data after top-level value")
	}
	return v, nil
}

// typeName names the JSON type of a decoded value for diagnostics.
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, float32, int, int64, int32:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func asInteger(v any) (int64, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	f, ok := asNumber(v)
	if !ok || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// checker collects every required-field problem of one object before
// reporting, so a single error names all of them.
type checker struct {
	entity   string
	obj      map[string]any
	problems []FieldError
	found    []string
}

func newChecker(entity string, v any) (*checker, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &Error{
			Entity: entity,
			Index:  -1,
			Fields: []FieldError{{Field: "$", Problem: wrongType(v, "object")}},
		}
	}
	return &checker{entity: entity, obj: obj}, nil
}

func wrongType(v any, want string) string {
	return fmt.Sprintf("wrong type (got %s, want %s)", typeName(v), want)
}

func (c *checker) fail(field, problem string) {
	c.problems = append(c.problems, FieldError{Field: field, Problem: problem})
}

func (c *checker) lookup(field string) (any, bool) {
	v, ok := c.obj[field]
	if !ok {
		c.fail(field, "missing")
	}
	return v, ok
}

func (c *checker) requireString(field string, allowEmpty bool) string {
	v, ok := c.lookup(field)
	if !ok {
		return ""
	}
	s, isString := v.(string)
	switch {
	case !isString:
		c.fail(field, wrongType(v, "string"))
		return ""
	case s == "" && !allowEmpty:
		c.fail(field, "empty")
		return ""
	}
	c.found = append(c.found, field)
	return s
}

func (c *checker) requireNumber(field string) float64 {
	v, ok := c.lookup(field)
	if !ok {
		return 0
	}
	f, isNumber := asNumber(v)
	if !isNumber {
		c.fail(field, wrongType(v, "number"))
		return 0
	}
	c.found = append(c.found, field)
	return f
}

func (c *checker) requireInteger(field string) int64 {
	v, ok := c.lookup(field)
	if !ok {
		return 0
	}
	if _, isNumber := asNumber(v); !isNumber {
		c.fail(field, wrongType(v, "number"))
		return 0
	}
	i, isInt := asInteger(v)
	if !isInt {
		c.fail(field, "not an integer")
		return 0
	}
	c.found = append(c.found, field)
	return i
}

func (c *checker) optionalString(field string) *string {
	if s, ok := c.obj[field].(string); ok {
		return &s
	}
	return nil
}

func (c *checker) optionalBool(field string) *bool {
	if b, ok := c.obj[field].(bool); ok {
		return &b
	}
	return nil
}

func (c *checker) optionalNumber(field string) *float64 {
	if f, ok := asNumber(c.obj[field]); ok {
		return &f
	}
	return nil
}

// optionalStrings keeps a non-empty array made only of strings.
func (c *checker) optionalStrings(field string) []string {
	arr, ok := c.obj[field].([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (c *checker) err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return &Error{Entity: c.entity, Index: -1, Fields: c.problems, Found: c.found}
}
