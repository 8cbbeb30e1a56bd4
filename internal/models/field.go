package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type scalar interface {
	string | int | bool | float64
}

// Field is a request body field. It records whether the field was present
// and whether it was null, and coerces lax input: numeric strings and
// whole-number floats for ints, numeric strings for floats, and
// "true"/"false" style strings and 0/1 for bools. Strings are not coerced.
type Field[T scalar] struct {
	Value T
	Set   bool
	Null  bool
	// bad is the reason the value could not be coerced to T.
	bad string
}

// Some returns a present field holding v.
func Some[T scalar](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	*f = Field[T]{Set: true}
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		f.Null = true
		return nil
	}

	switch p := any(&f.Value).(type) {
	case *string:
		if err := json.Unmarshal(b, p); err != nil {
			f.bad = "expected string, got " + jsonKind(b)
		}
	case *int:
		f.bad = coerceInt(b, p)
	case *float64:
		f.bad = coerceFloat(b, p)
	case *bool:
		f.bad = coerceBool(b, p)
	}
	return nil
}

// ok reports whether the field holds a usable value.
func (f Field[T]) ok() bool {
	return f.Set && !f.Null && f.bad == ""
}

// Or returns the value, or fallback when the field was absent.
func (f Field[T]) Or(fallback T) T {
	if !f.ok() {
		return fallback
	}
	return f.Value
}

// problem explains why a present field is unusable, or "" when it is fine.
func (f Field[T]) problem(nullable bool) string {
	switch {
	case !f.Set:
		return ""
	case f.Null && !nullable:
		return "must not be null"
	default:
		return f.bad
	}
}

// validated is the value seen by the validator: nil unless usable.
func (f Field[T]) validated() interface{} {
	if p := f.Ptr(); p != nil {
		return p
	}
	return nil
}

// Ptr returns the value, or nil when absent or null.
func (f Field[T]) Ptr() *T {
	if !f.ok() {
		return nil
	}
	v := f.Value
	return &v
}

func coerceInt(b []byte, out *int) string {
	s, _ := unquote(b)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "expected int, got " + jsonKind(b)
	}
	if n != math.Trunc(n) || math.IsInf(n, 0) {
		return "expected int, got number with fractional part"
	}
	if math.Abs(n) > 1<<53 {
		return "expected int, got out of range number"
	}
	*out = int(n)
	return ""
}

func coerceFloat(b []byte, out *float64) string {
	s, _ := unquote(b)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return "expected number, got " + jsonKind(b)
	}
	*out = n
	return ""
}

func coerceBool(b []byte, out *bool) string {
	s, _ := unquote(b)
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "t", "y":
		*out = true
	case "false", "0", "no", "off", "f", "n":
		*out = false
	default:
		return "expected bool, got " + jsonKind(b)
	}
	return ""
}

// unquote returns the text of a JSON string, or the raw literal otherwise.
func unquote(b []byte) (string, bool) {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err == nil {
			return s, true
		}
	}
	if len(b) > 0 && (b[0] == '{' || b[0] == '[') {
		return "", false
	}
	return string(b), false
}

func jsonKind(b []byte) string {
	if len(b) == 0 {
		return "nothing"
	}
	switch b[0] {
	case '"':
		return "string"
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}
