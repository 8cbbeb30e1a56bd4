package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := jsonName(fld)
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if f, ok := field.Interface().(bodyField); ok {
			return f.validated()
		}
		return nil
	}, Field[string]{}, Field[int]{}, Field[bool]{}, Field[float64]{})
	return v
}

// bodyField is implemented by every Field instantiation.
type bodyField interface {
	problem(nullable bool) string
	validated() interface{}
}

func jsonName(sf reflect.StructField) string {
	return strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
}

// fieldProblems reports fields that were present but null or of the wrong
// type. Only fields tagged nullable:"true" may be null.
func fieldProblems(v interface{}) []FieldError {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var out []FieldError
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		f, ok := rv.Field(i).Interface().(bodyField)
		if !ok {
			continue
		}
		if reason := f.problem(sf.Tag.Get("nullable") == "true"); reason != "" {
			out = append(out, FieldError{Field: jsonName(sf), Reason: reason})
		}
	}
	return out
}

// FieldError names one rejected field and why.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned for input that fails structural checks.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Reason
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks field types and nulls first, then the presence and range
// rules declared on v's struct tags. A field is reported at most once.
func Validate(v interface{}) error {
	out := &ValidationError{Fields: fieldProblems(v)}
	reported := make(map[string]bool, len(out.Fields))
	for _, f := range out.Fields {
		reported[f.Field] = true
	}

	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate: %w", err)
		}
		for _, fe := range verrs {
			if !reported[fe.Field()] {
				out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Reason: reason(fe)})
			}
		}
	}

	if len(out.Fields) == 0 {
		return nil
	}
	return out
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// ParseError turns a JSON decoding error into a ValidationError.
func ParseError(err error) *ValidationError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return NewValidationError(field, fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewValidationError("body", "invalid JSON: "+syntaxErr.Error())
	}

	return NewValidationError("body", err.Error())
}
