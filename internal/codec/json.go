// Package codec converts between JSON wire bytes and typed request/response
// records. Decoding validates the payload structurally against the target
// struct and reports the first invalid field as a validation failure.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/catalog/internal/common"
	"github.com/dmitrijs2005/catalog/internal/result"
)

// Field is one column/value pair of a write statement.
type Field struct {
	Column string
	Value  any
}

type fieldSpec struct {
	name     string
	column   string
	index    int
	required bool
	nullable bool
}

// fieldsOf describes the exported, JSON-visible fields of a struct type.
// A field is optional when its tag has omitempty or its type is a pointer;
// pointer fields also accept null. `codec:"required"` makes a pointer field
// required while still accepting null.
func fieldsOf(t reflect.Type) []fieldSpec {
	specs := make([]fieldSpec, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}
		column := name
		if db := sf.Tag.Get("db"); db != "" && db != "-" {
			column = db
		}
		pointer := sf.Type.Kind() == reflect.Pointer
		specs = append(specs, fieldSpec{
			name:     name,
			column:   column,
			index:    i,
			required: (!pointer && !strings.Contains(opts, "omitempty")) || sf.Tag.Get("codec") == "required",
			nullable: pointer,
		})
	}
	return specs
}

// Decode validates data against T and decodes it.
// T must be a struct type.
func Decode[T any](data []byte) result.Result[T] {
	var v T
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Struct {
		return result.Err[T](common.Internal(fmt.Errorf("codec: %v is not a struct", t)))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return result.Err[T](validationError(err, ""))
	}
	if raw == nil {
		return result.Err[T](common.ErrValidationFailed.WithDescription("Expected `object`, got `null`"))
	}

	for _, f := range fieldsOf(t) {
		value, present := raw[f.name]
		if !present {
			if f.required {
				return result.Err[T](common.ErrValidationFailed.WithDescription(
					fmt.Sprintf("Object missing required field `%s`", f.name)))
			}
			continue
		}
		if !f.nullable && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return result.Err[T](common.ErrValidationFailed.WithDescription(
				fmt.Sprintf("Expected `%s`, got `null` - at `$.%s`", jsonKind(t.Field(f.index).Type), f.name)))
		}
		target := reflect.New(t.Field(f.index).Type)
		if err := json.Unmarshal(value, target.Interface()); err != nil {
			return result.Err[T](validationError(err, f.name))
		}
		reflect.ValueOf(&v).Elem().Field(f.index).Set(target.Elem())
	}

	return result.Ok(v)
}

func validationError(err error, field string) *common.Error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		path := "$"
		if field != "" {
			path += "." + field
		}
		if typeErr.Field != "" && field == "" {
			path += "." + typeErr.Field
		}
		return common.ErrValidationFailed.WithDescription(
			fmt.Sprintf("Expected `%s`, got `%s` - at `%s`", jsonKind(typeErr.Type), typeErr.Value, path))
	case errors.As(err, &syntaxErr):
		return common.ErrValidationFailed.WithDescription(
			fmt.Sprintf("JSON is malformed: %s (byte %d)", syntaxErr.Error(), syntaxErr.Offset))
	}
	return common.Internal(err)
}

func jsonKind(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return jsonKind(t.Elem()) + " | null"
	case reflect.String:
		return "str"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.String()
}

// Encode serializes v to JSON. Values built from the record types in this
// module always encode.
func Encode(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("codec: encode %T: %v", v, err))
	}
	return b
}

// ToMapping returns the ordered column/value pairs of a struct record.
func ToMapping(v any) []Field {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	specs := fieldsOf(rv.Type())
	fields := make([]Field, 0, len(specs))
	for _, f := range specs {
		fields = append(fields, Field{Column: f.column, Value: rv.Field(f.index).Interface()})
	}
	return fields
}
