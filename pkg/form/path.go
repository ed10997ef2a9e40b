package form

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/goliatone/go-resume/pkg/validation"
)

// fieldIndex maps json names to struct field indexes per type.
var fieldIndex sync.Map

func fieldsOf(t reflect.Type) map[string]int {
	if cached, ok := fieldIndex.Load(t); ok {
		return cached.(map[string]int)
	}
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if name := validation.JSONName(field); name != "" {
			out[name] = i
		}
	}
	fieldIndex.Store(t, out)
	return out
}

// resolve walks segments from root and returns the addressed value. root must
// be addressable so the result can be set.
func resolve(root reflect.Value, segments []string) (reflect.Value, error) {
	current := root
	for i, segment := range segments {
		switch current.Kind() {
		case reflect.Struct:
			idx, ok := fieldsOf(current.Type())[segment]
			if !ok {
				return reflect.Value{}, fmt.Errorf("form: unknown field %q at segment %d", segment, i)
			}
			current = current.Field(idx)
		case reflect.Slice:
			idx, err := strconv.Atoi(segment)
			if err != nil {
				return reflect.Value{}, fmt.Errorf("form: expected index at segment %d, got %q", i, segment)
			}
			if idx < 0 || idx >= current.Len() {
				return reflect.Value{}, fmt.Errorf("form: index %d out of range [0,%d)", idx, current.Len())
			}
			current = current.Index(idx)
		default:
			return reflect.Value{}, fmt.Errorf("form: cannot descend into %s at segment %q", current.Kind(), segment)
		}
	}
	return current, nil
}

// coerce converts value into something assignable to target, unwrapping a
// single pointer level.
func coerce(value any, target reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Value{}, fmt.Errorf("form: nil value for %s", target)
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Type().AssignableTo(target) {
		rv = rv.Elem()
	}
	if !rv.Type().AssignableTo(target) {
		return reflect.Value{}, fmt.Errorf("form: %s is not assignable to %s", rv.Type(), target)
	}
	return rv, nil
}

// lastField returns the last non-index segment, naming the list kind.
func lastField(segments []string) string {
	for i := len(segments) - 1; i >= 0; i-- {
		if _, err := strconv.Atoi(segments[i]); err != nil {
			return segments[i]
		}
	}
	return ""
}
