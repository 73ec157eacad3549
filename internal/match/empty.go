package match

import (
	"encoding/json"
	"reflect"

	"mids/internal/model"
)

// IsEmpty reports whether v counts as a missing value. nil and "" are empty;
// other scalars are not. Non-scalar values are treated as empty so that
// unexpected shapes never produce a match.
func IsEmpty(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case json.Number:
		return v == ""
	case bool, float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return false
	case reflect.Pointer:
		if rv.IsNil() {
			return true
		}

		return IsEmpty(rv.Elem().Interface())
	default:
		return true
	}
}

// Present reports whether the record holds a non-empty value for name.
func Present(r model.Record, name string) bool {
	v, ok := r.Get(name)
	return ok && !IsEmpty(v)
}
