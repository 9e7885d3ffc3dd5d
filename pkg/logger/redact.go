package logger

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const redacted = "[Redacted]"

// redact returns meta with the value at every dotted path replaced. Maps are
// copied along each path, so the caller's data is left untouched. Objects
// (maps with string keys, structs, pointers to either) come back as field
// maps; multiple metadata values are redacted one by one.
func redact(meta any, paths []string) any {
	if items, ok := meta.([]any); ok {
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = redact(item, paths)
		}
		return out
	}

	fields, ok := toFields(meta)
	if !ok {
		return meta
	}

	for _, path := range paths {
		fields = redactPath(fields, strings.Split(path, "."))
	}
	return fields
}

func redactPath(fields map[string]any, segments []string) map[string]any {
	v, ok := fields[segments[0]]
	if !ok {
		return fields
	}

	out := make(map[string]any, len(fields))
	for k, val := range fields {
		out[k] = val
	}

	if len(segments) == 1 {
		out[segments[0]] = redacted
		return out
	}

	child, ok := toFields(v)
	if !ok {
		return fields
	}
	out[segments[0]] = redactPath(child, segments[1:])
	return out
}

func toFields(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil, false
	}

	switch m := rv.Interface().(type) {
	case map[string]any:
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	}

	switch {
	case rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String:
		// Values are copied as is; only the map type changes.
		out := map[string]any{}
		if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
			return nil, false
		}
		return out, true
	case rv.Kind() == reflect.Struct:
		return structFields(rv.Interface())
	default:
		return nil, false
	}
}

// structFields goes through the struct's JSON encoding, so json tags,
// MarshalJSON and time.Time render the way the standard logger prints them.
// Numbers stay json.Number to keep their precision.
func structFields(v any) (map[string]any, bool) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var out map[string]any
	if err := dec.Decode(&out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}
