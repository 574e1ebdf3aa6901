package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Decode parses a JSON object into the insert shape T. Keys outside T's
// allow-list, values of the wrong type, and values failing T's rules are all
// reported together in a *ValidationError.
func Decode[T any](data []byte) (T, error) {
	var out T

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return out, &ValidationError{Fields: []FieldError{{Reason: "body must be a JSON object"}}}
	}

	target := reflect.ValueOf(&out).Elem()
	allowed := jsonFields(target.Type())

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var fields []FieldError
	for _, key := range keys {
		idx, ok := allowed[key]
		if !ok {
			fields = append(fields, FieldError{Field: key, Reason: "is not allowed"})
			continue
		}
		if unknown := unknownKeys(raw[key], target.Type().Field(idx).Type, key); len(unknown) > 0 {
			fields = append(fields, unknown...)
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(raw[key]))
		dec.DisallowUnknownFields()
		if err := dec.Decode(target.Field(idx).Addr().Interface()); err != nil {
			fields = append(fields, FieldError{Field: key, Reason: decodeReason(err)})
		}
	}

	for _, fe := range structErrors(out) {
		if !covered(fields, fe.Field) {
			fields = append(fields, fe)
		}
	}
	if len(fields) > 0 {
		return out, &ValidationError{Fields: fields}
	}
	return out, nil
}

func DecodeUser(data []byte) (InsertUser, error) {
	return Decode[InsertUser](data)
}

func DecodeRestaurant(data []byte) (InsertRestaurant, error) {
	return Decode[InsertRestaurant](data)
}

func DecodeMenuItem(data []byte) (InsertMenuItem, error) {
	return Decode[InsertMenuItem](data)
}

func DecodeTable(data []byte) (InsertTable, error) {
	return Decode[InsertTable](data)
}

func DecodeOrder(data []byte) (InsertOrder, error) {
	return Decode[InsertOrder](data)
}

func DecodeSession(data []byte) (InsertSession, error) {
	return Decode[InsertSession](data)
}

// AllowedFields returns the JSON keys accepted by an insert shape, sorted.
func AllowedFields(in interface{}) []string {
	t := reflect.TypeOf(in)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	names := make([]string, 0, t.NumField())
	for name := range jsonFields(t) {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func jsonFields(t reflect.Type) map[string]int {
	fields := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		fields[name] = i
	}
	return fields
}

func decodeReason(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field != "" && strings.Contains(typeErr.Field, ".") {
			return fmt.Sprintf("expected %s at %s, got %s", typeErr.Type, typeErr.Field, typeErr.Value)
		}
		return fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)
	}
	return strings.TrimPrefix(err.Error(), "json: ")
}

// covered reports whether a decode error was already recorded for path, one
// of its parents or one of its children.
func covered(fields []FieldError, path string) bool {
	for _, f := range fields {
		switch {
		case f.Field == path,
			strings.HasPrefix(path, f.Field+"."), strings.HasPrefix(path, f.Field+"["),
			strings.HasPrefix(f.Field, path+"."), strings.HasPrefix(f.Field, path+"["):
			return true
		}
	}
	return false
}

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

// unknownKeys walks nested objects and arrays under raw and reports every key
// that is not exactly a json field name of t. encoding/json would otherwise
// match nested keys case-insensitively. Shape errors are left to the decoder.
func unknownKeys(raw json.RawMessage, t reflect.Type, path string) []FieldError {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return nil
	}

	var out []FieldError
	switch t.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		allowed := jsonFields(t)
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			idx, ok := allowed[key]
			if !ok {
				out = append(out, FieldError{Field: path + "." + key, Reason: "is not allowed"})
				continue
			}
			out = append(out, unknownKeys(obj[key], t.Field(idx).Type, path+"."+key)...)
		}
	case reflect.Slice, reflect.Array:
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil
		}
		for i, elem := range elems {
			out = append(out, unknownKeys(elem, t.Elem(), fmt.Sprintf("%s[%d]", path, i))...)
		}
	}
	return out
}
