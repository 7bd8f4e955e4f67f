// Package mapper copies document trees into Go values.
package mapper

import (
	"fmt"
	"math"
	"reflect"

	"github.com/KimNorgaard/go-jsondoc/document"
)

var (
	documentType = reflect.TypeFor[*document.Document]()
	valueType    = reflect.TypeFor[document.Value]()
)

// Map walks d and populates the Go value pointed to by v.
//
// Objects map to structs (by jsondoc tag or field name) and to maps with
// string keys. When a label occurs more than once, the first entry wins, as
// it does for Document.Get. Unknown labels are ignored.
func Map(d *document.Document, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("jsondoc: Unmarshal(non-pointer %T or nil)", v)
	}
	return mapValue(d, rv.Elem())
}

func mapValue(v document.Value, rv reflect.Value) error {
	if !rv.CanSet() {
		return fmt.Errorf("jsondoc: cannot set value of type %s", rv.Type())
	}

	switch rv.Type() {
	case valueType:
		rv.Set(reflect.ValueOf(document.Clone(v)))
		return nil
	case documentType:
		switch v := v.(type) {
		case *document.Document:
			rv.Set(reflect.ValueOf(v.Clone()))
			return nil
		case document.Null:
			rv.SetZero()
			return nil
		}
		return typeError(v, rv)
	}

	if _, ok := v.(document.Null); ok {
		rv.SetZero()
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return mapValue(v, rv.Elem())
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return typeError(v, rv)
		}
		rv.Set(reflect.ValueOf(native(v)))
		return nil
	}

	switch v := v.(type) {
	case document.String:
		if rv.Kind() != reflect.String {
			return typeError(v, rv)
		}
		rv.SetString(string(v))
	case document.Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if uint64(v) > math.MaxInt64 || rv.OverflowInt(int64(v)) {
				return fmt.Errorf("jsondoc: integer value %d overflows Go value of type %s", uint64(v), rv.Type())
			}
			rv.SetInt(int64(v))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if rv.OverflowUint(uint64(v)) {
				return fmt.Errorf("jsondoc: integer value %d overflows Go value of type %s", uint64(v), rv.Type())
			}
			rv.SetUint(uint64(v))
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(v))
		default:
			return typeError(v, rv)
		}
	case document.Float:
		switch rv.Kind() {
		case reflect.Float32:
			rv.SetFloat(float64(v))
		case reflect.Float64:
			rv.SetFloat(v.Float64())
		default:
			return typeError(v, rv)
		}
	case document.Bool:
		if rv.Kind() != reflect.Bool {
			return typeError(v, rv)
		}
		rv.SetBool(bool(v))
	case document.List:
		return mapList(v, rv)
	case *document.Document:
		switch rv.Kind() {
		case reflect.Map:
			return mapMap(v, rv)
		case reflect.Struct:
			return mapStruct(v, rv)
		}
		return typeError(v, rv)
	default:
		return fmt.Errorf("jsondoc: cannot map value of type %T", v)
	}
	return nil
}

func mapList(l document.List, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Slice:
		s := reflect.MakeSlice(rv.Type(), len(l), len(l))
		for i, elem := range l {
			if err := mapValue(elem, s.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(s)
		return nil
	case reflect.Array:
		// Extra elements are dropped; missing ones are zeroed.
		for i := 0; i < rv.Len(); i++ {
			if i >= len(l) {
				rv.Index(i).SetZero()
				continue
			}
			if err := mapValue(l[i], rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	}
	return typeError(l, rv)
}

func mapMap(d *document.Document, rv reflect.Value) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("jsondoc: cannot unmarshal object into map with non-string key type %s", mapType.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(mapType, d.Len()))
	} else {
		rv.Clear()
	}

	seen := make(map[string]bool, d.Len())
	var err error
	d.Range(func(e document.Entry) bool {
		if seen[e.Label] {
			return true
		}
		seen[e.Label] = true
		elem := reflect.New(mapType.Elem()).Elem()
		if err = mapValue(e.Value, elem); err != nil {
			return false
		}
		rv.SetMapIndex(reflect.ValueOf(e.Label).Convert(mapType.Key()), elem)
		return true
	})
	return err
}

func mapStruct(d *document.Document, rv reflect.Value) error {
	t := rv.Type()
	seen := make(map[string]bool, d.Len())
	var err error
	d.Range(func(e document.Entry) bool {
		if seen[e.Label] {
			return true
		}
		seen[e.Label] = true
		f, ok := fieldByName(t, e.Label)
		if !ok {
			return true
		}
		if err = mapValue(e.Value, rv.FieldByIndex(f.Index)); err != nil {
			err = fmt.Errorf("%w (field %s.%s)", err, t.Name(), f.Name)
			return false
		}
		return true
	})
	return err
}

// native converts v into the plain Go value stored in an empty interface:
// string, uint64, float64, bool, nil, []any or map[string]any.
func native(v document.Value) any {
	switch v := v.(type) {
	case document.String:
		return string(v)
	case document.Int:
		return uint64(v)
	case document.Float:
		return v.Float64()
	case document.Bool:
		return bool(v)
	case document.List:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = native(elem)
		}
		return out
	case *document.Document:
		out := make(map[string]any, v.Len())
		v.Range(func(e document.Entry) bool {
			if _, ok := out[e.Label]; !ok {
				out[e.Label] = native(e.Value)
			}
			return true
		})
		return out
	}
	return nil
}

func typeError(v document.Value, rv reflect.Value) error {
	return fmt.Errorf("jsondoc: cannot unmarshal %s into Go value of type %s", v.Kind(), rv.Type())
}
