// Package marshaler converts Go values into document trees.
package marshaler

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/KimNorgaard/go-jsondoc/internal/mapper"
)

// Marshal converts a Go value into a document value. Structs and maps with
// string keys become objects; map entries are ordered by key. Values that
// already are document values are deep-copied.
func Marshal(v any) (document.Value, error) {
	m := &marshaler{path: make(map[visit]struct{})}
	return m.marshal(reflect.ValueOf(v))
}

// visit identifies a pointer, map or slice by the memory it refers to.
type visit struct {
	ptr uintptr
	len int
	typ reflect.Type
}

type marshaler struct {
	// path holds the references currently being converted.
	path map[visit]struct{}
}

// enter records v on the current path. It fails if v is already on it.
func (m *marshaler) enter(v reflect.Value) (visit, error) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		key.len = v.Len()
	}
	if _, ok := m.path[key]; ok {
		return key, fmt.Errorf("jsondoc: encountered a cycle via %s", v.Type())
	}
	m.path[key] = struct{}{}
	return key, nil
}

// isEmptyValue reports whether the value v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func (m *marshaler) marshal(v reflect.Value) (document.Value, error) {
	// Follow pointers and interfaces to find the concrete value.
	var entered []visit
	defer func() {
		for _, key := range entered {
			delete(m.path, key)
		}
	}()
	for {
		if !v.IsValid() {
			return document.Null{}, nil
		}
		if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
			return document.Null{}, nil
		}
		if v.CanInterface() {
			if dv, ok := v.Interface().(document.Value); ok {
				return document.Clone(dv), nil
			}
		}
		if v.Kind() != reflect.Pointer && v.Kind() != reflect.Interface {
			break
		}
		if v.Kind() == reflect.Pointer {
			key, err := m.enter(v)
			if err != nil {
				return nil, err
			}
			entered = append(entered, key)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return document.String(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		if n < 0 {
			return nil, fmt.Errorf("jsondoc: cannot marshal negative integer %d", n)
		}
		return document.Int(uint64(n)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return document.Int(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		switch {
		case math.IsNaN(f) || math.IsInf(f, 0):
			return nil, fmt.Errorf("jsondoc: unsupported float value %v", f)
		case f < 0 || math.Signbit(f):
			return nil, fmt.Errorf("jsondoc: cannot marshal negative float %v", f)
		case f > math.MaxFloat32:
			return nil, fmt.Errorf("jsondoc: float value %g overflows float32", f)
		}
		return document.Float(float32(f)), nil
	case reflect.Bool:
		return document.Bool(v.Bool()), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice {
			if v.IsNil() {
				return document.Null{}, nil
			}
			key, err := m.enter(v)
			if err != nil {
				return nil, err
			}
			entered = append(entered, key)
		}
		list := make(document.List, v.Len())
		for i := range v.Len() {
			elem, err := m.marshal(v.Index(i))
			if err != nil {
				return nil, err
			}
			list[i] = elem
		}
		return list, nil
	case reflect.Map:
		if v.IsNil() {
			return document.Null{}, nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("jsondoc: map key type must be a string, got %s", v.Type().Key())
		}
		key, err := m.enter(v)
		if err != nil {
			return nil, err
		}
		entered = append(entered, key)
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		entries := make([]document.Entry, 0, len(keys))
		for _, key := range keys {
			val, err := m.marshal(v.MapIndex(key))
			if err != nil {
				return nil, err
			}
			entries = append(entries, document.Entry{Label: key.String(), Value: val})
		}
		return document.FromEntries(entries), nil
	case reflect.Struct:
		fields := mapper.Fields(v.Type())
		entries := make([]document.Entry, 0, len(fields))
		for _, f := range fields {
			fv := v.FieldByIndex(f.Index)
			if f.OmitEmpty && isEmptyValue(fv) {
				continue
			}
			val, err := m.marshal(fv)
			if err != nil {
				return nil, fmt.Errorf("%w (field %s.%s)", err, v.Type().Name(), f.Name)
			}
			entries = append(entries, document.Entry{Label: f.Name, Value: val})
		}
		return document.FromEntries(entries), nil
	}
	return nil, fmt.Errorf("jsondoc: unsupported type for marshaling: %s", v.Type())
}
