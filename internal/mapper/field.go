package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field describes an exported struct field as seen through its jsondoc tag.
type Field struct {
	Name      string
	Index     []int
	OmitEmpty bool
}

// fieldCache maps a struct type to its []Field.
var fieldCache sync.Map

// Fields returns the fields of struct type t in declaration order. It skips
// unexported fields, embedded fields and fields tagged `jsondoc:"-"`. The
// result is cached per type and must not be modified.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	var fields []Field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("jsondoc")
		if tag == "-" {
			continue
		}

		f := Field{Name: sf.Name, Index: sf.Index}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			f.Name = name
		}
		for opts != "" {
			var opt string
			opt, opts, _ = strings.Cut(opts, ",")
			if opt == "omitempty" {
				f.OmitEmpty = true
			}
		}
		fields = append(fields, f)
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]Field)
}

func fieldByName(t reflect.Type, name string) (Field, bool) {
	for _, f := range Fields(t) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
