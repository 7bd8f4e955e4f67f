package jsondoc

import (
	"fmt"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/KimNorgaard/go-jsondoc/internal/mapper"
	"github.com/KimNorgaard/go-jsondoc/internal/marshaler"
)

// Marshal returns the text form of v. The value must convert to an object:
// a struct, a map with string keys or a *Document.
//
// Struct fields are encoded under the name given by their jsondoc tag, or
// the field name when untagged. The tag option "omitempty" skips empty
// values, and the tag "-" skips the field. Negative numbers, including
// negative zero, are rejected, as are values that refer back to themselves
// through a pointer, map or slice.
func Marshal(v any, opts ...Option) ([]byte, error) {
	val, err := ValueOf(v)
	if err != nil {
		return nil, err
	}
	d, ok := val.(*document.Document)
	if !ok {
		return nil, fmt.Errorf("jsondoc: cannot marshal %T as a document: it converts to %s", v, val.Kind())
	}
	return Format(d, opts...)
}

// Unmarshal parses data and stores the document in the value pointed to by
// v, which may be a struct, a map with string keys, a *Document or an empty
// interface. Syntax errors are returned as from Parse.
func Unmarshal(data []byte, v any, opts ...Option) error {
	d, err := Parse(data, opts...)
	if err != nil {
		return err
	}
	return Bind(d, v)
}

// ValueOf converts a Go value into a document value under the rules of
// Marshal, without requiring the result to be an object.
func ValueOf(v any) (Value, error) {
	return marshaler.Marshal(v)
}

// Bind stores the contents of d in the value pointed to by v under the rules
// of Unmarshal.
func Bind(d *Document, v any) error {
	return mapper.Map(d, v)
}
