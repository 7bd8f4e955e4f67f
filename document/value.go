package document

import (
	"math"
	"strconv"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	StringKind Kind = iota
	IntKind
	FloatKind
	BoolKind
	NullKind
	ListKind
	ObjectKind
)

var kindNames = [...]string{
	StringKind: "string",
	IntKind:    "integer",
	FloatKind:  "float",
	BoolKind:   "boolean",
	NullKind:   "null",
	ListKind:   "list",
	ObjectKind: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is one of String, Int, Float, Bool, Null, List or *Document.
// The set of implementations is closed.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	value()
}

// String is a text value.
type String string

// Int is a non-negative integer value.
type Int uint64

// Float is a non-negative decimal value. Negative, NaN and infinite values
// can be stored, but their rendered text does not parse back. Negative zero
// renders as 0.0.
type Float float32

// Float64 returns the float64 with the same shortest decimal form as f, so
// Float(0.1) gives 0.1 rather than 0.10000000149011612.
func (f Float) Float64() float64 {
	x := float64(f)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', -1, 32), 64)
	if err != nil {
		return x
	}
	return y
}

// Bool is a boolean value.
type Bool bool

// Null is the null value.
type Null struct{}

// List is an ordered sequence of values.
type List []Value

func (String) Kind() Kind { return StringKind }
func (Int) Kind() Kind    { return IntKind }
func (Float) Kind() Kind  { return FloatKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Null) Kind() Kind   { return NullKind }
func (List) Kind() Kind   { return ListKind }

// Kind returns ObjectKind. A *Document is the object variant of Value.
func (*Document) Kind() Kind { return ObjectKind }

func (String) value()    {}
func (Int) value()       {}
func (Float) value()     {}
func (Bool) value()      {}
func (Null) value()      {}
func (List) value()      {}
func (*Document) value() {}

// Clone returns a deep copy of v. Lists and nested documents are copied
// recursively; a nil value clones to nil.
func Clone(v Value) Value {
	switch v := v.(type) {
	case List:
		if v == nil {
			return List(nil)
		}
		out := make(List, len(v))
		for i, elem := range v {
			out[i] = Clone(elem)
		}
		return out
	case *Document:
		return v.Clone()
	}
	return v
}

// Equal reports whether a and b are structurally equal. Floats compare by
// value, except that two NaNs are considered equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case String, Int, Bool, Null:
		return a == b
	case Float:
		b, ok := b.(Float)
		if !ok {
			return false
		}
		if math.IsNaN(float64(a)) {
			return math.IsNaN(float64(b))
		}
		return a == b
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case *Document:
		b, ok := b.(*Document)
		return ok && a.Equal(b)
	}
	return false
}
