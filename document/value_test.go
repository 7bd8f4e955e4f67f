package document_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		value document.Value
		kind  document.Kind
		name  string
	}{
		{document.String("s"), document.StringKind, "string"},
		{document.Int(1), document.IntKind, "integer"},
		{document.Float(1.5), document.FloatKind, "float"},
		{document.Bool(true), document.BoolKind, "boolean"},
		{document.Null{}, document.NullKind, "null"},
		{document.List{}, document.ListKind, "list"},
		{document.New(), document.ObjectKind, "object"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.value.Kind())
			require.Equal(t, tt.name, tt.value.Kind().String())
		})
	}
	require.Equal(t, "unknown", document.Kind(42).String())
}

func TestEqual(t *testing.T) {
	obj := func(label string, v document.Value) *document.Document {
		d := document.New()
		d.Add(document.Entry{Label: label, Value: v})
		return d
	}
	nan := document.Float(float32(math.NaN()))

	tests := []struct {
		name  string
		a, b  document.Value
		equal bool
	}{
		{"same string", document.String("a"), document.String("a"), true},
		{"different string", document.String("a"), document.String("b"), false},
		{"int vs float", document.Int(1), document.Float(1), false},
		{"float", document.Float(0.5), document.Float(0.5), true},
		{"nan", nan, nan, true},
		{"nan vs number", nan, document.Float(1), false},
		{"null", document.Null{}, document.Null{}, true},
		{"bool", document.Bool(true), document.Bool(false), false},
		{"lists", document.List{document.Int(1), document.List{}}, document.List{document.Int(1), document.List{}}, true},
		{"list length", document.List{document.Int(1)}, document.List{}, false},
		{"list vs string", document.List{}, document.String(""), false},
		{"string vs list", document.String(""), document.List{}, false},
		{"objects", obj("k", document.Bool(true)), obj("k", document.Bool(true)), true},
		{"object labels", obj("k", document.Bool(true)), obj("j", document.Bool(true)), false},
		{"object values", obj("k", document.Bool(true)), obj("k", document.Null{}), false},
		{"nil and nil", nil, nil, true},
		{"nil and null", nil, document.Null{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.equal, document.Equal(tt.a, tt.b))
			require.Equal(t, tt.equal, document.Equal(tt.b, tt.a))
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	inner := document.New()
	inner.Add(document.Entry{Label: "k", Value: document.List{document.Int(1)}})
	orig := document.List{inner, document.List{document.String("x")}}

	c := document.Clone(orig).(document.List)
	require.True(t, document.Equal(orig, c))

	c[1].(document.List)[0] = document.String("y")
	c[0].(*document.Document).Set("k", document.Null{})

	require.Equal(t, document.String("x"), orig[1].(document.List)[0])
	l, _ := inner.GetList("k")
	require.Equal(t, document.List{document.Int(1)}, l)

	require.Nil(t, document.Clone(nil))
	require.Equal(t, document.Int(3), document.Clone(document.Int(3)))
}

func TestFloat64(t *testing.T) {
	require.Equal(t, 0.1, document.Float(0.1).Float64())
	require.Equal(t, 32.64, document.Float(32.64).Float64())
	require.Equal(t, 2.0, document.Float(2).Float64())
	require.True(t, math.IsNaN(document.Float(float32(math.NaN())).Float64()))
	require.True(t, math.IsInf(document.Float(float32(math.Inf(1))).Float64(), 1))
}
