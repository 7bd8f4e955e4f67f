package marshaler_test

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/KimNorgaard/go-jsondoc/internal/marshaler"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected document.Value
	}{
		{"Nil", nil, document.Null{}},
		{"String", "hello", document.String("hello")},
		{"Integer", 123, document.Int(123)},
		{"Uint64", uint64(math.MaxUint64), document.Int(math.MaxUint64)},
		{"Float", 3.5, document.Float(3.5)},
		{"Boolean", true, document.Bool(true)},
		{"Nil pointer", (*int)(nil), document.Null{}},
		{"Nil slice", []int(nil), document.Null{}},
		{"Nil map", map[string]int(nil), document.Null{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := marshaler.Marshal(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, v)
		})
	}
}

func TestMarshal_SlicesAndArrays(t *testing.T) {
	v, err := marshaler.Marshal([]int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, document.List{document.Int(1), document.Int(2), document.Int(3)}, v)

	v, err = marshaler.Marshal([2]string{"a", "b"})
	require.NoError(t, err)
	require.Equal(t, document.List{document.String("a"), document.String("b")}, v)

	v, err = marshaler.Marshal([]any{})
	require.NoError(t, err)
	require.Equal(t, document.List{}, v)
}

func TestMarshal_Map(t *testing.T) {
	v, err := marshaler.Marshal(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	d, ok := v.(*document.Document)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, d.Labels())

	_, err = marshaler.Marshal(map[int]int{1: 1})
	require.EqualError(t, err, "jsondoc: map key type must be a string, got int")
}

func TestMarshal_Struct(t *testing.T) {
	type Inner struct {
		On bool `jsondoc:"on"`
	}
	type Outer struct {
		Name   string  `jsondoc:"name"`
		Inner  *Inner  `jsondoc:"inner"`
		Empty  string  `jsondoc:"empty,omitempty"`
		Zero   int     `jsondoc:"zero"`
		Nested []Inner `jsondoc:"nested,omitempty"`
		Skip   int     `jsondoc:"-"`
		Plain  float32
		hidden int
	}

	v, err := marshaler.Marshal(&Outer{Name: "x", Inner: &Inner{On: true}, Plain: 0.5, Skip: 1, hidden: 2})
	require.NoError(t, err)

	expected := document.FromEntries([]document.Entry{
		{Label: "name", Value: document.String("x")},
		{Label: "inner", Value: document.FromEntries([]document.Entry{{Label: "on", Value: document.Bool(true)}})},
		{Label: "zero", Value: document.Int(0)},
		{Label: "Plain", Value: document.Float(0.5)},
	})
	d, ok := v.(*document.Document)
	require.True(t, ok)
	require.True(t, expected.Equal(d), "got %v", d.Labels())
}

func TestMarshal_DocumentValues(t *testing.T) {
	src := document.New()
	src.Add(document.Entry{Label: "k", Value: document.List{document.Int(1)}})

	v, err := marshaler.Marshal(struct{ D *document.Document }{D: src})
	require.NoError(t, err)
	got, _ := v.(*document.Document).GetObject("D")
	require.True(t, src.Equal(got))

	src.Set("k", document.Null{})
	require.False(t, src.Equal(got), "marshaled documents are copies")
}

func TestMarshal_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		err   string
	}{
		{"negative int", -1, "jsondoc: cannot marshal negative integer -1"},
		{"negative float", -0.5, "jsondoc: cannot marshal negative float -0.5"},
		{"negative zero", math.Copysign(0, -1), "jsondoc: cannot marshal negative float -0"},
		{"NaN", math.NaN(), "jsondoc: unsupported float value NaN"},
		{"float32 overflow", 1e300, "jsondoc: float value 1e+300 overflows float32"},
		{"channel", make(chan int), "jsondoc: unsupported type for marshaling: chan int"},
		{"struct field", struct{ N int }{N: -2}, "jsondoc: cannot marshal negative integer -2 (field .N)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := marshaler.Marshal(tt.input)
			require.EqualError(t, err, tt.err)
		})
	}
}
