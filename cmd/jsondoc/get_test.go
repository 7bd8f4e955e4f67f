package main

import (
	"testing"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	doc, err := jsondoc.ParseString(`{"a":{"b":[1,2],"b":"second"},"n":3}`)
	require.NoError(t, err)

	tests := []struct {
		labels   []string
		expected string
		err      string
	}{
		{labels: []string{"a", "b"}, expected: `[1,2]`},
		{labels: []string{"a"}, expected: `{"b":[1,2],"b":"second"}`},
		{labels: []string{"n"}, expected: `3`},
		{labels: []string{"x"}, err: `label "x" not found`},
		{labels: []string{"n", "x"}, err: `"n" is integer, not an object`},
		{labels: []string{"a", "b", "c"}, err: `"b" is list, not an object`},
	}
	for _, tt := range tests {
		v, err := lookup(doc, tt.labels)
		if tt.err != "" {
			require.EqualError(t, err, tt.err)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.expected, jsondoc.RenderValue(v))
	}
}
