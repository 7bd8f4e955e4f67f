package main

import (
	"testing"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	doc, err := jsondoc.ParseString(`{"name":"svc","port":8080,"tags":["a","b"],"meta":{"stable":true}}`)
	require.NoError(t, err)

	tests := []struct {
		expr     string
		expected string
	}{
		{`name`, `"svc"`},
		{`port > 1024`, `true`},
		{`len(tags)`, `2`},
		{`meta.stable`, `true`},
		{`tags`, `["a","b"]`},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := query(doc, tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err = query(doc, `missing +`)
	require.Error(t, err)
}
