package main

import (
	"testing"

	"github.com/KimNorgaard/go-jsondoc"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	doc, err := jsondoc.ParseString(`{"name":"x","n":1,"f":0.1,"l":[true,null],"o":{}}`)
	require.NoError(t, err)

	out, err := convert(doc, "json")
	require.NoError(t, err)
	back := jsondoc.New()
	require.NoError(t, json.Unmarshal(out, back, jsontext.AllowDuplicateNames(true)))
	require.True(t, doc.Equal(back))

	out, err = convert(doc, "yaml")
	require.NoError(t, err)
	require.Contains(t, string(out), "name: x\n")
	require.Contains(t, string(out), "n: 1\n")
	require.Contains(t, string(out), "f: 0.1\n")

	_, err = convert(doc, "toml")
	require.Error(t, err)
}

func TestConvertDuplicateLabelsToYAML(t *testing.T) {
	doc, err := jsondoc.ParseString(`{"a":1,"a":2}`)
	require.NoError(t, err)

	_, err = convert(doc, "yaml")
	require.EqualError(t, err, `label "a" occurs more than once and cannot be written as YAML`)

	out, err := convert(doc, "json")
	require.NoError(t, err)
	require.Contains(t, string(out), `"a": 1`)
	require.Contains(t, string(out), `"a": 2`)
}
