package parser_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/KimNorgaard/go-jsondoc/errors"
	"github.com/KimNorgaard/go-jsondoc/internal/lexer"
	"github.com/KimNorgaard/go-jsondoc/internal/parser"
	"github.com/KimNorgaard/go-jsondoc/token"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var entries = cmp.Transformer("Entries", func(d *document.Document) []document.Entry {
	return d.Entries()
})

func parse(t *testing.T, input string, opts ...parser.Option) (*document.Document, error) {
	t.Helper()
	toks, err := lexer.Tokenize([]byte(input))
	require.NoError(t, err, "input must tokenize")
	return parser.Parse(toks, opts...)
}

func obj(entries ...document.Entry) *document.Document {
	return document.FromEntries(entries)
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		input    string
		expected document.Value
	}{
		{`{"v":5}`, document.Int(5)},
		{`{"v":true}`, document.Bool(true)},
		{`{"v":false}`, document.Bool(false)},
		{`{"v":1.25}`, document.Float(1.25)},
		{`{"v":"hello world"}`, document.String("hello world")},
		{`{"v":null}`, document.Null{}},
		{`{"v":[]}`, document.List{}},
		{`{"v":{}}`, document.New()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			doc, err := parse(t, tt.input)
			require.NoError(t, err)
			v, ok := doc.Get("v")
			require.True(t, ok)
			require.True(t, document.Equal(tt.expected, v), "got %#v", v)
		})
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := parse(t, `{"a":1,"b":[1,2,3]}`)
	require.NoError(t, err)

	want := obj(
		document.Entry{Label: "a", Value: document.Int(1)},
		document.Entry{Label: "b", Value: document.List{document.Int(1), document.Int(2), document.Int(3)}},
	)
	require.Empty(t, cmp.Diff(want, doc, entries))
}

func TestParseEmptyObject(t *testing.T) {
	doc, err := parse(t, ` { } `)
	require.NoError(t, err)
	require.Equal(t, 0, doc.Len())
}

func TestParseNested(t *testing.T) {
	doc, err := parse(t, `{"n":{"k":true},"l":[[1,[]],{"x":null},"s"]}`)
	require.NoError(t, err)

	n, ok := doc.GetObject("n")
	require.True(t, ok)
	k, ok := n.Get("k")
	require.True(t, ok)
	require.Equal(t, document.Bool(true), k)

	want := obj(
		document.Entry{Label: "n", Value: obj(document.Entry{Label: "k", Value: document.Bool(true)})},
		document.Entry{Label: "l", Value: document.List{
			document.List{document.Int(1), document.List{}},
			obj(document.Entry{Label: "x", Value: document.Null{}}),
			document.String("s"),
		}},
	)
	require.Empty(t, cmp.Diff(want, doc, entries))
}

func TestParseDuplicateLabels(t *testing.T) {
	doc, err := parse(t, `{"a":1,"a":2}`)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "a"}, doc.Labels())
	v, _ := doc.Get("a")
	require.Equal(t, document.Int(1), v)

	require.True(t, doc.Remove("a"))
	require.True(t, doc.Has("a"))
}

func TestParseEscapedString(t *testing.T) {
	doc, err := parse(t, `{"s":"he said \"hi\""}`)
	require.NoError(t, err)
	s, ok := doc.GetString("s")
	require.True(t, ok)
	require.Equal(t, `he said "hi"`, s)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		index   int
	}{
		{"empty input", ``, "expected '{' at start of document, got end of input", 0},
		{"top-level list", `[1]`, "expected '{' at start of document, got '['", 0},
		{"top-level scalar", `1 `, "expected '{' at start of document, got number 1", 0},
		{"missing colon", `{"a" 1}`, `expected ':' after label "a", got number 1`, 2},
		{"non-string label", `{1:2}`, "expected string label, got number 1", 1},
		{"missing value", `{"a":}`, "unexpected '}' in value position", 3},
		{"colon as value", `{"a"::1}`, "unexpected ':' in value position", 3},
		{"trailing comma in object", `{"a":1,}`, "trailing comma before '}'", 5},
		{"double comma in object", `{"a":1,,"b":2}`, "expected string label, got ','", 5},
		{"trailing comma in list", `{"a":[1,2,]}`, "trailing comma before ']'", 8},
		{"double comma in list", `{"a":[1,,2]}`, "unexpected ',' in value position", 6},
		{"leading comma in list", `{"a":[,1]}`, "unexpected ',' in value position", 4},
		{"missing separator", `{"a":1 "b":2}`, `expected ',' or '}' after value, got string "b"`, 4},
		{"missing list separator", `{"a":[1 2]}`, "expected ',' or ']' after list element, got number 2", 5},
		{"mismatched brackets", `{"a":[1}`, "expected ',' or ']' after list element, got '}'", 5},
		{"unclosed object", `{"a":1`+" ", "expected ',' or '}' after value, got end of input", 4},
		{"unclosed nested", `{"a":{"b":true`, "expected ',' or '}' after value, got end of input", 7},
		{"trailing tokens", `{}}`, "unexpected '}' after document", 2},
		{"two documents", `{} {}`, "unexpected '{' after document", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parse(t, tt.input)
			require.Error(t, err)
			require.Nil(t, doc, "a failed parse returns no document")
			require.True(t, stderrors.Is(err, errors.ErrSyntax))

			var parseErr *errors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.message, parseErr.Message)
			require.Equal(t, tt.index, parseErr.Index)
		})
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := parse(t, "{\n  \"a\": [1,\n  2,]\n}")
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 3, parseErr.Line)
	require.Equal(t, 5, parseErr.Column)
}

func TestMaxDepth(t *testing.T) {
	nested := func(n int) string {
		return `{"a":` + strings.Repeat("[", n) + strings.Repeat("]", n) + `}`
	}

	_, err := parse(t, nested(3), parser.MaxDepth(4))
	require.NoError(t, err)

	_, err = parse(t, nested(4), parser.MaxDepth(4))
	require.Error(t, err)
	require.Contains(t, err.Error(), "maximum nesting depth of 4 exceeded")

	_, err = parse(t, nested(parser.DefaultMaxDepth))
	require.Error(t, err)

	_, err = parse(t, nested(parser.DefaultMaxDepth-1), parser.MaxDepth(0))
	require.NoError(t, err, "non-positive depth keeps the default")
}

func TestTokensWithoutEOF(t *testing.T) {
	toks := []token.Token{
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.STRING, Literal: "a"},
		{Type: token.COLON, Literal: ":"},
	}
	_, err := parser.Parse(toks)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected end of input in value position")

	_, err = parser.Parse(nil)
	require.Error(t, err)
}

func TestHandBuiltTokenLiterals(t *testing.T) {
	toks := []token.Token{
		{Type: token.LBRACE, Literal: "{"},
		{Type: token.STRING, Literal: "a"},
		{Type: token.COLON, Literal: ":"},
		{Type: token.INT, Literal: "x"},
		{Type: token.RBRACE, Literal: "}"},
		{Type: token.EOF},
	}
	_, err := parser.Parse(toks)
	require.Error(t, err)
	require.Contains(t, err.Error(), `could not parse "x" as integer`)
}
