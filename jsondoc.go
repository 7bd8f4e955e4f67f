package jsondoc

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/KimNorgaard/go-jsondoc/internal/formatter"
	"github.com/KimNorgaard/go-jsondoc/internal/lexer"
	"github.com/KimNorgaard/go-jsondoc/internal/parser"
	"github.com/KimNorgaard/go-jsondoc/token"
)

type (
	// Document is an ordered sequence of labelled entries.
	Document = document.Document
	// Entry is a labelled value inside a Document.
	Entry = document.Entry
	// Value is one of the document.Value variants.
	Value = document.Value
)

// New returns an empty document.
func New() *Document {
	return document.New()
}

// Tokenize splits data into tokens. The result always ends with an EOF
// token. It fails with a *LexError on malformed input.
func Tokenize(data []byte) ([]token.Token, error) {
	return lexer.Tokenize(data)
}

// Parse builds a document from data, which must hold exactly one object.
// It fails with a *LexError or *ParseError and returns no document in that
// case.
func Parse(data []byte, opts ...Option) (*Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	toks, err := lexer.Tokenize(data)
	if err != nil {
		return nil, err
	}
	return parser.Parse(toks, parser.MaxDepth(o.maxDepth))
}

// ParseString is like Parse but takes a string.
func ParseString(s string, opts ...Option) (*Document, error) {
	return Parse([]byte(s), opts...)
}

// Render returns the compact text form of d, for example
// {"a":1,"b":[true,null]}. A nil document renders as {}.
func Render(d *Document) string {
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = formatter.New(&sb, 0).Format(d)
	return sb.String()
}

// RenderValue returns the compact text form of a single value.
func RenderValue(v Value) string {
	var sb strings.Builder
	_ = formatter.New(&sb, 0).FormatValue(v)
	return sb.String()
}

// Format returns the text form of d. It is compact unless the Indent option
// is given.
func Format(d *Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
