package parser

import (
	"fmt"
	"strconv"

	"github.com/KimNorgaard/go-jsondoc/document"
	"github.com/KimNorgaard/go-jsondoc/errors"
	"github.com/KimNorgaard/go-jsondoc/token"
)

// DefaultMaxDepth is the nesting depth allowed unless overridden by MaxDepth.
const DefaultMaxDepth = 1000

// Option configures a Parser.
type Option func(*Parser)

// MaxDepth limits how deeply objects and lists may nest. Values below one
// leave the default in place.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Parser builds a document from a token sequence.
type Parser struct {
	tokens   []token.Token
	pos      int
	depth    int
	maxDepth int
}

// New creates a new parser over tokens, as produced by lexer.Tokenize.
func New(tokens []token.Token, opts ...Option) *Parser {
	p := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for New(tokens, opts...).Parse().
func Parse(tokens []token.Token, opts ...Option) (*document.Document, error) {
	return New(tokens, opts...).Parse()
}

// Parse parses a single top-level object followed by the end of input. On
// failure it returns a nil document and a *errors.ParseError.
func (p *Parser) Parse() (*document.Document, error) {
	if !p.curTokenIs(token.LBRACE) {
		return nil, p.errorf("expected '{' at start of document, got %s", p.curToken())
	}
	doc, err := p.parseObject()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.EOF) {
		return nil, p.errorf("unexpected %s after document", p.curToken())
	}
	return doc, nil
}

// The contract for all parse functions is that they are entered with the
// current token being the first token of the construct, and they return with
// the current token being the one *after* the construct.

func (p *Parser) parseObject() (*document.Document, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.nextToken() // Consume '{'

	entries := []document.Entry{}
	if p.curTokenIs(token.RBRACE) {
		p.nextToken()
		return document.FromEntries(entries), nil
	}
	for {
		if !p.curTokenIs(token.STRING) {
			return nil, p.errorf("expected string label, got %s", p.curToken())
		}
		label := p.curToken().Literal
		p.nextToken()

		if !p.curTokenIs(token.COLON) {
			return nil, p.errorf("expected ':' after label %q, got %s", label, p.curToken())
		}
		p.nextToken()

		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, document.Entry{Label: label, Value: value})

		switch p.curToken().Type {
		case token.COMMA:
			p.nextToken()
			if p.curTokenIs(token.RBRACE) {
				return nil, p.errorf("trailing comma before '}'")
			}
		case token.RBRACE:
			p.nextToken()
			return document.FromEntries(entries), nil
		default:
			return nil, p.errorf("expected ',' or '}' after value, got %s", p.curToken())
		}
	}
}

func (p *Parser) parseList() (document.List, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	p.nextToken() // Consume '['

	list := document.List{}
	if p.curTokenIs(token.RBRACK) {
		p.nextToken()
		return list, nil
	}
	for {
		value, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, value)

		switch p.curToken().Type {
		case token.COMMA:
			p.nextToken()
			if p.curTokenIs(token.RBRACK) {
				return nil, p.errorf("trailing comma before ']'")
			}
		case token.RBRACK:
			p.nextToken()
			return list, nil
		default:
			return nil, p.errorf("expected ',' or ']' after list element, got %s", p.curToken())
		}
	}
}

func (p *Parser) parseValue() (document.Value, error) {
	tok := p.curToken()
	switch tok.Type {
	case token.LBRACE:
		return p.parseObject()
	case token.LBRACK:
		return p.parseList()
	case token.STRING:
		p.nextToken()
		return document.String(tok.Literal), nil
	case token.INT:
		n, err := strconv.ParseUint(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("could not parse %q as integer: %s", tok.Literal, err)
		}
		p.nextToken()
		return document.Int(n), nil
	case token.FLOAT:
		f, err := strconv.ParseFloat(tok.Literal, 32)
		if err != nil {
			return nil, p.errorf("could not parse %q as float: %s", tok.Literal, err)
		}
		p.nextToken()
		return document.Float(f), nil
	case token.TRUE, token.FALSE:
		p.nextToken()
		return document.Bool(tok.Type == token.TRUE), nil
	case token.NULL:
		p.nextToken()
		return document.Null{}, nil
	}
	return nil, p.errorf("unexpected %s in value position", tok)
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return p.errorf("maximum nesting depth of %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

// curToken returns the current token, or an EOF token past the end of a
// sequence that lacks one.
func (p *Parser) curToken() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	eof := token.Token{Type: token.EOF}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		eof.Offset = last.Offset + len(last.Literal)
		eof.Line = last.Line
		eof.Column = last.Column + len(last.Literal)
	}
	return eof
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken().Type == t
}

func (p *Parser) errorf(format string, args ...any) error {
	tok := p.curToken()
	return &errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Index:   p.pos,
		Line:    tok.Line,
		Column:  tok.Column,
	}
}
