package lexer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-jsondoc/errors"
	"github.com/KimNorgaard/go-jsondoc/token"
)

const (
	eof     rune = -1
	invalid rune = -2 // byte sequence that is not valid UTF-8
)

// numberChars is the set of characters that make up a number literal.
var numberChars = [128]bool{
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'.': true,
}

// Lexer holds the state for tokenizing source text.
type Lexer struct {
	input        []byte
	position     int // offset of ch
	readPosition int // offset after ch
	ch           rune
	line         int
	column       int
	buf          strings.Builder
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.advance()
	return l
}

// Tokenize scans all of input and returns its tokens in source order. The
// returned slice always ends with an EOF token. Scanning stops at the first
// lexical error.
func Tokenize(input []byte) ([]token.Token, error) {
	l := New(input)
	var toks []token.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()
	tok := token.Token{Offset: l.position, Line: l.line, Column: l.column}
	switch l.ch {
	case '{', '}', '[', ']', ',', ':':
		tok.Type = token.Type(l.ch)
		tok.Literal = string(l.ch)
		l.advance()
	case '"':
		lit, err := l.readString()
		if err != nil {
			return tok, err
		}
		tok.Type = token.STRING
		tok.Literal = lit
	case 't', 'f', 'n':
		word, typ, _ := token.LookupKeyword(l.ch)
		if !l.hasPrefix(word) {
			return tok, l.errorf(tok, "invalid literal, expected %q", word)
		}
		for range len(word) {
			l.advance()
		}
		tok.Type = typ
		tok.Literal = word
	case eof:
		tok.Type = token.EOF
	case invalid:
		return tok, l.errorf(tok, "invalid utf-8 encoding")
	default:
		if !isNumberChar(l.ch) {
			return tok, l.errorf(tok, "unexpected character %q", l.ch)
		}
		lit, err := l.readNumber(tok)
		if err != nil {
			return tok, err
		}
		tok.Literal = lit
		tok.Type = token.INT
		if strings.Contains(lit, ".") {
			tok.Type = token.FLOAT
		}
	}
	return tok, nil
}

func (l *Lexer) advance() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.position = l.readPosition
	l.column++
	if l.readPosition >= len(l.input) {
		l.ch = eof
		return
	}
	r, size := utf8.DecodeRune(l.input[l.readPosition:])
	if r == utf8.RuneError && size <= 1 {
		l.ch = invalid
	} else {
		l.ch = r
	}
	l.readPosition += size
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.advance()
	}
}

func (l *Lexer) hasPrefix(word string) bool {
	return bytes.HasPrefix(l.input[l.position:], []byte(word))
}

// readString consumes a quoted string. Only \" and \\ are decoded; any other
// backslash pair is kept as written.
func (l *Lexer) readString() (string, error) {
	start := token.Token{Offset: l.position, Line: l.line, Column: l.column}
	l.advance() // consume opening quote
	l.buf.Reset()
	for {
		switch l.ch {
		case eof:
			return "", l.errorf(start, "unterminated string")
		case invalid:
			return "", l.errorf(l.here(), "invalid utf-8 encoding in string")
		case '"':
			l.advance() // consume closing quote
			return l.buf.String(), nil
		case '\\':
			l.advance()
			switch l.ch {
			case eof:
				return "", l.errorf(start, "unterminated string")
			case invalid:
				return "", l.errorf(l.here(), "invalid utf-8 encoding in string")
			case '"', '\\':
			default:
				l.buf.WriteByte('\\')
			}
		}
		l.buf.WriteRune(l.ch)
		l.advance()
	}
}

// readNumber consumes the longest run of number characters and checks that
// it forms a valid integer or decimal.
func (l *Lexer) readNumber(start token.Token) (string, error) {
	for isNumberChar(l.ch) {
		l.advance()
	}
	lit := string(l.input[start.Offset:l.position])
	if l.ch == eof {
		return "", l.errorf(start, "unterminated number %q", lit)
	}
	if strings.Contains(lit, ".") {
		if _, err := strconv.ParseFloat(lit, 32); err != nil {
			return "", l.errorf(start, "invalid number %q", lit)
		}
		return lit, nil
	}
	if _, err := strconv.ParseUint(lit, 10, 64); err != nil {
		return "", l.errorf(start, "invalid number %q", lit)
	}
	return lit, nil
}

func (l *Lexer) here() token.Token {
	return token.Token{Offset: l.position, Line: l.line, Column: l.column}
}

func (l *Lexer) errorf(at token.Token, format string, args ...any) error {
	return &errors.LexError{
		Message: fmt.Sprintf(format, args...),
		Offset:  at.Offset,
		Line:    at.Line,
		Column:  at.Column,
	}
}

func isNumberChar(ch rune) bool {
	return ch >= 0 && int(ch) < len(numberChars) && numberChars[ch]
}
