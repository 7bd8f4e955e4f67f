package token

import "fmt"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Offset  int // byte offset of the first character
	Line    int
	Column  int
}

const (
	EOF Type = "EOF" // End of input

	// Literals
	INT    Type = "INT"    // 12345
	FLOAT  Type = "FLOAT"  // 123.45
	STRING Type = "STRING" // "hello world"

	// Delimiters
	LBRACE Type = "{"
	RBRACE Type = "}"
	LBRACK Type = "["
	RBRACK Type = "]"
	COMMA  Type = ","
	COLON  Type = ":"

	// Keywords
	TRUE  Type = "TRUE"
	FALSE Type = "FALSE"
	NULL  Type = "NULL"
)

var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupKeyword returns the token type of the keyword starting with the
// given character, along with its full spelling. The second result is false
// if no keyword starts with ch.
func LookupKeyword(ch rune) (string, Type, bool) {
	for word, typ := range keywords {
		if rune(word[0]) == ch {
			return word, typ, true
		}
	}
	return "", EOF, false
}

// IsScalar reports whether t is a token that maps directly onto a scalar value.
func (t Type) IsScalar() bool {
	switch t {
	case STRING, INT, FLOAT, TRUE, FALSE, NULL:
		return true
	}
	return false
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case STRING:
		return fmt.Sprintf("string %q", t.Literal)
	case INT, FLOAT:
		return fmt.Sprintf("number %s", t.Literal)
	case TRUE, FALSE, NULL:
		return fmt.Sprintf("literal %s", t.Literal)
	}
	return fmt.Sprintf("'%s'", t.Literal)
}
