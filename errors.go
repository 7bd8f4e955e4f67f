package jsondoc

import "github.com/KimNorgaard/go-jsondoc/errors"

type (
	// LexError reports input that cannot be split into tokens.
	LexError = errors.LexError
	// ParseError reports tokens that do not form a document.
	ParseError = errors.ParseError
	// IOError reports a failure to read or write a file.
	IOError = errors.IOError
)

var (
	// ErrSyntax is matched by LexError and ParseError.
	ErrSyntax = errors.ErrSyntax
	// ErrIO is matched by IOError.
	ErrIO = errors.ErrIO
)
