// Package errors defines the error types returned by jsondoc.
//
// Failures fall into two kinds. Syntax errors (*LexError, *ParseError) report
// malformed input and match ErrSyntax. I/O errors (*IOError) report a failure
// to read or write a file and match ErrIO.
package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrSyntax is matched by every error caused by malformed input.
	ErrSyntax = stderrors.New("jsondoc: syntax error")
	// ErrIO is matched by every error caused by the file system.
	ErrIO = stderrors.New("jsondoc: i/o error")
)

// LexError is returned when the tokenizer cannot turn the input into tokens.
type LexError struct {
	Message string
	Offset  int // byte offset into the input
	Line    int
	Column  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("jsondoc: lexical error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *LexError) Is(target error) bool { return target == ErrSyntax }

// ParseError is returned when the token sequence does not form a document.
type ParseError struct {
	Message string
	Index   int // index of the offending token
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsondoc: parsing error at line %d, column %d (token %d): %s", e.Line, e.Column, e.Index, e.Message)
}

func (e *ParseError) Is(target error) bool { return target == ErrSyntax }

// IOError wraps an error from reading or writing a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("jsondoc: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }
