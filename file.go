package jsondoc

import (
	"os"

	"github.com/KimNorgaard/go-jsondoc/errors"
)

// ReadFile reads the file at path and parses it as a document. A failure to
// read the file is reported as an *IOError; malformed content as a
// *LexError or *ParseError.
func ReadFile(path string, opts ...Option) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.IOError{Op: "read", Path: path, Err: err}
	}
	return Parse(data, opts...)
}

// WriteFile renders d and writes it to the file at path, creating or
// truncating it. Options select the rendering, as for Format.
func WriteFile(path string, d *Document, opts ...Option) error {
	data, err := Format(d, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
