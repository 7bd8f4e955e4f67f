package jsondoc

import (
	"fmt"

	"github.com/KimNorgaard/go-jsondoc/internal/parser"
)

// Option configures parsing and rendering.
type Option func(*options) error

type options struct {
	maxDepth int
	indent   int
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that sets the maximum nesting depth of objects
// and lists accepted by the parser. This helps prevent stack exhaustion on
// deeply nested input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("jsondoc: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an Option that renders one entry or list element per line,
// indented by n spaces per nesting level. Indent(0) selects the compact form,
// which is the default.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("jsondoc: indent spaces cannot be negative")
		}
		o.indent = n
		return nil
	}
}
