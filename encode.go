package jsondoc

import (
	"io"

	"github.com/KimNorgaard/go-jsondoc/internal/formatter"
)

// Encoder writes documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the text form of d to the stream. The only errors are
// invalid options and failures of the underlying writer.
func (e *Encoder) Encode(d *Document) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent).Format(d)
}
