package formatter

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-jsondoc/document"
)

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Formatter writes a document tree to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w. With indentSpaces of zero
// the output is compact; otherwise every entry and list element goes on its
// own line, indented by indentSpaces per level.
func New(w io.Writer, indentSpaces int) *Formatter {
	var indentStr string
	if indentSpaces > 0 {
		indentStr = strings.Repeat(" ", indentSpaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes the text form of d.
func (f *Formatter) Format(d *document.Document) error {
	return f.writeValue(d)
}

// FormatValue writes the text form of a single value.
func (f *Formatter) FormatValue(v document.Value) error {
	return f.writeValue(v)
}

// Quote returns s as a quoted string literal. Backslashes and quotes are
// escaped; nothing else is.
func Quote(s string) string {
	return `"` + escaper.Replace(s) + `"`
}

// FormatFloat returns the shortest decimal text that reads back as x. The
// text always contains a '.', so it never reads back as an integer. NaN and
// infinities have no text form and are written as null.
func FormatFloat(x float32) string {
	f := float64(x)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if f == 0 {
		return "0.0"
	}
	s := strconv.FormatFloat(f, 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	return f.write("\n" + strings.Repeat(f.indent, f.depth))
}

func (f *Formatter) writeValue(v document.Value) error {
	switch v := v.(type) {
	case *document.Document:
		if err := f.write("{"); err != nil {
			return err
		}
		if v.Len() > 0 {
			if err := f.writeEntries(v); err != nil {
				return err
			}
		}
		return f.write("}")

	case document.List:
		if err := f.write("["); err != nil {
			return err
		}
		if len(v) > 0 {
			f.depth++
			for i, elem := range v {
				if i > 0 {
					if err := f.write(","); err != nil {
						return err
					}
				}
				if err := f.writeIndent(); err != nil {
					return err
				}
				if err := f.writeValue(elem); err != nil {
					return err
				}
			}
			f.depth--
			if err := f.writeIndent(); err != nil {
				return err
			}
		}
		return f.write("]")

	case document.String:
		return f.write(Quote(string(v)))

	case document.Int:
		return f.write(strconv.FormatUint(uint64(v), 10))

	case document.Float:
		return f.write(FormatFloat(float32(v)))

	case document.Bool:
		return f.write(strconv.FormatBool(bool(v)))

	case document.Null, nil:
		return f.write("null")

	default:
		return fmt.Errorf("jsondoc: unsupported value type for formatting: %T", v)
	}
}

func (f *Formatter) writeEntries(d *document.Document) error {
	sep := ":"
	if f.indent != "" {
		sep = ": "
	}
	f.depth++
	var err error
	first := true
	d.Range(func(e document.Entry) bool {
		if !first {
			if err = f.write(","); err != nil {
				return false
			}
		}
		first = false
		if err = f.writeIndent(); err != nil {
			return false
		}
		if err = f.write(Quote(e.Label) + sep); err != nil {
			return false
		}
		err = f.writeValue(e.Value)
		return err == nil
	})
	if err != nil {
		return err
	}
	f.depth--
	return f.writeIndent()
}
