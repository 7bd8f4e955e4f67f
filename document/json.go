package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo writes d as a standard JSON object, keeping entry order.
// Documents with duplicate labels need the jsontext.AllowDuplicateNames
// option to encode.
func (d *Document) MarshalJSONTo(enc *jsontext.Encoder) error {
	return encodeValue(enc, d)
}

// UnmarshalJSONFrom replaces the contents of d with a standard JSON object.
// Negative numbers have no representation in a Document and are rejected.
func (d *Document) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	if k := dec.PeekKind(); k != '{' {
		return fmt.Errorf("jsondoc: cannot unmarshal JSON %v into a document", k)
	}
	v, err := decodeValue(dec)
	if err != nil {
		return err
	}
	*d = *v.(*Document)
	return nil
}

func encodeValue(enc *jsontext.Encoder, v Value) error {
	switch v := v.(type) {
	case String:
		return enc.WriteToken(jsontext.String(string(v)))
	case Int:
		return enc.WriteToken(jsontext.Uint(uint64(v)))
	case Float:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return enc.WriteToken(jsontext.Null)
		}
		// Keep float32 precision instead of widening to float64 digits.
		return enc.WriteValue(jsontext.Value(strconv.FormatFloat(f, 'g', -1, 32)))
	case Bool:
		return enc.WriteToken(jsontext.Bool(bool(v)))
	case Null, nil:
		return enc.WriteToken(jsontext.Null)
	case List:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, elem := range v {
			if err := encodeValue(enc, elem); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case *Document:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		var err error
		v.Range(func(e Entry) bool {
			if err = enc.WriteToken(jsontext.String(e.Label)); err != nil {
				return false
			}
			err = encodeValue(enc, e.Value)
			return err == nil
		})
		if err != nil {
			return err
		}
		return enc.WriteToken(jsontext.EndObject)
	}
	return fmt.Errorf("jsondoc: unsupported value type %T", v)
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case '"':
		return String(tok.String()), nil
	case '0':
		return decodeNumber(tok.String())
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case 'n':
		return Null{}, nil
	case '[':
		list := List{}
		for dec.PeekKind() != ']' {
			elem, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, elem)
		}
		if _, err := dec.ReadToken(); err != nil { // ']'
			return nil, err
		}
		return list, nil
	case '{':
		var entries []Entry
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			v, err := decodeValue(dec)
			if err != nil {
				return nil, fmt.Errorf("jsondoc: read value for label %q: %w", name.String(), err)
			}
			entries = append(entries, Entry{Label: name.String(), Value: v})
		}
		if _, err := dec.ReadToken(); err != nil { // '}'
			return nil, err
		}
		return FromEntries(entries), nil
	}
	return nil, fmt.Errorf("jsondoc: unexpected JSON %v", tok.Kind())
}

func decodeNumber(raw string) (Value, error) {
	if strings.HasPrefix(raw, "-") {
		return nil, fmt.Errorf("jsondoc: negative number %s is not supported", raw)
	}
	if strings.ContainsAny(raw, ".eE") {
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, fmt.Errorf("jsondoc: number %s: %w", raw, err)
		}
		return Float(f), nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("jsondoc: number %s: %w", raw, err)
	}
	return Int(n), nil
}
