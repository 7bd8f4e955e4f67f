package document

// GetString returns the first value labelled label if it is a String.
func (d *Document) GetString(label string) (string, bool) {
	v, ok := d.Get(label)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// GetInt returns the first value labelled label if it is an Int.
func (d *Document) GetInt(label string) (uint64, bool) {
	v, ok := d.Get(label)
	if !ok {
		return 0, false
	}
	n, ok := v.(Int)
	return uint64(n), ok
}

// GetFloat returns the first value labelled label if it is a Float.
func (d *Document) GetFloat(label string) (float32, bool) {
	v, ok := d.Get(label)
	if !ok {
		return 0, false
	}
	f, ok := v.(Float)
	return float32(f), ok
}

// GetBool returns the first value labelled label if it is a Bool.
func (d *Document) GetBool(label string) (bool, bool) {
	v, ok := d.Get(label)
	if !ok {
		return false, false
	}
	b, ok := v.(Bool)
	return bool(b), ok
}

// GetList returns the first value labelled label if it is a List. The list
// is not a copy.
func (d *Document) GetList(label string) (List, bool) {
	v, ok := d.Get(label)
	if !ok {
		return nil, false
	}
	l, ok := v.(List)
	return l, ok
}

// GetObject returns the first value labelled label if it is a nested
// document. The document is not a copy; mutating it mutates d.
func (d *Document) GetObject(label string) (*Document, bool) {
	v, ok := d.Get(label)
	if !ok {
		return nil, false
	}
	o, ok := v.(*Document)
	return o, ok
}

// IsNull reports whether the first value labelled label is Null.
func (d *Document) IsNull(label string) bool {
	v, ok := d.Get(label)
	if !ok {
		return false
	}
	_, ok = v.(Null)
	return ok
}
