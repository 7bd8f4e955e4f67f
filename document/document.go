// Package document implements the in-memory document tree: an ordered
// sequence of labelled entries whose values may be scalars, lists or nested
// documents.
//
// The zero value of Document is an empty document ready to use. Documents are
// not safe for concurrent mutation; concurrent reads are safe.
package document

import "slices"

// Entry is a labelled value inside a Document.
type Entry struct {
	Label string
	Value Value
}

// Document is an ordered sequence of entries. Labels need not be unique;
// lookups return the first matching entry.
type Document struct {
	entries []Entry
	// labels counts the entries carrying each label.
	labels map[string]int
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// FromEntries returns a document holding entries. The document takes
// ownership of entries and of the values they hold without copying them; the
// caller must not retain or modify either afterwards.
func FromEntries(entries []Entry) *Document {
	d := &Document{entries: entries}
	for i, e := range entries {
		if e.Value == nil {
			d.entries[i].Value = Null{}
		}
		d.track(e.Label)
	}
	return d
}

// Len returns the number of entries.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Get returns the value of the first entry labelled label.
func (d *Document) Get(label string) (Value, bool) {
	i := d.index(label)
	if i < 0 {
		return nil, false
	}
	return d.entries[i].Value, true
}

// GetEntry returns the first entry labelled label.
func (d *Document) GetEntry(label string) (Entry, bool) {
	i := d.index(label)
	if i < 0 {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Has reports whether some entry is labelled label.
func (d *Document) Has(label string) bool {
	if d == nil {
		return false
	}
	return d.labels[label] > 0
}

// Add appends e. A deep copy of e.Value is stored, and a nil value is stored
// as Null. An existing entry with the same label stays authoritative for Get.
func (d *Document) Add(e Entry) {
	d.entries = append(d.entries, Entry{Label: e.Label, Value: own(e.Value)})
	d.track(e.Label)
}

// Set replaces the value of the first entry labelled label. It reports
// whether such an entry existed.
func (d *Document) Set(label string, v Value) bool {
	i := d.index(label)
	if i < 0 {
		return false
	}
	d.entries[i].Value = own(v)
	return true
}

// Remove deletes the first entry labelled label, keeping the order of the
// remaining entries. It reports whether such an entry existed.
func (d *Document) Remove(label string) bool {
	i := d.index(label)
	if i < 0 {
		return false
	}
	d.entries = slices.Delete(d.entries, i, i+1)
	d.untrack(label)
	return true
}

// Rename changes the label of the first entry labelled label to newLabel.
// It reports whether such an entry existed.
func (d *Document) Rename(label, newLabel string) bool {
	i := d.index(label)
	if i < 0 {
		return false
	}
	d.entries[i].Label = newLabel
	d.untrack(label)
	d.track(newLabel)
	return true
}

// Entries returns a deep copy of the entries in order.
func (d *Document) Entries() []Entry {
	if d.Len() == 0 {
		return []Entry{}
	}
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry{Label: e.Label, Value: Clone(e.Value)}
	}
	return out
}

// Labels returns the entry labels in order, including duplicates.
func (d *Document) Labels() []string {
	out := make([]string, 0, d.Len())
	if d == nil {
		return out
	}
	for _, e := range d.entries {
		out = append(out, e.Label)
	}
	return out
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{entries: make([]Entry, len(d.entries))}
	for i, e := range d.entries {
		out.entries[i] = Entry{Label: e.Label, Value: Clone(e.Value)}
		out.track(e.Label)
	}
	return out
}

// Equal reports whether d and other hold structurally equal entries in the
// same order.
func (d *Document) Equal(other *Document) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i := 0; i < d.Len(); i++ {
		a, b := d.entries[i], other.entries[i]
		if a.Label != b.Label || !Equal(a.Value, b.Value) {
			return false
		}
	}
	return true
}

// Range calls fn for each entry in order until fn returns false. The values
// passed to fn are not copies and must not be modified.
func (d *Document) Range(fn func(Entry) bool) {
	if d == nil {
		return
	}
	for _, e := range d.entries {
		if !fn(e) {
			return
		}
	}
}

func (d *Document) index(label string) int {
	if !d.Has(label) {
		return -1
	}
	for i, e := range d.entries {
		if e.Label == label {
			return i
		}
	}
	return -1
}

func (d *Document) track(label string) {
	if d.labels == nil {
		d.labels = make(map[string]int)
	}
	d.labels[label]++
}

func (d *Document) untrack(label string) {
	if d.labels[label] <= 1 {
		delete(d.labels, label)
		return
	}
	d.labels[label]--
}

func own(v Value) Value {
	switch v := v.(type) {
	case nil:
		return Null{}
	case *Document:
		if v == nil {
			return New()
		}
	}
	return Clone(v)
}
