package value

import (
	"iter"
	"slices"
	"strings"
)

// Entry is one key/value pair of a Map.
type Entry struct {
	Key   Value
	Value Value
}

// Map is an ordered mapping keyed by Value. Entries are kept sorted by
// Compare on the key, so iteration order is key order, never insertion order.
// The zero Map is empty and ready to use.
type Map struct {
	entries []Entry
}

// NewMap builds a Map from entries in any order. When a key appears more
// than once, the last entry for that key wins.
func NewMap(entries ...Entry) Map {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return Compare(a.Key, b.Key)
	})

	out := sorted[:0]
	for _, e := range sorted {
		if n := len(out); n > 0 && Equal(out[n-1].Key, e.Key) {
			out[n-1] = e
			continue
		}
		out = append(out, e)
	}
	return Map{entries: out}
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.entries) }

// Get looks up key using the total order.
func (m Map) Get(key Value) (Value, bool) {
	i, found := slices.BinarySearchFunc(m.entries, key, func(e Entry, k Value) int {
		return Compare(e.Key, k)
	})
	if !found {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Entries returns a copy of the entries in key order.
func (m Map) Entries() []Entry { return slices.Clone(m.entries) }

// Keys returns the keys in order.
func (m Map) Keys() []Value {
	keys := make([]Value, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the values in key order.
func (m Map) Values() []Value {
	values := make([]Value, len(m.entries))
	for i, e := range m.entries {
		values[i] = e.Value
	}
	return values
}

// All iterates the entries in key order.
func (m Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Field is one named field of a NamedStruct or NamedVariant.
type Field struct {
	Name  string
	Value Value
}

// Fields is an ordered field-name to Value mapping. Fields are sorted
// lexicographically by name (bytewise), regardless of declaration order.
type Fields struct {
	fields []Field
}

// NewFields builds Fields from fields in any order. A repeated name keeps
// the last value.
func NewFields(fields ...Field) Fields {
	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(a, b Field) int {
		return strings.Compare(a.Name, b.Name)
	})

	out := sorted[:0]
	for _, f := range sorted {
		if n := len(out); n > 0 && out[n-1].Name == f.Name {
			out[n-1] = f
			continue
		}
		out = append(out, f)
	}
	return Fields{fields: out}
}

// Len returns the number of fields.
func (f Fields) Len() int { return len(f.fields) }

// Get returns the value of the named field.
func (f Fields) Get(name string) (Value, bool) {
	i, found := slices.BinarySearchFunc(f.fields, name, func(fd Field, n string) int {
		return strings.Compare(fd.Name, n)
	})
	if !found {
		return nil, false
	}
	return f.fields[i].Value, true
}

// Names returns the field names in order.
func (f Fields) Names() []string {
	names := make([]string, len(f.fields))
	for i, fd := range f.fields {
		names[i] = fd.Name
	}
	return names
}

// Entries returns a copy of the fields in name order.
func (f Fields) Entries() []Field { return slices.Clone(f.fields) }

// All iterates the fields in name order.
func (f Fields) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, fd := range f.fields {
			if !yield(fd.Name, fd.Value) {
				return
			}
		}
	}
}
