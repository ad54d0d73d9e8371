package value

import (
	"cmp"
	"strings"
)

// Compare returns -1, 0 or +1 ordering a and b under the total order.
//
// Variants order by Kind first (Unit < Bool < ... < NamedVariant). Within a
// variant, comparison is recursive and field-wise: names before payloads,
// sequences lexicographically with shorter first, maps entry by entry.
func Compare(a, b Value) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}

	switch x := a.(type) {
	case Unit:
		return 0
	case Bool:
		return compareBool(bool(x), bool(b.(Bool)))
	case Char:
		return compareOrdered(x, b.(Char))
	case Number:
		return compareNumbers(x, b.(Number))
	case String:
		return strings.Compare(string(x), string(b.(String)))
	case Seq:
		return compareValues(x, b.(Seq))
	case Map:
		return compareEntries(x.entries, b.(Map).entries)
	case Tuple:
		return compareValues(x, b.(Tuple))
	case UnitStruct:
		return strings.Compare(x.Name, b.(UnitStruct).Name)
	case TupleStruct:
		y := b.(TupleStruct)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return compareValues(x.Values, y.Values)
	case NamedStruct:
		y := b.(NamedStruct)
		if c := strings.Compare(x.Name, y.Name); c != 0 {
			return c
		}
		return compareFields(x.Fields.fields, y.Fields.fields)
	case UnitVariant:
		y := b.(UnitVariant)
		return compareNames(x.Name, x.Variant, y.Name, y.Variant)
	case TupleVariant:
		y := b.(TupleVariant)
		if c := compareNames(x.Name, x.Variant, y.Name, y.Variant); c != 0 {
			return c
		}
		return compareValues(x.Values, y.Values)
	case NamedVariant:
		y := b.(NamedVariant)
		if c := compareNames(x.Name, x.Variant, y.Name, y.Variant); c != 0 {
			return c
		}
		return compareFields(x.Fields.fields, y.Fields.fields)
	}
	panic(unknownValue(a))
}

// Equal reports whether a and b are equal under the total order.
// Equal values always have the same Hash and Digest.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// Less reports whether a sorts before b. Handy for slices.SortFunc callers
// that want a boolean predicate.
func Less(a, b Value) bool {
	return Compare(a, b) < 0
}

func compareOrdered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func compareNames(name1, variant1, name2, variant2 string) int {
	if c := strings.Compare(name1, name2); c != 0 {
		return c
	}
	return strings.Compare(variant1, variant2)
}

func compareValues(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareEntries(a, b []Entry) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareFields(a, b []Field) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i].Name, b[i].Name); c != 0 {
			return c
		}
		if c := Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
