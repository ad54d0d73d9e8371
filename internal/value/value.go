package value

import "fmt"

// Kind identifies a Value variant. The declaration order is the
// cross-variant sort order used by Compare.
type Kind uint8

const (
	KindUnit Kind = iota
	KindBool
	KindChar
	KindNumber
	KindString
	KindSeq
	KindMap
	KindTuple
	KindUnitStruct
	KindTupleStruct
	KindNamedStruct
	KindUnitVariant
	KindTupleVariant
	KindNamedVariant
)

var kindNames = [...]string{
	KindUnit:         "unit",
	KindBool:         "bool",
	KindChar:         "char",
	KindNumber:       "number",
	KindString:       "string",
	KindSeq:          "seq",
	KindMap:          "map",
	KindTuple:        "tuple",
	KindUnitStruct:   "unit_struct",
	KindTupleStruct:  "tuple_struct",
	KindNamedStruct:  "named_struct",
	KindUnitVariant:  "unit_variant",
	KindTupleVariant: "tuple_variant",
	KindNamedVariant: "named_variant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a sealed interface over the fourteen value variants.
// Only the types in this package implement it.
//
// String renders the canonical debug form (see Typed for the variant that
// keeps numeric widths visible).
type Value interface {
	Kind() Kind
	String() string
	value() // Sealed
}

// Unit is the empty value "()".
type Unit struct{}

// Bool is a boolean value.
type Bool bool

// Char is a single Unicode scalar value.
type Char rune

// String is a UTF-8 string value.
type String string

// Seq is an ordered, variable-length sequence. Element order is preserved.
type Seq []Value

// Tuple is an ordered, fixed-arity sequence.
type Tuple []Value

// UnitStruct is a struct with no fields, e.g. `struct Marker;`.
type UnitStruct struct {
	Name string
}

// TupleStruct is a struct with positional fields, e.g. `Meters(3)`.
type TupleStruct struct {
	Name   string
	Values []Value
}

// NamedStruct is a struct with named fields. Fields are ordered by name.
type NamedStruct struct {
	Name   string
	Fields Fields
}

// UnitVariant is an enum variant with no payload, e.g. `Color::Red`.
type UnitVariant struct {
	Name    string
	Variant string
}

// TupleVariant is an enum variant with positional payload.
type TupleVariant struct {
	Name    string
	Variant string
	Values  []Value
}

// NamedVariant is an enum variant with named fields. Fields are ordered by name.
type NamedVariant struct {
	Name    string
	Variant string
	Fields  Fields
}

func (Unit) value()         {}
func (Bool) value()         {}
func (Char) value()         {}
func (U8) value()           {}
func (U16) value()          {}
func (U32) value()          {}
func (U64) value()          {}
func (U128) value()         {}
func (I8) value()           {}
func (I16) value()          {}
func (I32) value()          {}
func (I64) value()          {}
func (I128) value()         {}
func (F32) value()          {}
func (F64) value()          {}
func (String) value()       {}
func (Seq) value()          {}
func (Map) value()          {}
func (Tuple) value()        {}
func (UnitStruct) value()   {}
func (TupleStruct) value()  {}
func (NamedStruct) value()  {}
func (UnitVariant) value()  {}
func (TupleVariant) value() {}
func (NamedVariant) value() {}

func (Unit) Kind() Kind         { return KindUnit }
func (Bool) Kind() Kind         { return KindBool }
func (Char) Kind() Kind         { return KindChar }
func (U8) Kind() Kind           { return KindNumber }
func (U16) Kind() Kind          { return KindNumber }
func (U32) Kind() Kind          { return KindNumber }
func (U64) Kind() Kind          { return KindNumber }
func (U128) Kind() Kind         { return KindNumber }
func (I8) Kind() Kind           { return KindNumber }
func (I16) Kind() Kind          { return KindNumber }
func (I32) Kind() Kind          { return KindNumber }
func (I64) Kind() Kind          { return KindNumber }
func (I128) Kind() Kind         { return KindNumber }
func (F32) Kind() Kind          { return KindNumber }
func (F64) Kind() Kind          { return KindNumber }
func (String) Kind() Kind       { return KindString }
func (Seq) Kind() Kind          { return KindSeq }
func (Map) Kind() Kind          { return KindMap }
func (Tuple) Kind() Kind        { return KindTuple }
func (UnitStruct) Kind() Kind   { return KindUnitStruct }
func (TupleStruct) Kind() Kind  { return KindTupleStruct }
func (NamedStruct) Kind() Kind  { return KindNamedStruct }
func (UnitVariant) Kind() Kind  { return KindUnitVariant }
func (TupleVariant) Kind() Kind { return KindTupleVariant }
func (NamedVariant) Kind() Kind { return KindNamedVariant }

// unknownValue builds the panic message for a Value outside the sealed set.
// Reaching it means a type embedded the interface to get past the seal.
func unknownValue(v Value) string {
	return fmt.Sprintf("value: unknown Value type %T", v)
}
