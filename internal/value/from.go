package value

// Lifts from plain Go values into Value.

// Option shape names. A lifted optional is structurally identical to a
// user enum named the same way: Some(x) from a Go pointer and from a
// producer's own `Some` tuple struct compare equal. Callers that need to
// tell them apart must not name their own shapes None or Some.
const (
	NoneName = "None"
	SomeName = "Some"
)

func FromUnit() Value           { return Unit{} }
func FromBool(b bool) Value     { return Bool(b) }
func FromChar(r rune) Value     { return Char(r) }
func FromString(s string) Value { return String(s) }
func FromU8(n uint8) Value      { return U8(n) }
func FromU16(n uint16) Value    { return U16(n) }
func FromU32(n uint32) Value    { return U32(n) }
func FromU64(n uint64) Value    { return U64(n) }
func FromU128(n U128) Value     { return n }
func FromI8(n int8) Value       { return I8(n) }
func FromI16(n int16) Value     { return I16(n) }
func FromI32(n int32) Value     { return I32(n) }
func FromI64(n int64) Value     { return I64(n) }
func FromI128(n I128) Value     { return n }
func FromF32(f float32) Value   { return F32(f) }
func FromF64(f float64) Value   { return F64(f) }

// FromBytes lifts a byte slice into a Seq of U8 elements.
func FromBytes(b []byte) Value {
	seq := make(Seq, len(b))
	for i, c := range b {
		seq[i] = U8(c)
	}
	return seq
}

// None is the lifted form of an absent optional: UnitStruct{"None"}.
func None() Value {
	return UnitStruct{Name: NoneName}
}

// Some is the lifted form of a present optional: TupleStruct{"Some", [v]}.
func Some(v Value) Value {
	return TupleStruct{Name: SomeName, Values: []Value{v}}
}

// FromOption lifts a nil-able pointer using lift for the pointee.
func FromOption[T any](p *T, lift func(T) Value) Value {
	if p == nil {
		return None()
	}
	return Some(lift(*p))
}

// FromSlice lifts a homogeneous slice into a Seq, preserving order.
func FromSlice[T any](xs []T, lift func(T) Value) Value {
	seq := make(Seq, len(xs))
	for i, x := range xs {
		seq[i] = lift(x)
	}
	return seq
}

// SeqOf builds a Seq from already-lifted values.
func SeqOf(vs ...Value) Value {
	return Seq(append([]Value{}, vs...))
}

// TupleOf builds a Tuple from already-lifted values.
func TupleOf(vs ...Value) Value {
	return Tuple(append([]Value{}, vs...))
}
