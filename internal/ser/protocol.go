package ser

import "github.com/roach88/shapeval/internal/value"

// Serialize is implemented by anything that can describe its own shape.
type Serialize interface {
	Serialize(s Serializer) (value.Value, error)
}

// SerializeFunc adapts an ordinary function to Serialize.
type SerializeFunc func(s Serializer) (value.Value, error)

// Serialize calls f(s).
func (f SerializeFunc) Serialize(s Serializer) (value.Value, error) {
	return f(s)
}

// Serializer receives a producer's description of one value.
//
// Length arguments are capacity hints; -1 means unknown. Variant indexes
// are accepted for protocol compatibility and otherwise ignored: variants
// are identified by name.
type Serializer interface {
	SerializeBool(v bool) (value.Value, error)

	SerializeI8(v int8) (value.Value, error)
	SerializeI16(v int16) (value.Value, error)
	SerializeI32(v int32) (value.Value, error)
	SerializeI64(v int64) (value.Value, error)
	SerializeI128(v value.I128) (value.Value, error)

	SerializeU8(v uint8) (value.Value, error)
	SerializeU16(v uint16) (value.Value, error)
	SerializeU32(v uint32) (value.Value, error)
	SerializeU64(v uint64) (value.Value, error)
	SerializeU128(v value.U128) (value.Value, error)

	SerializeF32(v float32) (value.Value, error)
	SerializeF64(v float64) (value.Value, error)

	SerializeChar(v rune) (value.Value, error)
	SerializeStr(v string) (value.Value, error)
	SerializeBytes(v []byte) (value.Value, error)

	SerializeNone() (value.Value, error)
	SerializeSome(v Serialize) (value.Value, error)
	SerializeUnit() (value.Value, error)

	SerializeUnitStruct(name string) (value.Value, error)
	SerializeUnitVariant(name string, index uint32, variant string) (value.Value, error)
	SerializeNewtypeStruct(name string, v Serialize) (value.Value, error)
	SerializeNewtypeVariant(name string, index uint32, variant string, v Serialize) (value.Value, error)

	SerializeSeq(length int) (SeqBuilder, error)
	SerializeTuple(length int) (TupleBuilder, error)
	SerializeTupleStruct(name string, length int) (TupleStructBuilder, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (TupleVariantBuilder, error)
	SerializeMap(length int) (MapBuilder, error)
	SerializeStruct(name string, length int) (StructBuilder, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (StructVariantBuilder, error)
}

// SeqBuilder accumulates the elements of a sequence in call order.
type SeqBuilder interface {
	SerializeElement(v Serialize) error
	End() (value.Value, error)
}

// TupleBuilder accumulates the elements of a tuple in call order.
type TupleBuilder interface {
	SerializeElement(v Serialize) error
	End() (value.Value, error)
}

// TupleStructBuilder accumulates the positional fields of a tuple struct.
type TupleStructBuilder interface {
	SerializeField(v Serialize) error
	End() (value.Value, error)
}

// TupleVariantBuilder accumulates the positional fields of a tuple variant.
type TupleVariantBuilder interface {
	SerializeField(v Serialize) error
	End() (value.Value, error)
}

// StructBuilder accumulates named fields. The result orders fields by
// name, not by call order.
type StructBuilder interface {
	SerializeField(name string, v Serialize) error
	SkipField(name string) error
	End() (value.Value, error)
}

// StructVariantBuilder accumulates the named fields of a struct variant.
type StructVariantBuilder interface {
	SerializeField(name string, v Serialize) error
	SkipField(name string) error
	End() (value.Value, error)
}

// MapBuilder accumulates key/value pairs. Calls must alternate
// SerializeKey then SerializeValue (or use SerializeEntry). The result
// orders entries by key; a repeated key keeps the last value.
type MapBuilder interface {
	SerializeKey(k Serialize) error
	SerializeValue(v Serialize) error
	SerializeEntry(k, v Serialize) error
	End() (value.Value, error)
}
