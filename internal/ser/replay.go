package ser

import "github.com/roach88/shapeval/internal/value"

// valueShape replays an existing tree through a Serializer. Converting it
// with a Converter returns a tree Equal to the original.
type valueShape struct {
	v value.Value
}

func replay(vs []value.Value) []Serialize {
	out := make([]Serialize, len(vs))
	for i, v := range vs {
		out[i] = valueShape{v}
	}
	return out
}

func (vs valueShape) Serialize(s Serializer) (value.Value, error) {
	switch x := vs.v.(type) {
	case value.Unit:
		return s.SerializeUnit()
	case value.Bool:
		return s.SerializeBool(bool(x))
	case value.Char:
		return s.SerializeChar(rune(x))
	case value.U8:
		return s.SerializeU8(uint8(x))
	case value.U16:
		return s.SerializeU16(uint16(x))
	case value.U32:
		return s.SerializeU32(uint32(x))
	case value.U64:
		return s.SerializeU64(uint64(x))
	case value.U128:
		return s.SerializeU128(x)
	case value.I8:
		return s.SerializeI8(int8(x))
	case value.I16:
		return s.SerializeI16(int16(x))
	case value.I32:
		return s.SerializeI32(int32(x))
	case value.I64:
		return s.SerializeI64(int64(x))
	case value.I128:
		return s.SerializeI128(x)
	case value.F32:
		return s.SerializeF32(float32(x))
	case value.F64:
		return s.SerializeF64(float64(x))
	case value.String:
		return s.SerializeStr(string(x))
	case value.Seq:
		b, err := s.SerializeSeq(len(x))
		if err != nil {
			return nil, err
		}
		for _, e := range replay(x) {
			if err := b.SerializeElement(e); err != nil {
				return nil, err
			}
		}
		return b.End()
	case value.Tuple:
		b, err := s.SerializeTuple(len(x))
		if err != nil {
			return nil, err
		}
		for _, e := range replay(x) {
			if err := b.SerializeElement(e); err != nil {
				return nil, err
			}
		}
		return b.End()
	case value.Map:
		b, err := s.SerializeMap(x.Len())
		if err != nil {
			return nil, err
		}
		for k, v := range x.All() {
			if err := b.SerializeEntry(valueShape{k}, valueShape{v}); err != nil {
				return nil, err
			}
		}
		return b.End()
	case value.UnitStruct:
		return s.SerializeUnitStruct(x.Name)
	case value.TupleStruct:
		b, err := s.SerializeTupleStruct(x.Name, len(x.Values))
		if err != nil {
			return nil, err
		}
		for _, e := range replay(x.Values) {
			if err := b.SerializeField(e); err != nil {
				return nil, err
			}
		}
		return b.End()
	case value.NamedStruct:
		b, err := s.SerializeStruct(x.Name, x.Fields.Len())
		if err != nil {
			return nil, err
		}
		for name, v := range x.Fields.All() {
			if err := b.SerializeField(name, valueShape{v}); err != nil {
				return nil, err
			}
		}
		return b.End()
	case value.UnitVariant:
		return s.SerializeUnitVariant(x.Name, 0, x.Variant)
	case value.TupleVariant:
		b, err := s.SerializeTupleVariant(x.Name, 0, x.Variant, len(x.Values))
		if err != nil {
			return nil, err
		}
		for _, e := range replay(x.Values) {
			if err := b.SerializeField(e); err != nil {
				return nil, err
			}
		}
		return b.End()
	case value.NamedVariant:
		b, err := s.SerializeStructVariant(x.Name, 0, x.Variant, x.Fields.Len())
		if err != nil {
			return nil, err
		}
		for name, v := range x.Fields.All() {
			if err := b.SerializeField(name, valueShape{v}); err != nil {
				return nil, err
			}
		}
		return b.End()
	default:
		return nil, Customf("unsupported value type %T", x)
	}
}
