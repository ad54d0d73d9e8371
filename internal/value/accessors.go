package value

// Classification predicates and typed accessors. Each AsX returns false
// when v holds a different variant; none of them panic.

// IsUnit reports whether v is Unit.
func IsUnit(v Value) bool { return is[Unit](v) }

// IsBool reports whether v is a Bool.
func IsBool(v Value) bool { return is[Bool](v) }

// AsBool returns the boolean held by v.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// IsChar reports whether v is a Char.
func IsChar(v Value) bool { return is[Char](v) }

// AsChar returns the character held by v.
func AsChar(v Value) (rune, bool) {
	c, ok := v.(Char)
	return rune(c), ok
}

// IsNumber reports whether v is any Number kind.
func IsNumber(v Value) bool { return is[Number](v) }

// AsNumber returns v as a Number.
func AsNumber(v Value) (Number, bool) {
	n, ok := v.(Number)
	return n, ok
}

// IsU8 reports whether v is a U8.
func IsU8(v Value) bool { return is[U8](v) }

// AsU8 returns the uint8 held by v. It does not convert from other widths.
func AsU8(v Value) (uint8, bool) { n, ok := v.(U8); return uint8(n), ok }

// IsU16 reports whether v is a U16.
func IsU16(v Value) bool { return is[U16](v) }

// AsU16 returns the uint16 held by v.
func AsU16(v Value) (uint16, bool) { n, ok := v.(U16); return uint16(n), ok }

// IsU32 reports whether v is a U32.
func IsU32(v Value) bool { return is[U32](v) }

// AsU32 returns the uint32 held by v.
func AsU32(v Value) (uint32, bool) { n, ok := v.(U32); return uint32(n), ok }

// IsU64 reports whether v is a U64.
func IsU64(v Value) bool { return is[U64](v) }

// AsU64 returns the uint64 held by v.
func AsU64(v Value) (uint64, bool) { n, ok := v.(U64); return uint64(n), ok }

// IsU128 reports whether v is a U128.
func IsU128(v Value) bool { return is[U128](v) }

// AsU128 returns the U128 held by v.
func AsU128(v Value) (U128, bool) { n, ok := v.(U128); return n, ok }

// IsI8 reports whether v is an I8.
func IsI8(v Value) bool { return is[I8](v) }

// AsI8 returns the int8 held by v.
func AsI8(v Value) (int8, bool) { n, ok := v.(I8); return int8(n), ok }

// IsI16 reports whether v is an I16.
func IsI16(v Value) bool { return is[I16](v) }

// AsI16 returns the int16 held by v.
func AsI16(v Value) (int16, bool) { n, ok := v.(I16); return int16(n), ok }

// IsI32 reports whether v is an I32.
func IsI32(v Value) bool { return is[I32](v) }

// AsI32 returns the int32 held by v.
func AsI32(v Value) (int32, bool) { n, ok := v.(I32); return int32(n), ok }

// IsI64 reports whether v is an I64.
func IsI64(v Value) bool { return is[I64](v) }

// AsI64 returns the int64 held by v.
func AsI64(v Value) (int64, bool) { n, ok := v.(I64); return int64(n), ok }

// IsI128 reports whether v is an I128.
func IsI128(v Value) bool { return is[I128](v) }

// AsI128 returns the I128 held by v.
func AsI128(v Value) (I128, bool) { n, ok := v.(I128); return n, ok }

// IsF32 reports whether v is an F32.
func IsF32(v Value) bool { return is[F32](v) }

// AsF32 returns the float32 held by v.
func AsF32(v Value) (float32, bool) { n, ok := v.(F32); return float32(n), ok }

// IsF64 reports whether v is an F64.
func IsF64(v Value) bool { return is[F64](v) }

// AsF64 returns the float64 held by v.
func AsF64(v Value) (float64, bool) { n, ok := v.(F64); return float64(n), ok }

// IsString reports whether v is a String.
func IsString(v Value) bool { return is[String](v) }

// AsString returns the string held by v.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// IsSeq reports whether v is a Seq.
func IsSeq(v Value) bool { return is[Seq](v) }

// AsSeq borrows the elements of a Seq. Callers must not modify them.
func AsSeq(v Value) ([]Value, bool) {
	s, ok := v.(Seq)
	return s, ok
}

// IsMap reports whether v is a Map.
func IsMap(v Value) bool { return is[Map](v) }

// AsMap returns the Map held by v.
func AsMap(v Value) (Map, bool) {
	m, ok := v.(Map)
	return m, ok
}

// IsTuple reports whether v is a Tuple.
func IsTuple(v Value) bool { return is[Tuple](v) }

// AsTuple borrows the elements of a Tuple. Callers must not modify them.
func AsTuple(v Value) ([]Value, bool) {
	t, ok := v.(Tuple)
	return t, ok
}

// IsUnitStruct reports whether v is a UnitStruct.
func IsUnitStruct(v Value) bool { return is[UnitStruct](v) }

// AsUnitStruct returns the UnitStruct held by v.
func AsUnitStruct(v Value) (UnitStruct, bool) { return as[UnitStruct](v) }

// IsTupleStruct reports whether v is a TupleStruct.
func IsTupleStruct(v Value) bool { return is[TupleStruct](v) }

// AsTupleStruct returns the TupleStruct held by v.
func AsTupleStruct(v Value) (TupleStruct, bool) { return as[TupleStruct](v) }

// IsNamedStruct reports whether v is a NamedStruct.
func IsNamedStruct(v Value) bool { return is[NamedStruct](v) }

// AsNamedStruct returns the NamedStruct held by v.
func AsNamedStruct(v Value) (NamedStruct, bool) { return as[NamedStruct](v) }

// IsUnitVariant reports whether v is a UnitVariant.
func IsUnitVariant(v Value) bool { return is[UnitVariant](v) }

// AsUnitVariant returns the UnitVariant held by v.
func AsUnitVariant(v Value) (UnitVariant, bool) { return as[UnitVariant](v) }

// IsTupleVariant reports whether v is a TupleVariant.
func IsTupleVariant(v Value) bool { return is[TupleVariant](v) }

// AsTupleVariant returns the TupleVariant held by v.
func AsTupleVariant(v Value) (TupleVariant, bool) { return as[TupleVariant](v) }

// IsNamedVariant reports whether v is a NamedVariant.
func IsNamedVariant(v Value) bool { return is[NamedVariant](v) }

// AsNamedVariant returns the NamedVariant held by v.
func AsNamedVariant(v Value) (NamedVariant, bool) { return as[NamedVariant](v) }

func is[T Value](v Value) bool {
	_, ok := v.(T)
	return ok
}

func as[T Value](v Value) (T, bool) {
	t, ok := v.(T)
	return t, ok
}
