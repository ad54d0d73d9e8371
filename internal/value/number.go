package value

// NumberKind identifies the width and signedness of a Number.
// The declaration order is the cross-kind sort order.
type NumberKind uint8

const (
	KindU8 NumberKind = iota
	KindU16
	KindU32
	KindU64
	KindU128
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindF32
	KindF64
)

var numberKindNames = [...]string{
	KindU8:   "u8",
	KindU16:  "u16",
	KindU32:  "u32",
	KindU64:  "u64",
	KindU128: "u128",
	KindI8:   "i8",
	KindI16:  "i16",
	KindI32:  "i32",
	KindI64:  "i64",
	KindI128: "i128",
	KindF32:  "f32",
	KindF64:  "f64",
}

// String returns the Rust-style type suffix ("u8", "i128", "f64").
func (k NumberKind) String() string {
	if int(k) < len(numberKindNames) {
		return numberKindNames[k]
	}
	return "unknown"
}

// IsFloat reports whether k is F32 or F64.
func (k NumberKind) IsFloat() bool { return k == KindF32 || k == KindF64 }

// IsSigned reports whether k can hold negative values.
func (k NumberKind) IsSigned() bool { return k >= KindI8 }

// Number is the sealed set of numeric payloads: U8, U16, U32, U64, U128,
// I8, I16, I32, I64, I128, F32 and F64. Every Number is also a Value.
//
// Width is never promoted. Two Numbers of different kinds are never equal,
// and across kinds they order by NumberKind, not numerically.
type Number interface {
	Value
	NumberKind() NumberKind
	number()
}

type (
	U8  uint8
	U16 uint16
	U32 uint32
	U64 uint64
	I8  int8
	I16 int16
	I32 int32
	I64 int64
)

func (U8) number()   {}
func (U16) number()  {}
func (U32) number()  {}
func (U64) number()  {}
func (U128) number() {}
func (I8) number()   {}
func (I16) number()  {}
func (I32) number()  {}
func (I64) number()  {}
func (I128) number() {}
func (F32) number()  {}
func (F64) number()  {}

func (U8) NumberKind() NumberKind   { return KindU8 }
func (U16) NumberKind() NumberKind  { return KindU16 }
func (U32) NumberKind() NumberKind  { return KindU32 }
func (U64) NumberKind() NumberKind  { return KindU64 }
func (U128) NumberKind() NumberKind { return KindU128 }
func (I8) NumberKind() NumberKind   { return KindI8 }
func (I16) NumberKind() NumberKind  { return KindI16 }
func (I32) NumberKind() NumberKind  { return KindI32 }
func (I64) NumberKind() NumberKind  { return KindI64 }
func (I128) NumberKind() NumberKind { return KindI128 }
func (F32) NumberKind() NumberKind  { return KindF32 }
func (F64) NumberKind() NumberKind  { return KindF64 }

// compareNumbers orders by kind first, then numerically within a kind.
func compareNumbers(a, b Number) int {
	ka, kb := a.NumberKind(), b.NumberKind()
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case U8:
		return compareOrdered(x, b.(U8))
	case U16:
		return compareOrdered(x, b.(U16))
	case U32:
		return compareOrdered(x, b.(U32))
	case U64:
		return compareOrdered(x, b.(U64))
	case U128:
		return x.Cmp(b.(U128))
	case I8:
		return compareOrdered(x, b.(I8))
	case I16:
		return compareOrdered(x, b.(I16))
	case I32:
		return compareOrdered(x, b.(I32))
	case I64:
		return compareOrdered(x, b.(I64))
	case I128:
		return x.Cmp(b.(I128))
	case F32:
		return x.Cmp(b.(F32))
	case F64:
		return x.Cmp(b.(F64))
	}
	panic(unknownValue(a))
}
