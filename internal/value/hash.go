package value

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"

	"github.com/cespare/xxhash/v2"
)

// DomainValue prefixes every Digest (domain separation).
// The version suffix leaves room for a future encoding change.
const DomainValue = "shapeval/value/v1"

// Hash returns a 64-bit xxhash of v's canonical encoding.
// Equal(a, b) implies Hash(a) == Hash(b).
func Hash(v Value) uint64 {
	d := xxhash.New()
	writeCanonical(d, v)
	return d.Sum64()
}

// Digest returns the content-addressed identity of v: hex SHA-256 over
// DomainValue, a 0x00 separator and v's canonical encoding.
//
// Digest is stable across processes and releases of the same encoding
// version, so it can name values in logs, caches or fixtures.
func Digest(v Value) string {
	h := sha256.New()
	h.Write([]byte(DomainValue))
	h.Write([]byte{0x00}) // Separator between domain and data
	writeCanonical(h, v)
	return hex.EncodeToString(h.Sum(nil))
}

// writeCanonical streams the canonical encoding of v to w.
//
// The encoding is injective over the total order's equivalence classes:
// every node starts with its Kind byte, numbers add their NumberKind and a
// fixed-width big-endian payload (floats use their canonical Bits), and all
// strings and lists are length-prefixed. Hash writers never fail, so write
// errors are not checked.
func writeCanonical(w io.Writer, v Value) {
	enc := canonicalEncoder{w: w}
	enc.value(v)
}

type canonicalEncoder struct {
	w   io.Writer
	buf [binary.MaxVarintLen64]byte
}

func (e *canonicalEncoder) putByte(b byte) {
	e.buf[0] = b
	e.w.Write(e.buf[:1])
}

func (e *canonicalEncoder) putUvarint(n uint64) {
	k := binary.PutUvarint(e.buf[:], n)
	e.w.Write(e.buf[:k])
}

func (e *canonicalEncoder) putU16(n uint16) {
	binary.BigEndian.PutUint16(e.buf[:], n)
	e.w.Write(e.buf[:2])
}

func (e *canonicalEncoder) putU32(n uint32) {
	binary.BigEndian.PutUint32(e.buf[:], n)
	e.w.Write(e.buf[:4])
}

func (e *canonicalEncoder) putU64(n uint64) {
	binary.BigEndian.PutUint64(e.buf[:], n)
	e.w.Write(e.buf[:8])
}

func (e *canonicalEncoder) putString(s string) {
	e.putUvarint(uint64(len(s)))
	io.WriteString(e.w, s)
}

func (e *canonicalEncoder) values(vs []Value) {
	e.putUvarint(uint64(len(vs)))
	for _, v := range vs {
		e.value(v)
	}
}

func (e *canonicalEncoder) fields(f Fields) {
	e.putUvarint(uint64(len(f.fields)))
	for _, fd := range f.fields {
		e.putString(fd.Name)
		e.value(fd.Value)
	}
}

func (e *canonicalEncoder) value(v Value) {
	e.putByte(byte(v.Kind()))

	switch x := v.(type) {
	case Unit:
	case Bool:
		if x {
			e.putByte(1)
		} else {
			e.putByte(0)
		}
	case Char:
		e.putU32(uint32(x))
	case Number:
		e.number(x)
	case String:
		e.putString(string(x))
	case Seq:
		e.values(x)
	case Map:
		e.putUvarint(uint64(len(x.entries)))
		for _, entry := range x.entries {
			e.value(entry.Key)
			e.value(entry.Value)
		}
	case Tuple:
		e.values(x)
	case UnitStruct:
		e.putString(x.Name)
	case TupleStruct:
		e.putString(x.Name)
		e.values(x.Values)
	case NamedStruct:
		e.putString(x.Name)
		e.fields(x.Fields)
	case UnitVariant:
		e.putString(x.Name)
		e.putString(x.Variant)
	case TupleVariant:
		e.putString(x.Name)
		e.putString(x.Variant)
		e.values(x.Values)
	case NamedVariant:
		e.putString(x.Name)
		e.putString(x.Variant)
		e.fields(x.Fields)
	default:
		panic(unknownValue(v))
	}
}

func (e *canonicalEncoder) number(n Number) {
	e.putByte(byte(n.NumberKind()))

	switch x := n.(type) {
	case U8:
		e.putByte(byte(x))
	case U16:
		e.putU16(uint16(x))
	case U32:
		e.putU32(uint32(x))
	case U64:
		e.putU64(uint64(x))
	case U128:
		e.putU64(x.Hi)
		e.putU64(x.Lo)
	case I8:
		e.putByte(byte(x))
	case I16:
		e.putU16(uint16(x))
	case I32:
		e.putU32(uint32(x))
	case I64:
		e.putU64(uint64(x))
	case I128:
		e.putU64(uint64(x.Hi))
		e.putU64(x.Lo)
	case F32:
		e.putU32(x.Bits())
	case F64:
		e.putU64(x.Bits())
	}
}
