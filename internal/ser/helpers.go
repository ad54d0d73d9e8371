package ser

import "github.com/roach88/shapeval/internal/value"

// Go cannot tell a rune from an int32 or a []byte from a []uint8 at run
// time, so producers that mean "character" or "byte string" say so with
// these wrappers.

// Char serializes as a character rather than an int32.
type Char rune

func (c Char) Serialize(s Serializer) (value.Value, error) {
	return s.SerializeChar(rune(c))
}

// Bytes serializes through SerializeBytes.
type Bytes []byte

func (b Bytes) Serialize(s Serializer) (value.Value, error) {
	return s.SerializeBytes(b)
}

// Unit serializes as the unit value "()".
type Unit struct{}

func (Unit) Serialize(s Serializer) (value.Value, error) {
	return s.SerializeUnit()
}

// Fail is a producer that always reports msg. Useful in tests and as a
// placeholder for values a producer refuses to describe.
type Fail string

func (f Fail) Serialize(Serializer) (value.Value, error) {
	return nil, Custom(string(f))
}
