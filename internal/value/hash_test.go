package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigestDeterminism(t *testing.T) {
	v := NamedStruct{Name: "Cart", Fields: NewFields(
		Field{Name: "items", Value: Seq{String("SKU-001")}},
		Field{Name: "count", Value: U32(1)},
	)}

	d1 := Digest(v)
	d2 := Digest(v)

	assert.Equal(t, d1, d2, "Digest must be deterministic")
	assert.Len(t, d1, 64, "SHA-256 hex is 64 characters")
}

func TestDigestIndependentOfFieldOrder(t *testing.T) {
	a := NamedStruct{Name: "P", Fields: NewFields(
		Field{Name: "x", Value: U8(1)},
		Field{Name: "y", Value: U8(2)},
	)}
	b := NamedStruct{Name: "P", Fields: NewFields(
		Field{Name: "y", Value: U8(2)},
		Field{Name: "x", Value: U8(1)},
	)}

	assert.Equal(t, Digest(a), Digest(b))
	assert.Equal(t, Hash(a), Hash(b))
}

func TestHashDistinguishesShapes(t *testing.T) {
	values := []Value{
		Seq{U8(1)},
		Tuple{U8(1)},
		TupleStruct{Name: "", Values: []Value{U8(1)}},
		Seq{U16(1)},
		FromBytes([]byte{1}),
		String("1"),
		Seq{String("ab")},
		Seq{String("a"), String("b")},
		UnitVariant{Name: "ab", Variant: "c"},
		UnitVariant{Name: "a", Variant: "bc"},
	}

	seen := map[string]Value{}
	for _, v := range values {
		d := Digest(v)
		if prev, dup := seen[d]; dup {
			assert.True(t, Equal(prev, v), "digest collision between %s and %s", prev, v)
			continue
		}
		seen[d] = v
	}
	// FromBytes([]byte{1}) equals Seq{U8(1)}.
	assert.Len(t, seen, len(values)-1)
}

func TestHashDiffersFromDigestDomain(t *testing.T) {
	assert.NotEqual(t, Hash(U8(1)), Hash(U16(1)))
	assert.NotEqual(t, Digest(Unit{}), Digest(Tuple{}))
}
