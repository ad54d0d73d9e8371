package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMapOrdersByKey(t *testing.T) {
	m := NewMap(
		Entry{Key: I32(2), Value: String("b")},
		Entry{Key: I32(1), Value: String("a")},
	)

	assert.Equal(t, []Value{I32(1), I32(2)}, m.Keys())
	assert.Equal(t, []Value{String("a"), String("b")}, m.Values())
	assert.Equal(t, `{1: "a", 2: "b"}`, m.String())
}

func TestNewMapLastDuplicateWins(t *testing.T) {
	m := NewMap(
		Entry{Key: I32(1), Value: String("a")},
		Entry{Key: I32(2), Value: String("b")},
		Entry{Key: I32(1), Value: String("c")},
	)

	require.Equal(t, 2, m.Len())
	got, ok := m.Get(I32(1))
	require.True(t, ok)
	assert.Equal(t, String("c"), got)
}

func TestMapKeysOfDifferentWidthsAreDistinct(t *testing.T) {
	m := NewMap(
		Entry{Key: U8(1), Value: String("u8")},
		Entry{Key: U32(1), Value: String("u32")},
	)

	assert.Equal(t, 2, m.Len())
	_, ok := m.Get(U16(1))
	assert.False(t, ok)
}

func TestMapEntriesAreCopies(t *testing.T) {
	m := NewMap(Entry{Key: U8(1), Value: Unit{}})

	entries := m.Entries()
	entries[0].Value = Bool(true)

	got, _ := m.Get(U8(1))
	assert.Equal(t, Unit{}, got)
}

func TestMapAllStopsEarly(t *testing.T) {
	m := NewMap(
		Entry{Key: U8(3), Value: Unit{}},
		Entry{Key: U8(1), Value: Unit{}},
		Entry{Key: U8(2), Value: Unit{}},
	)

	var seen []Value
	for k := range m.All() {
		seen = append(seen, k)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []Value{U8(1), U8(2)}, seen)
}

func TestZeroMap(t *testing.T) {
	var m Map
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "{}", m.String())
	_, ok := m.Get(Unit{})
	assert.False(t, ok)
}

func TestNewFieldsLexicographic(t *testing.T) {
	f := NewFields(
		Field{Name: "z", Value: U8(1)},
		Field{Name: "a", Value: U8(2)},
		Field{Name: "m", Value: U8(3)},
	)

	assert.Equal(t, []string{"a", "m", "z"}, f.Names())

	got, ok := f.Get("m")
	require.True(t, ok)
	assert.Equal(t, U8(3), got)

	_, ok = f.Get("missing")
	assert.False(t, ok)
}

func TestNewFieldsBytewiseOrder(t *testing.T) {
	f := NewFields(
		Field{Name: "b", Value: Unit{}},
		Field{Name: "B", Value: Unit{}},
		Field{Name: "_", Value: Unit{}},
		Field{Name: "a1", Value: Unit{}},
	)
	// 'B' (66) < '_' (95) < 'a' (97) < 'b' (98)
	assert.Equal(t, []string{"B", "_", "a1", "b"}, f.Names())
}

func TestNewFieldsRepeatedNameKeepsLast(t *testing.T) {
	f := NewFields(
		Field{Name: "x", Value: U8(1)},
		Field{Name: "x", Value: U8(2)},
	)

	require.Equal(t, 1, f.Len())
	got, _ := f.Get("x")
	assert.Equal(t, U8(2), got)
}
