package ser

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shapeval/internal/value"
)

var valueComparer = cmp.Comparer(value.Equal)

type address struct {
	Street string
	Zip    *string
}

type customer struct {
	ID      uuid.UUID
	Name    string `shape:"name"`
	Age     uint8  `shape:"age,omitempty"`
	Secret  string `shape:"-"`
	Tags    []string
	Scores  map[string]int16
	Home    *address
	Avatar  []byte
	Corner  [2]int32
	Initial Char
	private int
}

func TestReflectStruct(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	c := customer{
		ID:      id,
		Name:    "Ada",
		Age:     36,
		Secret:  "hidden",
		Tags:    []string{"b", "a"},
		Scores:  map[string]int16{"z": 1, "a": -1},
		Home:    &address{Street: "Main"},
		Avatar:  []byte{0xff},
		Corner:  [2]int32{3, 4},
		Initial: 'A',
		private: 1,
	}

	got := mustValue(t, Reflect(c))

	want := value.NamedStruct{Name: "customer", Fields: value.NewFields(
		value.Field{Name: "ID", Value: value.String(id.String())},
		value.Field{Name: "name", Value: value.String("Ada")},
		value.Field{Name: "age", Value: value.U8(36)},
		value.Field{Name: "Tags", Value: value.Seq{value.String("b"), value.String("a")}},
		value.Field{Name: "Scores", Value: value.NewMap(
			value.Entry{Key: value.String("z"), Value: value.I16(1)},
			value.Entry{Key: value.String("a"), Value: value.I16(-1)},
		)},
		value.Field{Name: "Home", Value: value.Some(value.NamedStruct{Name: "address", Fields: value.NewFields(
			value.Field{Name: "Street", Value: value.String("Main")},
			value.Field{Name: "Zip", Value: value.None()},
		)})},
		value.Field{Name: "Avatar", Value: value.Seq{value.U8(0xff)}},
		value.Field{Name: "Corner", Value: value.Tuple{value.I32(3), value.I32(4)}},
		value.Field{Name: "Initial", Value: value.Char('A')},
	)}

	if diff := cmp.Diff(value.Value(want), got, valueComparer); diff != "" {
		t.Errorf("Reflect(customer) mismatch (-want +got):\n%s", diff)
	}

	ns, ok := value.AsNamedStruct(got)
	require.True(t, ok)
	_, hasSecret := ns.Fields.Get("Secret")
	assert.False(t, hasSecret, "shape:\"-\" skips the field")
	_, hasPrivate := ns.Fields.Get("private")
	assert.False(t, hasPrivate, "unexported fields are skipped")
}

func TestReflectGoIntegersKeepWidth(t *testing.T) {
	tests := []struct {
		in   any
		kind value.NumberKind
	}{
		{int8(1), value.KindI8},
		{int16(1), value.KindI16},
		{int32(1), value.KindI32},
		{int64(1), value.KindI64},
		{int(1), value.KindI64},
		{uint8(1), value.KindU8},
		{uint16(1), value.KindU16},
		{uint32(1), value.KindU32},
		{uint64(1), value.KindU64},
		{uint(1), value.KindU64},
		{uintptr(1), value.KindU64},
		{float32(1), value.KindF32},
		{float64(1), value.KindF64},
		{value.U128From64(1), value.KindU128},
		{value.I128From64(-1), value.KindI128},
	}

	for _, tt := range tests {
		out := mustValue(t, Reflect(tt.in))
		n, ok := value.AsNumber(out)
		require.True(t, ok, "%T", tt.in)
		assert.Equal(t, tt.kind, n.NumberKind(), "%T", tt.in)
	}
}

func TestReflectNilAndEmpty(t *testing.T) {
	assert.Equal(t, value.Unit{}, mustValue(t, Reflect(nil)))
	type Empty struct{}
	assert.Equal(t, value.UnitStruct{Name: "Empty"}, mustValue(t, Reflect(Empty{})))

	var nilSlice []string
	assert.Equal(t, "[]", mustValue(t, Reflect(nilSlice)).String())

	var anyNil any
	assert.Equal(t, value.Unit{}, mustValue(t, Reflect([]any{anyNil})).(value.Seq)[0])
}

type pointerProducer struct{ n uint16 }

func (p *pointerProducer) Serialize(s Serializer) (value.Value, error) {
	return s.SerializeNewtypeStruct("Wrapped", Reflect(p.n))
}

func TestReflectPointerReceiverSerialize(t *testing.T) {
	type holder struct {
		P pointerProducer
	}

	out := mustValue(t, Reflect(&holder{P: pointerProducer{n: 7}}))
	assert.Equal(t, "Some(holder { P: Wrapped(7) })", out.String())
}

func TestReflectSerializeImplementationWins(t *testing.T) {
	out := mustValue(t, Reflect([]record{{Z: 1, A: 2, M: 3}}))
	assert.Equal(t, "[Record { a: 2, m: 3, z: 1 }]", out.String())
}

func TestReflectUnsupportedKinds(t *testing.T) {
	for _, in := range []any{make(chan int), func() {}, complex(1, 2)} {
		_, err := ToValue(Reflect(in))
		require.Error(t, err, "%T", in)
		assert.ErrorIs(t, err, &Error{Kind: KindCustom})
		assert.Contains(t, err.Error(), "unsupported type")
	}
}

func TestReflectUnsupportedFieldHasPath(t *testing.T) {
	type job struct {
		Run func()
	}

	_, err := ToValue(Reflect(job{Run: func() {}}))
	require.Error(t, err)
	assert.Equal(t, "Run: unsupported type func()", err.Error())
}

func TestReflectPointerReceiverWithoutAddress(t *testing.T) {
	type holder struct {
		P pointerProducer
	}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"top level", pointerProducer{n: 7}, "Wrapped(7)"},
		{"field of a copied struct", holder{P: pointerProducer{n: 7}}, "holder { P: Wrapped(7) }"},
		{"slice element", []pointerProducer{{n: 7}}, "[Wrapped(7)]"},
		{"pointer-receiver MarshalText", *big.NewInt(123), `"123"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustValue(t, Reflect(tt.in)).String())
		})
	}
}

func valueCorpus() []value.Value {
	return []value.Value{
		value.Unit{},
		value.Bool(true),
		value.Char('z'),
		value.U8(200),
		value.U16(1),
		value.U32(2),
		value.U64(3),
		value.U128{Hi: 1, Lo: 2},
		value.I8(-1),
		value.I16(-2),
		value.I32(-3),
		value.I64(-4),
		value.I128From64(-5),
		value.F32(float32(math.Inf(1))),
		value.F64(math.Copysign(0, -1)),
		value.F64(math.NaN()),
		value.String("s"),
		value.Seq{},
		value.Seq{value.U8(1), value.String("x")},
		value.NewMap(),
		value.NewMap(
			value.Entry{Key: value.String("k"), Value: value.I64(1)},
			value.Entry{Key: value.F64(math.NaN()), Value: value.Unit{}},
		),
		value.Tuple{value.Bool(true)},
		value.None(),
		value.Some(value.I32(5)),
		value.UnitStruct{Name: "A"},
		value.TupleStruct{Name: "A", Values: []value.Value{value.I8(1), value.Seq{}}},
		value.NamedStruct{Name: "P", Fields: value.NewFields(value.Field{Name: "x", Value: value.F32(1)})},
		value.NamedStruct{Name: "Empty", Fields: value.NewFields()},
		value.UnitVariant{Name: "E", Variant: "A"},
		value.TupleVariant{Name: "E", Variant: "A", Values: []value.Value{value.String("s")}},
		value.NamedVariant{Name: "E", Variant: "B", Fields: value.NewFields(
			value.Field{Name: "m", Value: value.NewMap(value.Entry{Key: value.U8(1), Value: value.U8(2)})},
		)},
	}
}

func TestReflectReplaysValues(t *testing.T) {
	for _, v := range valueCorpus() {
		t.Run(value.Typed(v), func(t *testing.T) {
			got := mustValue(t, Reflect(v))
			assert.True(t, value.Equal(v, got), "want %s, got %s", value.Typed(v), value.Typed(got))
		})
	}
}

func TestReflectValuesInsideGoContainers(t *testing.T) {
	inner := value.NewMap(value.Entry{Key: value.String("k"), Value: value.I64(1)})
	got := mustValue(t, Reflect(map[string]value.Value{"m": inner}))

	want := value.NewMap(value.Entry{Key: value.String("m"), Value: inner})
	if diff := cmp.Diff(value.Value(want), got, valueComparer); diff != "" {
		t.Errorf("Reflect(map of values) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, `{"m": {"k": 1}}`, got.String())
}

func TestReflectOmitEmpty(t *testing.T) {
	type reading struct {
		Age   uint8    `shape:"age,omitempty"`
		Tags  []string `shape:",omitempty"`
		Count int      `shape:"count"`
	}

	assert.Equal(t, "reading { count: 0 }", mustValue(t, Reflect(reading{})).String())
	assert.Equal(t, `reading { Tags: ["a"], age: 3, count: 0 }`,
		mustValue(t, Reflect(reading{Age: 3, Tags: []string{"a"}})).String())
}

func TestReflectUnknownTagOption(t *testing.T) {
	type reading struct {
		Age uint8 `shape:"age,string"`
	}

	_, err := ToValue(Reflect(reading{Age: 1}))
	require.Error(t, err)
	assert.ErrorIs(t, err, &Error{Kind: KindCustom})
	assert.Equal(t, `field Age: unknown shape tag option "string"`, err.Error())
}
