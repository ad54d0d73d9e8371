package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringRendering(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"unit", Unit{}, "()"},
		{"bool", Bool(true), "true"},
		{"char", Char('x'), "'x'"},
		{"char escaped", Char('\n'), `'\n'`},
		{"u8", U8(5), "5"},
		{"i64 negative", I64(-42), "-42"},
		{"u128", U128{Hi: 1}, "18446744073709551616"},
		{"f64 integral", F64(1), "1.0"},
		{"f64 fraction", F64(0.25), "0.25"},
		{"f32", F32(1.5), "1.5"},
		{"f64 exponent", F64(1e21), "1e+21"},
		{"f64 neg zero", F64(math.Copysign(0, -1)), "-0.0"},
		{"f64 nan", F64(math.NaN()), "NaN"},
		{"f64 neg nan", F64(math.Copysign(math.NaN(), -1)), "-NaN"},
		{"f64 inf", F64(math.Inf(-1)), "-inf"},
		{"string", String(`say "hi"`), `"say \"hi\""`},
		{"seq order preserved", Seq{I32(3), I32(1), I32(2)}, "[3, 1, 2]"},
		{"empty seq", Seq{}, "[]"},
		{"tuple", Tuple{U8(1), String("a")}, `(1, "a")`},
		{"one tuple", Tuple{U8(1)}, "(1,)"},
		{"empty tuple", Tuple{}, "()"},
		{"unit struct", UnitStruct{Name: "Marker"}, "Marker"},
		{"tuple struct", TupleStruct{Name: "Meters", Values: []Value{U32(3)}}, "Meters(3)"},
		{"empty tuple struct", TupleStruct{Name: "Empty"}, "Empty"},
		{"named struct", NamedStruct{Name: "P", Fields: NewFields(
			Field{Name: "y", Value: I8(2)},
			Field{Name: "x", Value: I8(1)},
		)}, "P { x: 1, y: 2 }"},
		{"named struct no fields", NamedStruct{Name: "P"}, "P"},
		{"unit variant", UnitVariant{Name: "Color", Variant: "Red"}, "Color::Red"},
		{"tuple variant", TupleVariant{Name: "E", Variant: "A", Values: []Value{U32(1)}}, "E::A(1)"},
		{"named variant", NamedVariant{Name: "E", Variant: "B", Fields: NewFields(
			Field{Name: "val", Value: String("hi")},
		)}, `E::B { val: "hi" }`},
		{"option none", None(), "None"},
		{"option some", Some(I32(5)), "Some(5)"},
		{"map", NewMap(Entry{Key: String("k"), Value: Seq{Unit{}}}), `{"k": [()]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestTypedRendering(t *testing.T) {
	v := TupleStruct{Name: "Some", Values: []Value{Seq{U8(5), I128From64(-1), F64(1), F32(2.5)}}}
	assert.Equal(t, "Some([5u8, -1i128, 1.0f64, 2.5f32])", Typed(v))
	assert.Equal(t, "Some([5, -1, 1.0, 2.5])", v.String())
}

func TestTypedRenderingDistinguishesWidths(t *testing.T) {
	assert.Equal(t, U8(1).String(), U32(1).String())
	assert.NotEqual(t, Typed(U8(1)), Typed(U32(1)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unit", KindUnit.String())
	assert.Equal(t, "named_variant", KindNamedVariant.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
}
