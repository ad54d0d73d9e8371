package ser

import (
	"io"
	"log/slog"

	"github.com/roach88/shapeval/internal/value"
)

// Converter is the Serializer that builds value.Value trees.
//
// A Converter holds no per-conversion state: every builder it hands out
// owns its own accumulator. One Converter can serve any number of
// conversions, including concurrent ones.
type Converter struct {
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger routes conversion diagnostics to l. Failures are logged at
// Debug level; a nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConverter creates a Converter. By default diagnostics are discarded.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConverter = NewConverter()

// ToValue converts v with the default Converter.
func ToValue(v Serialize) (value.Value, error) {
	return defaultConverter.Convert(v)
}

// Convert drives v's serialization and returns the finished tree.
// On failure it returns a nil Value and an *Error.
func (c *Converter) Convert(v Serialize) (value.Value, error) {
	out, err := c.convert(v)
	if err != nil {
		e := asError(err)
		c.logger.Debug("conversion failed",
			"kind", e.Kind.String(),
			"path", e.Location(),
			"error", e.Message,
		)
		return nil, e
	}
	return out, nil
}

// convert runs one nested conversion. Producer errors are normalized to
// *Error here so builders only ever see that type.
func (c *Converter) convert(v Serialize) (value.Value, error) {
	if v == nil {
		return nil, contractError(ErrNoValue)
	}
	out, err := v.Serialize(c)
	if err != nil {
		return nil, asError(err)
	}
	if out == nil {
		return nil, contractError(ErrNoValue)
	}
	return out, nil
}

// contract logs and returns a contract violation for op.
func (c *Converter) contract(op string, sentinel error) error {
	c.logger.Debug("protocol contract violated", "op", op, "error", sentinel)
	return contractError(sentinel)
}

func (c *Converter) SerializeBool(v bool) (value.Value, error) { return value.Bool(v), nil }

func (c *Converter) SerializeI8(v int8) (value.Value, error)   { return value.I8(v), nil }
func (c *Converter) SerializeI16(v int16) (value.Value, error) { return value.I16(v), nil }
func (c *Converter) SerializeI32(v int32) (value.Value, error) { return value.I32(v), nil }
func (c *Converter) SerializeI64(v int64) (value.Value, error) { return value.I64(v), nil }

func (c *Converter) SerializeI128(v value.I128) (value.Value, error) { return v, nil }

func (c *Converter) SerializeU8(v uint8) (value.Value, error)   { return value.U8(v), nil }
func (c *Converter) SerializeU16(v uint16) (value.Value, error) { return value.U16(v), nil }
func (c *Converter) SerializeU32(v uint32) (value.Value, error) { return value.U32(v), nil }
func (c *Converter) SerializeU64(v uint64) (value.Value, error) { return value.U64(v), nil }

func (c *Converter) SerializeU128(v value.U128) (value.Value, error) { return v, nil }

func (c *Converter) SerializeF32(v float32) (value.Value, error) { return value.F32(v), nil }
func (c *Converter) SerializeF64(v float64) (value.Value, error) { return value.F64(v), nil }

func (c *Converter) SerializeChar(v rune) (value.Value, error)    { return value.Char(v), nil }
func (c *Converter) SerializeStr(v string) (value.Value, error)   { return value.String(v), nil }
func (c *Converter) SerializeBytes(v []byte) (value.Value, error) { return value.FromBytes(v), nil }

func (c *Converter) SerializeNone() (value.Value, error) { return value.None(), nil }

func (c *Converter) SerializeSome(v Serialize) (value.Value, error) {
	inner, err := c.convert(v)
	if err != nil {
		return nil, withSegment(err, value.SomeName)
	}
	return value.Some(inner), nil
}

func (c *Converter) SerializeUnit() (value.Value, error) { return value.Unit{}, nil }

func (c *Converter) SerializeUnitStruct(name string) (value.Value, error) {
	return value.UnitStruct{Name: name}, nil
}

func (c *Converter) SerializeUnitVariant(name string, _ uint32, variant string) (value.Value, error) {
	return value.UnitVariant{Name: name, Variant: variant}, nil
}

func (c *Converter) SerializeNewtypeStruct(name string, v Serialize) (value.Value, error) {
	inner, err := c.convert(v)
	if err != nil {
		return nil, withSegment(err, name)
	}
	return value.TupleStruct{Name: name, Values: []value.Value{inner}}, nil
}

func (c *Converter) SerializeNewtypeVariant(name string, _ uint32, variant string, v Serialize) (value.Value, error) {
	inner, err := c.convert(v)
	if err != nil {
		return nil, withSegment(err, name+"::"+variant)
	}
	return value.TupleVariant{Name: name, Variant: variant, Values: []value.Value{inner}}, nil
}

func (c *Converter) SerializeSeq(length int) (SeqBuilder, error) {
	return &seqBuilder{builder: builder{c: c, op: "seq"}, values: makeValues(length)}, nil
}

func (c *Converter) SerializeTuple(length int) (TupleBuilder, error) {
	return &seqBuilder{builder: builder{c: c, op: "tuple"}, values: makeValues(length), tuple: true}, nil
}

func (c *Converter) SerializeTupleStruct(name string, length int) (TupleStructBuilder, error) {
	return &tupleStructBuilder{builder: builder{c: c, op: "tuple_struct"}, name: name, values: makeValues(length)}, nil
}

func (c *Converter) SerializeTupleVariant(name string, _ uint32, variant string, length int) (TupleVariantBuilder, error) {
	return &tupleStructBuilder{
		builder: builder{c: c, op: "tuple_variant"},
		name:    name,
		variant: variant,
		values:  makeValues(length),
		isEnum:  true,
	}, nil
}

func (c *Converter) SerializeMap(length int) (MapBuilder, error) {
	return &mapBuilder{builder: builder{c: c, op: "map"}, entries: make([]value.Entry, 0, capHint(length))}, nil
}

func (c *Converter) SerializeStruct(name string, length int) (StructBuilder, error) {
	return &structBuilder{builder: builder{c: c, op: "struct"}, name: name, fields: make([]value.Field, 0, capHint(length))}, nil
}

func (c *Converter) SerializeStructVariant(name string, _ uint32, variant string, length int) (StructVariantBuilder, error) {
	return &structBuilder{
		builder: builder{c: c, op: "struct_variant"},
		name:    name,
		variant: variant,
		fields:  make([]value.Field, 0, capHint(length)),
		isEnum:  true,
	}, nil
}

func makeValues(length int) []value.Value {
	return make([]value.Value, 0, capHint(length))
}

// capHint bounds a producer's length hint; the hint is advisory and a
// bogus one must not allocate unbounded memory up front.
func capHint(length int) int {
	return min(max(length, 0), maxCapHint)
}

const maxCapHint = 1024

var _ Serializer = (*Converter)(nil)
