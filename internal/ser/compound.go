package ser

import (
	"strconv"

	"github.com/roach88/shapeval/internal/value"
)

// builder is the state every compound builder shares: the converter used
// for children, and a sticky terminal state. Once a builder has ended or a
// child has failed, every later call reports that instead of producing a
// partial tree.
type builder struct {
	c    *Converter
	op   string
	done bool
	err  error
}

// check returns the error a call must report before doing any work.
func (b *builder) check() error {
	if b.err != nil {
		return b.err
	}
	if b.done {
		return b.c.contract(b.op, ErrBuilderDone)
	}
	return nil
}

// fail records err as the builder's terminal state and returns it.
func (b *builder) fail(err error) error {
	b.err = err
	return err
}

// finish marks the builder ended, reporting any earlier failure.
func (b *builder) finish() error {
	if err := b.check(); err != nil {
		return err
	}
	b.done = true
	return nil
}

// child converts one nested value, tagging failures with seg.
func (b *builder) child(v Serialize, seg string) (value.Value, error) {
	out, err := b.c.convert(v)
	if err != nil {
		return nil, b.fail(withSegment(err, seg))
	}
	return out, nil
}

// seqBuilder backs both SerializeSeq and SerializeTuple.
type seqBuilder struct {
	builder
	values []value.Value
	tuple  bool
}

func (b *seqBuilder) SerializeElement(v Serialize) error {
	if err := b.check(); err != nil {
		return err
	}
	out, err := b.child(v, index(len(b.values)))
	if err != nil {
		return err
	}
	b.values = append(b.values, out)
	return nil
}

func (b *seqBuilder) End() (value.Value, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	if b.tuple {
		return value.Tuple(b.values), nil
	}
	return value.Seq(b.values), nil
}

// tupleStructBuilder backs SerializeTupleStruct and SerializeTupleVariant.
type tupleStructBuilder struct {
	builder
	name    string
	variant string
	values  []value.Value
	isEnum  bool
}

func (b *tupleStructBuilder) SerializeField(v Serialize) error {
	if err := b.check(); err != nil {
		return err
	}
	out, err := b.child(v, index(len(b.values)))
	if err != nil {
		return err
	}
	b.values = append(b.values, out)
	return nil
}

func (b *tupleStructBuilder) End() (value.Value, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	if b.isEnum {
		return value.TupleVariant{Name: b.name, Variant: b.variant, Values: b.values}, nil
	}
	return value.TupleStruct{Name: b.name, Values: b.values}, nil
}

// structBuilder backs SerializeStruct and SerializeStructVariant. Fields
// are collected in call order and sorted by name on End.
type structBuilder struct {
	builder
	name    string
	variant string
	fields  []value.Field
	isEnum  bool
}

func (b *structBuilder) SerializeField(name string, v Serialize) error {
	if err := b.check(); err != nil {
		return err
	}
	out, err := b.child(v, name)
	if err != nil {
		return err
	}
	b.fields = append(b.fields, value.Field{Name: name, Value: out})
	return nil
}

// SkipField records nothing; a skipped field is simply absent.
func (b *structBuilder) SkipField(string) error {
	return b.check()
}

func (b *structBuilder) End() (value.Value, error) {
	if err := b.finish(); err != nil {
		return nil, err
	}
	fields := value.NewFields(b.fields...)
	if b.isEnum {
		return value.NamedVariant{Name: b.name, Variant: b.variant, Fields: fields}, nil
	}
	return value.NamedStruct{Name: b.name, Fields: fields}, nil
}

// mapBuilder enforces key/value alternation. entries keeps insertion
// order until End, where value.NewMap sorts by key and lets the last
// duplicate win.
type mapBuilder struct {
	builder
	key     value.Value
	hasKey  bool
	entries []value.Entry
}

func (b *mapBuilder) SerializeKey(k Serialize) error {
	if err := b.check(); err != nil {
		return err
	}
	if b.hasKey {
		return b.fail(b.c.contract(b.op, ErrKeyWithoutValue))
	}
	out, err := b.child(k, index(len(b.entries))+".key")
	if err != nil {
		return err
	}
	b.key, b.hasKey = out, true
	return nil
}

func (b *mapBuilder) SerializeValue(v Serialize) error {
	if err := b.check(); err != nil {
		return err
	}
	if !b.hasKey {
		return b.fail(b.c.contract(b.op, ErrValueWithoutKey))
	}
	out, err := b.child(v, "["+b.key.String()+"]")
	if err != nil {
		return err
	}
	b.entries = append(b.entries, value.Entry{Key: b.key, Value: out})
	b.key, b.hasKey = nil, false
	return nil
}

func (b *mapBuilder) SerializeEntry(k, v Serialize) error {
	if err := b.SerializeKey(k); err != nil {
		return err
	}
	return b.SerializeValue(v)
}

func (b *mapBuilder) End() (value.Value, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if b.hasKey {
		return nil, b.fail(b.c.contract(b.op, ErrKeyWithoutValue))
	}
	b.done = true
	return value.NewMap(b.entries...), nil
}

func index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}
