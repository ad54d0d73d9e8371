package ser

import (
	"encoding"
	"reflect"
	"strings"

	"github.com/roach88/shapeval/internal/value"
)

// TagName is the struct tag Reflect reads: `shape:"name"` renames a field,
// `shape:"-"` skips it and `shape:",omitempty"` skips it when zero.
const TagName = "shape"

var (
	serializeType     = reflect.TypeFor[Serialize]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
	valueType         = reflect.TypeFor[value.Value]()
)

// Reflect wraps an arbitrary Go value as a producer.
//
// Mapping:
//   - bool, sized ints/uints, floats and strings map to their exact kind;
//     int and uint map to I64 and U64
//   - a value.Value is replayed as itself; converting it yields an Equal tree
//   - []byte goes through SerializeBytes; other slices become Seq, arrays Tuple
//   - maps become Map (entries sorted by key on End)
//   - a nil pointer is None, a non-nil pointer Some(pointee), always, even
//     when the pointer type has its own Serialize method
//   - struct{} is a UnitStruct; other structs are NamedStructs of their
//     exported fields, named after the Go type. `shape:",omitempty"` skips
//     a field holding its zero value; other tag options are an error
//   - values implementing Serialize describe themselves; values implementing
//     encoding.TextMarshaler become strings
//   - a nil interface is Unit
//
// Channels, funcs, complex numbers and unsafe pointers are rejected with a
// custom error.
func Reflect(x any) Serialize {
	return reflected{rv: reflect.ValueOf(x)}
}

type reflected struct {
	rv reflect.Value
}

func (r reflected) Serialize(s Serializer) (value.Value, error) {
	return serializeReflect(s, r.rv)
}

func serializeReflect(s Serializer, rv reflect.Value) (value.Value, error) {
	if !rv.IsValid() {
		return s.SerializeUnit()
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return s.SerializeNone()
		}
		return s.SerializeSome(reflected{rv: rv.Elem()})
	case reflect.Interface:
		if rv.IsNil() {
			return s.SerializeUnit()
		}
		return serializeReflect(s, rv.Elem())
	}

	if custom, ok := customShape(rv); ok {
		return custom.Serialize(s)
	}

	t := rv.Type()
	switch rv.Kind() {
	case reflect.Bool:
		return s.SerializeBool(rv.Bool())
	case reflect.Int8:
		return s.SerializeI8(int8(rv.Int()))
	case reflect.Int16:
		return s.SerializeI16(int16(rv.Int()))
	case reflect.Int32:
		return s.SerializeI32(int32(rv.Int()))
	case reflect.Int, reflect.Int64:
		return s.SerializeI64(rv.Int())
	case reflect.Uint8:
		return s.SerializeU8(uint8(rv.Uint()))
	case reflect.Uint16:
		return s.SerializeU16(uint16(rv.Uint()))
	case reflect.Uint32:
		return s.SerializeU32(uint32(rv.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return s.SerializeU64(rv.Uint())
	case reflect.Float32:
		return s.SerializeF32(float32(rv.Float()))
	case reflect.Float64:
		return s.SerializeF64(rv.Float())
	case reflect.String:
		return s.SerializeStr(rv.String())
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 && !hasCustomShape(t.Elem()) {
			return s.SerializeBytes(rv.Bytes())
		}
		return serializeElements(s, rv, false)
	case reflect.Array:
		return serializeElements(s, rv, true)
	case reflect.Map:
		return serializeMap(s, rv)
	case reflect.Struct:
		return serializeStruct(s, rv)
	default:
		return nil, Customf("unsupported type %s", t)
	}
}

// customShape finds a Serialize, value.Value or TextMarshaler
// implementation on rv. Pointer-receiver methods are found whether or not
// rv is addressable; a non-addressable value is copied first.
func customShape(rv reflect.Value) (Serialize, bool) {
	if !rv.CanInterface() {
		return nil, false
	}
	if custom, ok := shapeOf(rv.Interface()); ok {
		return custom, true
	}

	ptr := reflect.PointerTo(rv.Type())
	if !ptr.Implements(serializeType) && !ptr.Implements(textMarshalerType) {
		return nil, false
	}
	if rv.CanAddr() {
		return shapeOf(rv.Addr().Interface())
	}
	cp := reflect.New(rv.Type())
	cp.Elem().Set(rv)
	return shapeOf(cp.Interface())
}

func shapeOf(x any) (Serialize, bool) {
	switch x := x.(type) {
	case Serialize:
		return x, true
	case value.Value:
		return valueShape{x}, true
	case encoding.TextMarshaler:
		return textShape{x}, true
	}
	return nil, false
}

type textShape struct {
	m encoding.TextMarshaler
}

func (ts textShape) Serialize(s Serializer) (value.Value, error) {
	text, err := ts.m.MarshalText()
	if err != nil {
		return nil, err
	}
	return s.SerializeStr(string(text))
}

func hasCustomShape(t reflect.Type) bool {
	for _, c := range []reflect.Type{t, reflect.PointerTo(t)} {
		if c.Implements(serializeType) || c.Implements(valueType) || c.Implements(textMarshalerType) {
			return true
		}
	}
	return false
}

func serializeElements(s Serializer, rv reflect.Value, tuple bool) (value.Value, error) {
	n := rv.Len()

	var (
		add func(Serialize) error
		end func() (value.Value, error)
	)
	if tuple {
		b, err := s.SerializeTuple(n)
		if err != nil {
			return nil, err
		}
		add, end = b.SerializeElement, b.End
	} else {
		b, err := s.SerializeSeq(n)
		if err != nil {
			return nil, err
		}
		add, end = b.SerializeElement, b.End
	}

	for i := 0; i < n; i++ {
		if err := add(reflected{rv: rv.Index(i)}); err != nil {
			return nil, err
		}
	}
	return end()
}

func serializeMap(s Serializer, rv reflect.Value) (value.Value, error) {
	b, err := s.SerializeMap(rv.Len())
	if err != nil {
		return nil, err
	}
	it := rv.MapRange()
	for it.Next() {
		if err := b.SerializeEntry(reflected{rv: it.Key()}, reflected{rv: it.Value()}); err != nil {
			return nil, err
		}
	}
	return b.End()
}

func serializeStruct(s Serializer, rv reflect.Value) (value.Value, error) {
	t := rv.Type()
	if t.NumField() == 0 {
		return s.SerializeUnitStruct(t.Name())
	}

	b, err := s.SerializeStruct(t.Name(), t.NumField())
	if err != nil {
		return nil, err
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, omitEmpty, skip, err := fieldName(f)
		if err != nil {
			return nil, err
		}
		if skip || (omitEmpty && rv.Field(i).IsZero()) {
			if err := b.SkipField(f.Name); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.SerializeField(name, reflected{rv: rv.Field(i)}); err != nil {
			return nil, err
		}
	}
	return b.End()
}

func fieldName(f reflect.StructField) (name string, omitEmpty, skip bool, err error) {
	tag, ok := f.Tag.Lookup(TagName)
	if !ok {
		return f.Name, false, false, nil
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "-" && opts == "" {
		return "", false, true, nil
	}
	if name == "" {
		name = f.Name
	}
	for opt := range strings.SplitSeq(opts, ",") {
		switch opt {
		case "":
		case "omitempty":
			omitEmpty = true
		default:
			return "", false, false, Customf("field %s: unknown %s tag option %q", f.Name, TagName, opt)
		}
	}
	return name, omitEmpty, false, nil
}
