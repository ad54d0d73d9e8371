package value

import (
	"math"
	"strconv"
	"strings"
)

// Typed renders v like String, but every number carries its width suffix
// ("5u8", "-1i128", "1.5f64"), so no shape information is lost.
func Typed(v Value) string {
	p := printer{typed: true}
	p.value(v)
	return p.sb.String()
}

func render(v Value) string {
	var p printer
	p.value(v)
	return p.sb.String()
}

func (v Unit) String() string         { return render(v) }
func (v Bool) String() string         { return render(v) }
func (v Char) String() string         { return render(v) }
func (v U8) String() string           { return render(v) }
func (v U16) String() string          { return render(v) }
func (v U32) String() string          { return render(v) }
func (v U64) String() string          { return render(v) }
func (v I8) String() string           { return render(v) }
func (v I16) String() string          { return render(v) }
func (v I32) String() string          { return render(v) }
func (v I64) String() string          { return render(v) }
func (v F32) String() string          { return render(v) }
func (v F64) String() string          { return render(v) }
func (v String) String() string       { return render(v) }
func (v Seq) String() string          { return render(v) }
func (v Map) String() string          { return render(v) }
func (v Tuple) String() string        { return render(v) }
func (v UnitStruct) String() string   { return render(v) }
func (v TupleStruct) String() string  { return render(v) }
func (v NamedStruct) String() string  { return render(v) }
func (v UnitVariant) String() string  { return render(v) }
func (v TupleVariant) String() string { return render(v) }
func (v NamedVariant) String() string { return render(v) }

// printer writes the debug rendering:
//
//	()  true  'c'  "str"  [a, b]  {k: v}  (a, b)  (a,)
//	Name  Name(a, b)  Name { f: v }
//	Type::Variant  Type::Variant(a)  Type::Variant { f: v }
type printer struct {
	sb    strings.Builder
	typed bool
}

func (p *printer) value(v Value) {
	switch x := v.(type) {
	case Unit:
		p.sb.WriteString("()")
	case Bool:
		p.sb.WriteString(strconv.FormatBool(bool(x)))
	case Char:
		p.sb.WriteString(strconv.QuoteRune(rune(x)))
	case Number:
		p.number(x)
	case String:
		p.sb.WriteString(strconv.Quote(string(x)))
	case Seq:
		p.list("[", x, "]")
	case Map:
		p.sb.WriteByte('{')
		for i, e := range x.entries {
			if i > 0 {
				p.sb.WriteString(", ")
			}
			p.value(e.Key)
			p.sb.WriteString(": ")
			p.value(e.Value)
		}
		p.sb.WriteByte('}')
	case Tuple:
		p.list("(", x, "")
		if len(x) == 1 {
			p.sb.WriteByte(',')
		}
		p.sb.WriteByte(')')
	case UnitStruct:
		p.sb.WriteString(x.Name)
	case TupleStruct:
		p.sb.WriteString(x.Name)
		p.positional(x.Values)
	case NamedStruct:
		p.sb.WriteString(x.Name)
		p.named(x.Fields)
	case UnitVariant:
		p.path(x.Name, x.Variant)
	case TupleVariant:
		p.path(x.Name, x.Variant)
		p.positional(x.Values)
	case NamedVariant:
		p.path(x.Name, x.Variant)
		p.named(x.Fields)
	default:
		panic(unknownValue(v))
	}
}

func (p *printer) list(open string, vs []Value, close string) {
	p.sb.WriteString(open)
	for i, v := range vs {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.value(v)
	}
	p.sb.WriteString(close)
}

// positional writes "(a, b)"; an empty payload writes nothing.
func (p *printer) positional(vs []Value) {
	if len(vs) == 0 {
		return
	}
	p.list("(", vs, ")")
}

// named writes " { f: v, g: w }"; no fields writes nothing.
func (p *printer) named(f Fields) {
	if f.Len() == 0 {
		return
	}
	p.sb.WriteString(" { ")
	for i, fd := range f.fields {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.sb.WriteString(fd.Name)
		p.sb.WriteString(": ")
		p.value(fd.Value)
	}
	p.sb.WriteString(" }")
}

func (p *printer) path(name, variant string) {
	p.sb.WriteString(name)
	p.sb.WriteString("::")
	p.sb.WriteString(variant)
}

func (p *printer) number(n Number) {
	switch x := n.(type) {
	case U8:
		p.sb.WriteString(formatUint(uint64(x)))
	case U16:
		p.sb.WriteString(formatUint(uint64(x)))
	case U32:
		p.sb.WriteString(formatUint(uint64(x)))
	case U64:
		p.sb.WriteString(formatUint(uint64(x)))
	case U128:
		p.sb.WriteString(x.String())
	case I8:
		p.sb.WriteString(formatInt(int64(x)))
	case I16:
		p.sb.WriteString(formatInt(int64(x)))
	case I32:
		p.sb.WriteString(formatInt(int64(x)))
	case I64:
		p.sb.WriteString(formatInt(int64(x)))
	case I128:
		p.sb.WriteString(x.String())
	case F32:
		p.sb.WriteString(formatFloat(float64(x), 32))
	case F64:
		p.sb.WriteString(formatFloat(float64(x), 64))
	}
	if p.typed {
		p.sb.WriteString(n.NumberKind().String())
	}
}

func formatUint(n uint64) string { return strconv.FormatUint(n, 10) }

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

// formatFloat always leaves a float recognisable as one: "1.0", not "1".
// NaN keeps its sign because the total order distinguishes -NaN from NaN.
func formatFloat(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		if math.Signbit(f) {
			return "-NaN"
		}
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
