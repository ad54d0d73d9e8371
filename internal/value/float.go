package value

import (
	"cmp"
	"math"
)

const (
	f32SignBit  = uint32(1) << 31
	f32QuietNaN = uint32(0x7fc00000)
	f64SignBit  = uint64(1) << 63
	f64QuietNaN = uint64(0x7ff8000000000000)
)

// F32 wraps a float32 with a total order so it can take part in map keys.
//
// Order: -NaN < -Inf < negatives < -0 < +0 < positives < +Inf < +NaN.
// All NaNs of one sign are equal to each other, whatever their payload.
type F32 float32

// F64 wraps a float64 with the same total order as F32.
type F64 float64

// Bits returns the IEEE 754 bits of f with every NaN collapsed to the
// quiet NaN of its sign. Equal, Cmp and hashing all work on these bits.
func (f F32) Bits() uint32 {
	b := math.Float32bits(float32(f))
	if f != f {
		return b&f32SignBit | f32QuietNaN
	}
	return b
}

// Bits returns the IEEE 754 bits of f with every NaN collapsed to the
// quiet NaN of its sign.
func (f F64) Bits() uint64 {
	b := math.Float64bits(float64(f))
	if math.IsNaN(float64(f)) {
		return b&f64SignBit | f64QuietNaN
	}
	return b
}

// Cmp compares f and o under the total order.
func (f F32) Cmp(o F32) int {
	return cmp.Compare(orderKey32(f.Bits()), orderKey32(o.Bits()))
}

// Cmp compares f and o under the total order.
func (f F64) Cmp(o F64) int {
	return cmp.Compare(orderKey64(f.Bits()), orderKey64(o.Bits()))
}

// Equal reports whether f and o are equal under the total order.
// Unlike ==, NaN equals NaN of the same sign and -0 differs from +0.
func (f F32) Equal(o F32) bool { return f.Bits() == o.Bits() }

// Equal reports whether f and o are equal under the total order.
func (f F64) Equal(o F64) bool { return f.Bits() == o.Bits() }

// orderKey64 maps float bits onto an unsigned key with the same order:
// negatives are flipped entirely, positives get the sign bit set.
func orderKey64(bits uint64) uint64 {
	if bits&f64SignBit != 0 {
		return ^bits
	}
	return bits | f64SignBit
}

func orderKey32(bits uint32) uint32 {
	if bits&f32SignBit != 0 {
		return ^bits
	}
	return bits | f32SignBit
}
