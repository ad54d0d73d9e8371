package value

import (
	"cmp"
	"math/big"
)

// U128 is an unsigned 128-bit integer split into two 64-bit halves.
type U128 struct {
	Hi uint64
	Lo uint64
}

// I128 is a signed 128-bit two's complement integer. Hi carries the sign.
type I128 struct {
	Hi int64
	Lo uint64
}

// U128From64 widens v to 128 bits.
func U128From64(v uint64) U128 {
	return U128{Lo: v}
}

// I128From64 sign-extends v to 128 bits.
func I128From64(v int64) I128 {
	hi := int64(0)
	if v < 0 {
		hi = -1
	}
	return I128{Hi: hi, Lo: uint64(v)}
}

// Cmp returns -1, 0 or +1 comparing u and o numerically.
func (u U128) Cmp(o U128) int {
	if c := cmp.Compare(u.Hi, o.Hi); c != 0 {
		return c
	}
	return cmp.Compare(u.Lo, o.Lo)
}

// Cmp returns -1, 0 or +1 comparing i and o numerically.
// The signed high half decides first; the low half is an unsigned magnitude.
func (i I128) Cmp(o I128) int {
	if c := cmp.Compare(i.Hi, o.Hi); c != 0 {
		return c
	}
	return cmp.Compare(i.Lo, o.Lo)
}

// Big returns u as a big.Int.
func (u U128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// Big returns i as a big.Int.
func (i I128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

func (u U128) String() string {
	if u.Hi == 0 {
		return formatUint(u.Lo)
	}
	return u.Big().String()
}

func (i I128) String() string {
	if (i.Hi == 0 && i.Lo <= 1<<63-1) || (i.Hi == -1 && i.Lo >= 1<<63) {
		return formatInt(int64(i.Lo))
	}
	return i.Big().String()
}
