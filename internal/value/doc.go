// Package value provides the shape-preserving value model for shapeval.
//
// A Value is a closed tagged union. Every producer of structured data is
// reduced to one of fourteen variants: primitives (Unit, Bool, Char, the
// Number kinds, String), containers (Seq, Map, Tuple) and the six named
// shapes that keep the producing type's names (UnitStruct, TupleStruct,
// NamedStruct, UnitVariant, TupleVariant, NamedVariant).
//
// This package imports nothing internal. Other packages build on it.
//
// Key design constraints:
//   - Numbers keep their exact width and signedness. U8(1) != U32(1).
//   - Every pair of values is comparable (Compare is a total order), and
//     Equal values always produce the same Hash and Digest. This holds for
//     floats too: NaN and signed zero are ordered bit-wise (see F64.Cmp).
//   - Values are immutable once built. Map and Fields keep their entries
//     sorted by key and never expose their backing storage.
package value
