// Package ser implements the consumer side of a generic, serde-style
// serialization protocol and turns whatever a producer describes into a
// value.Value tree.
//
// Producers implement Serialize and drive a Serializer through primitive
// callbacks (SerializeU8, SerializeStr, ...) and compound builders
// (SerializeSeq, SerializeStruct, SerializeMap, ...). Converter is the
// Serializer: primitives return immediately, builders accumulate converted
// children and materialize one Value on End.
//
// Conversion is synchronous and recursive. A failure anywhere aborts the
// whole conversion and no partial tree is returned.
package ser
