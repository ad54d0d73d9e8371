// Package bridge drives the serialization protocol from decoded documents,
// so JSON and YAML input can be lifted into a value.Value through the same
// Converter that handles Go values.
//
// JSON carries no type names: objects become maps, arrays sequences, and
// numbers the narrowest of I64, U64 and F64 that holds them. YAML local tags
// name shapes:
//
//	!Point {x: 1, y: 2}      Point { x: 1, y: 2 }
//	!Pair [1, 2]             Pair(1, 2)
//	!Meters 12               Meters(12)
//	!Marker                  Marker
//	!Shape::Circle 1.5       Shape::Circle(1.5)
//	!Shape::Empty            Shape::Empty
//
// A JSON or YAML null is the unit value.
package bridge
