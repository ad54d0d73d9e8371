// Package shapeval lifts arbitrary structured data into a shape-preserving
// value tree that can be compared, hashed, and printed without knowing the
// data's original type.
//
// Any producer implementing Serialize can be converted:
//
//	v, err := shapeval.ToValue(order)
//
// Plain Go values go through reflection:
//
//	v, err := shapeval.ToValueOf(map[string][]int{"a": {1, 2}})
//	fmt.Println(v) // {"a": [1, 2]}
//
// Values are totally ordered (Compare), so they can be sorted and used as
// map keys through Hash or Digest. Equal values always hash identically.
package shapeval
