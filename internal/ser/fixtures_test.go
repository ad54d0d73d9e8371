package ser

import "github.com/roach88/shapeval/internal/value"

// Hand-written producers, shaped the way a derived implementation would
// drive the protocol.

// record declares its fields z, a, m in that order.
type record struct {
	Z uint8
	A uint8
	M uint8
}

func (r record) Serialize(s Serializer) (value.Value, error) {
	b, err := s.SerializeStruct("Record", 3)
	if err != nil {
		return nil, err
	}
	if err := b.SerializeField("z", Reflect(r.Z)); err != nil {
		return nil, err
	}
	if err := b.SerializeField("a", Reflect(r.A)); err != nil {
		return nil, err
	}
	if err := b.SerializeField("m", Reflect(r.M)); err != nil {
		return nil, err
	}
	return b.End()
}

// shape is an enum with one variant of each form.
type shape struct {
	kind   string
	radius float64
	w, h   uint32
}

func (sh shape) Serialize(s Serializer) (value.Value, error) {
	switch sh.kind {
	case "empty":
		return s.SerializeUnitVariant("Shape", 0, "Empty")
	case "circle":
		return s.SerializeNewtypeVariant("Shape", 1, "Circle", Reflect(sh.radius))
	case "pair":
		b, err := s.SerializeTupleVariant("Shape", 2, "Pair", 2)
		if err != nil {
			return nil, err
		}
		if err := b.SerializeField(Reflect(sh.w)); err != nil {
			return nil, err
		}
		if err := b.SerializeField(Reflect(sh.h)); err != nil {
			return nil, err
		}
		return b.End()
	default:
		b, err := s.SerializeStructVariant("Shape", 3, "Rect", 2)
		if err != nil {
			return nil, err
		}
		if err := b.SerializeField("w", Reflect(sh.w)); err != nil {
			return nil, err
		}
		if err := b.SerializeField("h", Reflect(sh.h)); err != nil {
			return nil, err
		}
		return b.End()
	}
}

// pairs is a map producer that emits entries in the given order.
type pairs [][2]Serialize

func (p pairs) Serialize(s Serializer) (value.Value, error) {
	b, err := s.SerializeMap(len(p))
	if err != nil {
		return nil, err
	}
	for _, kv := range p {
		if err := b.SerializeEntry(kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	return b.End()
}

// mapCalls drives a MapBuilder with a raw call script: "k" supplies the
// next key, "v" the next value.
type mapCalls struct {
	script string
	keys   []Serialize
	values []Serialize
}

func (m mapCalls) Serialize(s Serializer) (value.Value, error) {
	b, err := s.SerializeMap(-1)
	if err != nil {
		return nil, err
	}
	ki, vi := 0, 0
	for _, step := range m.script {
		switch step {
		case 'k':
			err = b.SerializeKey(m.keys[ki])
			ki++
		case 'v':
			err = b.SerializeValue(m.values[vi])
			vi++
		}
		if err != nil {
			return nil, err
		}
	}
	return b.End()
}

// meters is a newtype struct.
type meters uint32

func (m meters) Serialize(s Serializer) (value.Value, error) {
	return s.SerializeNewtypeStruct("Meters", Reflect(uint32(m)))
}

// marker is a unit struct.
type marker struct{}

func (marker) Serialize(s Serializer) (value.Value, error) {
	return s.SerializeUnitStruct("Marker")
}
