package shapeval

import (
	"github.com/roach88/shapeval/internal/bridge"
	"github.com/roach88/shapeval/internal/ser"
	"github.com/roach88/shapeval/internal/value"
)

type (
	Value  = value.Value
	Number = value.Number
	Kind   = value.Kind

	Map    = value.Map
	Entry  = value.Entry
	Fields = value.Fields
	Field  = value.Field

	Serialize     = ser.Serialize
	SerializeFunc = ser.SerializeFunc
	Serializer    = ser.Serializer
	Converter     = ser.Converter
	Option        = ser.Option
	Error         = ser.Error
	ErrorKind     = ser.ErrorKind

	JSONOptions = bridge.JSONOptions
)

const (
	KindCustom   = ser.KindCustom
	KindContract = ser.KindContract
)

var (
	ErrValueWithoutKey = ser.ErrValueWithoutKey
	ErrKeyWithoutValue = ser.ErrKeyWithoutValue
	ErrBuilderDone     = ser.ErrBuilderDone
	ErrNoValue         = ser.ErrNoValue
)

var (
	NewConverter = ser.NewConverter
	WithLogger   = ser.WithLogger
	Custom       = ser.Custom
	Customf      = ser.Customf

	Compare = value.Compare
	Equal   = value.Equal
	Less    = value.Less
	Hash    = value.Hash
	Digest  = value.Digest
	Typed   = value.Typed
)

// ToValue converts v with a default Converter.
func ToValue(v Serialize) (Value, error) {
	return ser.ToValue(v)
}

// ToValueOf converts a plain Go value through reflection. See ser.Reflect
// for the mapping from Go kinds to shapes.
func ToValueOf(x any) (Value, error) {
	return ser.ToValue(ser.Reflect(x))
}

// FromJSON converts a single JSON document.
func FromJSON(data []byte, opts JSONOptions) (Value, error) {
	p, err := bridge.JSON(data, opts)
	if err != nil {
		return nil, err
	}
	return ser.ToValue(p)
}

// FromYAML converts a single YAML document. Local tags name shapes:
// !Point {x: 1} is the named struct Point { x: 1 }.
func FromYAML(data []byte) (Value, error) {
	p, err := bridge.YAML(data)
	if err != nil {
		return nil, err
	}
	return ser.ToValue(p)
}
