package bridge

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/shapeval/internal/ser"
	"github.com/roach88/shapeval/internal/value"
)

// YAML decodes a single YAML document and returns a producer for it.
// An empty document is the unit value; a second document is an error.
func YAML(data []byte) (ser.Serialize, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ser.Unit{}, nil
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
		return nil, fmt.Errorf("failed to parse YAML: expected one document, found another at line %d", extra.Line)
	}

	return YAMLNode(&doc), nil
}

// YAMLNode returns a producer for an already decoded node.
func YAMLNode(n *yaml.Node) ser.Serialize {
	return yamlNode{n}
}

type yamlNode struct {
	n *yaml.Node
}

// shapeTag splits a local tag into a type name and, for "!Type::Variant",
// a variant name. Standard tags report ok == false.
func shapeTag(n *yaml.Node) (name, variant string, ok bool) {
	tag := n.Tag
	if !strings.HasPrefix(tag, "!") || strings.HasPrefix(tag, "!!") || len(tag) == 1 {
		return "", "", false
	}
	name, variant, _ = strings.Cut(tag[1:], "::")
	return name, variant, true
}

func (y yamlNode) Serialize(s ser.Serializer) (value.Value, error) {
	n := y.n
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return s.SerializeUnit()
		}
		return yamlNode{n.Content[0]}.Serialize(s)
	case yaml.AliasNode:
		return yamlNode{n.Alias}.Serialize(s)
	case yaml.SequenceNode:
		return serializeSequence(s, n)
	case yaml.MappingNode:
		return serializeMapping(s, n)
	case yaml.ScalarNode:
		return serializeScalar(s, n)
	default:
		return nil, ser.Customf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}
}

func serializeSequence(s ser.Serializer, n *yaml.Node) (value.Value, error) {
	name, variant, tagged := shapeTag(n)
	switch {
	case tagged && variant != "":
		b, err := s.SerializeTupleVariant(name, 0, variant, len(n.Content))
		if err != nil {
			return nil, err
		}
		for _, c := range n.Content {
			if err := b.SerializeField(yamlNode{c}); err != nil {
				return nil, err
			}
		}
		return b.End()
	case tagged:
		b, err := s.SerializeTupleStruct(name, len(n.Content))
		if err != nil {
			return nil, err
		}
		for _, c := range n.Content {
			if err := b.SerializeField(yamlNode{c}); err != nil {
				return nil, err
			}
		}
		return b.End()
	}

	b, err := s.SerializeSeq(len(n.Content))
	if err != nil {
		return nil, err
	}
	for _, c := range n.Content {
		if err := b.SerializeElement(yamlNode{c}); err != nil {
			return nil, err
		}
	}
	return b.End()
}

func serializeMapping(s ser.Serializer, n *yaml.Node) (value.Value, error) {
	name, variant, tagged := shapeTag(n)
	if !tagged {
		b, err := s.SerializeMap(len(n.Content) / 2)
		if err != nil {
			return nil, err
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.ShortTag() == "!!merge" {
				return nil, ser.Customf("line %d: merge keys are not supported", k.Line)
			}
			if err := b.SerializeEntry(yamlNode{k}, yamlNode{n.Content[i+1]}); err != nil {
				return nil, err
			}
		}
		return b.End()
	}

	var add func(string, ser.Serialize) error
	var end func() (value.Value, error)
	if variant != "" {
		b, err := s.SerializeStructVariant(name, 0, variant, len(n.Content)/2)
		if err != nil {
			return nil, err
		}
		add, end = b.SerializeField, b.End
	} else {
		b, err := s.SerializeStruct(name, len(n.Content)/2)
		if err != nil {
			return nil, err
		}
		add, end = b.SerializeField, b.End
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
			return nil, ser.Customf("line %d: field names of !%s must be strings", k.Line, strings.TrimPrefix(n.Tag, "!"))
		}
		if err := add(k.Value, yamlNode{n.Content[i+1]}); err != nil {
			return nil, err
		}
	}
	return end()
}

func serializeScalar(s ser.Serializer, n *yaml.Node) (value.Value, error) {
	if name, variant, tagged := shapeTag(n); tagged {
		plain := *n
		plain.Tag = ""
		inner := yamlNode{&plain}
		empty := plain.ShortTag() == "!!null"

		switch {
		case variant != "" && empty:
			return s.SerializeUnitVariant(name, 0, variant)
		case variant != "":
			return s.SerializeNewtypeVariant(name, 0, variant, inner)
		case empty:
			return s.SerializeUnitStruct(name)
		default:
			return s.SerializeNewtypeStruct(name, inner)
		}
	}

	switch n.ShortTag() {
	case "!!null":
		return s.SerializeUnit()
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return s.SerializeBool(b)
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return s.SerializeI64(i)
		}
		var u uint64
		if err := n.Decode(&u); err != nil {
			return nil, ser.Customf("line %d: integer %s out of range", n.Line, n.Value)
		}
		return s.SerializeU64(u)
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return s.SerializeF64(f)
	case "!!binary":
		raw, err := base64.StdEncoding.DecodeString(stripSpace(n.Value))
		if err != nil {
			return nil, ser.Customf("line %d: invalid !!binary: %v", n.Line, err)
		}
		return s.SerializeBytes(raw)
	default:
		// !!str, !!timestamp and unknown global tags keep their text.
		return s.SerializeStr(n.Value)
	}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}
