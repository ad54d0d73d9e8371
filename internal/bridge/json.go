package bridge

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/shapeval/internal/ser"
	"github.com/roach88/shapeval/internal/value"
)

// JSONOptions controls how JSON numbers are lifted.
type JSONOptions struct {
	// UseFloat lifts every number as F64, the way encoding/json decodes
	// into interface{}. By default integers stay integers.
	UseFloat bool
}

// JSON decodes a single JSON document and returns a producer for it.
// Trailing data after the document is an error.
func JSON(data []byte, opts JSONOptions) (ser.Serialize, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON: trailing data after offset %d", dec.InputOffset())
	}

	return jsonNode{raw: raw, opts: opts}, nil
}

type jsonNode struct {
	raw  any
	opts JSONOptions
}

func (n jsonNode) child(raw any) jsonNode {
	return jsonNode{raw: raw, opts: n.opts}
}

func (n jsonNode) Serialize(s ser.Serializer) (value.Value, error) {
	switch v := n.raw.(type) {
	case nil:
		return s.SerializeUnit()
	case bool:
		return s.SerializeBool(v)
	case string:
		return s.SerializeStr(v)
	case json.Number:
		return n.number(s, v)
	case []any:
		b, err := s.SerializeSeq(len(v))
		if err != nil {
			return nil, err
		}
		for _, elem := range v {
			if err := b.SerializeElement(n.child(elem)); err != nil {
				return nil, err
			}
		}
		return b.End()
	case map[string]any:
		b, err := s.SerializeMap(len(v))
		if err != nil {
			return nil, err
		}
		for k, elem := range v {
			if err := b.SerializeEntry(jsonNode{raw: k}, n.child(elem)); err != nil {
				return nil, err
			}
		}
		return b.End()
	default:
		return nil, ser.Customf("unsupported JSON type %T", v)
	}
}

// number lifts n to I64 when it is an integer that fits, then U64, then F64.
func (n jsonNode) number(s ser.Serializer, num json.Number) (value.Value, error) {
	lit := string(num)
	if !n.opts.UseFloat && !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return s.SerializeI64(i)
		}
		if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return s.SerializeU64(u)
		}
	}
	f, err := num.Float64()
	if err != nil {
		return nil, ser.Customf("number %s out of range", lit)
	}
	return s.SerializeF64(f)
}
