package towerbridge

import (
	"bytes"
	"encoding/json"
	"errors"
)

// PayloadKind discriminates the JSON shapes the upstream API returns.
type PayloadKind int

const (
	KindNull PayloadKind = iota
	KindObject
	KindArray
	KindScalar
)

// Payload is one decoded response body. Kind selects which typed field is
// meaningful; DecodePayload is the only constructor, so shape inspection
// happens exactly once per response.
type Payload struct {
	Kind   PayloadKind
	Object map[string]any
	Array  []any
	Scalar any
}

// DecodePayload decodes raw JSON and classifies its top-level shape.
// Numbers are kept as json.Number so large identifiers survive a
// round trip unchanged.
func DecodePayload(data []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Payload{}, err
	}
	if dec.More() {
		return Payload{}, errors.New("trailing data after JSON value")
	}
	switch t := v.(type) {
	case map[string]any:
		return Payload{Kind: KindObject, Object: t}, nil
	case []any:
		return Payload{Kind: KindArray, Array: t}, nil
	case nil:
		return Payload{Kind: KindNull}, nil
	default:
		return Payload{Kind: KindScalar, Scalar: t}, nil
	}
}

// Value returns the decoded body in its natural Go shape.
func (p Payload) Value() any {
	switch p.Kind {
	case KindObject:
		return p.Object
	case KindArray:
		return p.Array
	case KindScalar:
		return p.Scalar
	default:
		return nil
	}
}

// Envelope is the canonical mapping shape every tool result conforms to,
// regardless of what the upstream endpoint actually returned.
type Envelope = map[string]any

// Normalize converts a payload of any shape into the canonical envelope:
// objects pass through, arrays become {"items": ..., "total_count": ...},
// and scalars or null become {"value": ...}. meta is then merged with
// existing-keys-win semantics: it supplies defaults only and never
// overwrites data the API returned. A nil meta is the same as an empty
// one, and the function is total over every decodable input.
func Normalize(p Payload, meta map[string]any) Envelope {
	var out Envelope
	switch p.Kind {
	case KindObject:
		out = make(Envelope, len(p.Object)+len(meta))
		for k, v := range p.Object {
			out[k] = v
		}
	case KindArray:
		out = Envelope{
			"items":       p.Array,
			"total_count": len(p.Array),
		}
	default:
		out = Envelope{"value": p.Value()}
	}
	for k, v := range meta {
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}
