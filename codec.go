package toon

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"
)

// Codec is the interchange interface collaborators use to move Value
// trees over a wire form chosen by content type.
type Codec interface {
	ContentType() string
	Marshal(v *Value) ([]byte, error)
	Unmarshal(data []byte) (*Value, error)
}

// Registry maps content type aliases to codecs.
type Registry struct{ byType map[string]Codec }

// NewRegistry constructs a registry preloaded with the built-in codecs:
// TOON, JSON, and CBOR.
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[string]Codec)}
	r.Register(TOON(DefaultOptions()))
	r.Register(JSONCodec())
	r.Register(CBOR())
	return r
}

// Register adds a codec.
func (r *Registry) Register(c Codec) { r.byType[c.ContentType()] = c }

// Get returns a codec by content type, or nil.
func (r *Registry) Get(contentType string) Codec { return r.byType[contentType] }

// ============================================================
// TOON
// ============================================================

type toonCodec struct{ opts Options }

// TOON returns the TOON text codec. Content-Type: text/toon
func TOON(opts Options) Codec { return toonCodec{opts: opts} }

func (toonCodec) ContentType() string { return "text/toon" }

func (c toonCodec) Marshal(v *Value) ([]byte, error) {
	return []byte(EncodeWithOptions(v, c.opts)), nil
}

func (toonCodec) Unmarshal(data []byte) (*Value, error) { return Decode(string(data)) }

// ============================================================
// JSON
// ============================================================

type jsonCodec struct{}

// JSONCodec returns a JSON codec (RFC 8259). Content-Type: application/json
func JSONCodec() Codec { return jsonCodec{} }

func (jsonCodec) ContentType() string { return "application/json" }

func (jsonCodec) Marshal(v *Value) ([]byte, error) { return ToJSON(v), nil }

func (jsonCodec) Unmarshal(data []byte) (*Value, error) { return FromJSON(data) }

// ============================================================
// CBOR
// ============================================================

type cborCodec struct{}

// CBOR returns a CBOR codec (RFC 8949). Content-Type: application/cbor
//
// CBOR maps are unordered, so object key order does not survive this
// path; decoded fields come back key-sorted. Use the TOON or JSON codec
// when column order matters.
func CBOR() Codec { return cborCodec{} }

func (cborCodec) ContentType() string { return "application/cbor" }

func (cborCodec) Marshal(v *Value) ([]byte, error) {
	return cbor.Marshal(toInterface(v))
}

func (cborCodec) Unmarshal(data []byte) (*Value, error) {
	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("toon: parse cbor: %w", err)
	}
	return fromInterface(raw)
}

// toInterface converts a Value to plain Go values for generic marshalers.
func toInterface(v *Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindFloat:
		return v.floatVal
	case KindStr:
		return v.strVal
	case KindArr:
		out := make([]any, len(v.arrVal))
		for i, elem := range v.arrVal {
			out[i] = toInterface(elem)
		}
		return out
	case KindObj:
		out := make(map[string]any, len(v.objVal))
		for _, f := range v.objVal {
			out[f.Key] = toInterface(f.Value)
		}
		return out
	default:
		return nil
	}
}

// fromInterface converts generic decoded values back to a Value. Map
// keys are sorted for deterministic field order.
func fromInterface(raw any) (*Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case int64:
		return Int(t), nil
	case uint64:
		return Int(int64(t)), nil
	case float64:
		return Float(t), nil
	case float32:
		return Float(float64(t)), nil
	case string:
		return Str(t), nil
	case []byte:
		return Str(string(t)), nil
	case []any:
		elems := make([]*Value, len(t))
		for i, e := range t {
			v, err := fromInterface(e)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return Arr(elems...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			v, err := fromInterface(t[k])
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: k, Value: v})
		}
		return Obj(fields...), nil
	case map[any]any:
		keys := make([]string, 0, len(t))
		byKey := make(map[string]any, len(t))
		for k, val := range t {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			byKey[ks] = val
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(keys))
		for _, k := range keys {
			v, err := fromInterface(byKey[k])
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: k, Value: v})
		}
		return Obj(fields...), nil
	default:
		return nil, fmt.Errorf("toon: unsupported decoded type %T", raw)
	}
}
