package toon

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"
)

// JSON bridge. JSON is the plain-structured fallback the selector emits
// when TOON does not pay off, and the collapsed form for substructure
// beyond the encoder's depth limit. Key order must survive both
// directions because tabular column order derives from it, so decoding
// walks tokens instead of unmarshaling into Go maps.

// FromJSON converts JSON bytes to a Value, preserving object key order.
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := fromJSONToken(dec)
	if err != nil {
		return nil, fmt.Errorf("toon: parse json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("toon: trailing data after json value")
	}
	return v, nil
}

// FromJSONC converts JSON-with-comments (and trailing commas) to a
// Value by normalizing to strict JSON first.
func FromJSONC(data []byte) (*Value, error) {
	return FromJSON(jsonc.ToJSON(data))
}

func fromJSONToken(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var fields []Field
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key token %v", keyTok)
				}
				val, err := fromJSONToken(dec)
				if err != nil {
					return nil, err
				}
				fields = append(fields, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume }
				return nil, err
			}
			return Obj(fields...), nil

		case '[':
			var elems []*Value
			for dec.More() {
				elem, err := fromJSONToken(dec)
				if err != nil {
					return nil, err
				}
				elems = append(elems, elem)
			}
			if _, err := dec.Token(); err != nil { // consume ]
				return nil, err
			}
			return Arr(elems...), nil

		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}

	case bool:
		return Bool(t), nil

	case json.Number:
		if n, err := t.Int64(); err == nil {
			return Int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("unparsable number %q", t.String())
		}
		return Float(f), nil

	case string:
		return Str(t), nil

	case nil:
		return Null(), nil

	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// ToJSON converts a Value to compact JSON bytes, keeping object key
// order. NaN and infinities, which JSON cannot carry, become null.
func ToJSON(v *Value) []byte {
	var b bytes.Buffer
	writeJSON(&b, v)
	return b.Bytes()
}

// ToJSONIndent converts a Value to two-space indented JSON.
func ToJSONIndent(v *Value) []byte {
	var out bytes.Buffer
	if err := json.Indent(&out, ToJSON(v), "", "  "); err != nil {
		return ToJSON(v)
	}
	return out.Bytes()
}

func writeJSON(b *bytes.Buffer, v *Value) {
	if v.IsNull() {
		b.WriteString("null")
		return
	}

	switch v.kind {
	case KindBool:
		b.WriteString(litBool(v.boolVal))

	case KindInt:
		b.WriteString(litInt(v.intVal))

	case KindFloat:
		f := v.floatVal
		if f != f || f > maxJSONFloat || f < -maxJSONFloat {
			b.WriteString("null")
			return
		}
		b.WriteString(litFloat(f))

	case KindStr:
		data, err := json.Marshal(v.strVal)
		if err != nil {
			data = []byte(`""`)
		}
		b.Write(data)

	case KindArr:
		b.WriteByte('[')
		for i, elem := range v.arrVal {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSON(b, elem)
		}
		b.WriteByte(']')

	case KindObj:
		b.WriteByte('{')
		for i, f := range v.objVal {
			if i > 0 {
				b.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				key = []byte(`""`)
			}
			b.Write(key)
			b.WriteByte(':')
			writeJSON(b, f.Value)
		}
		b.WriteByte('}')
	}
}

// maxJSONFloat guards against emitting Inf, which json rejects.
const maxJSONFloat = 1.7976931348623157e308
