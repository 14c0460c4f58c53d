package toon

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAML bridge. Uses yaml.Node rather than map unmarshaling so object
// key order survives the trip, matching the JSON bridge's guarantee.

// FromYAML converts YAML bytes to a Value, preserving mapping key order.
func FromYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("toon: parse yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Null(), nil
	}
	return fromYAMLNode(doc.Content[0])
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		fields := make([]Field, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: n.Content[i].Value, Value: val})
		}
		return Obj(fields...), nil

	case yaml.SequenceNode:
		elems := make([]*Value, 0, len(n.Content))
		for _, c := range n.Content {
			elem, err := fromYAMLNode(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return Arr(elems...), nil

	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return Null(), nil
		case "!!bool":
			b, err := strconv.ParseBool(n.Value)
			if err != nil {
				return Str(n.Value), nil
			}
			return Bool(b), nil
		case "!!int":
			i, err := strconv.ParseInt(n.Value, 10, 64)
			if err != nil {
				return Str(n.Value), nil
			}
			return Int(i), nil
		case "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return Str(n.Value), nil
			}
			return Float(f), nil
		default:
			return Str(n.Value), nil
		}

	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)

	default:
		return nil, fmt.Errorf("toon: unsupported yaml node kind %d", n.Kind)
	}
}

// ToYAML converts a Value to YAML bytes, keeping object key order.
func ToYAML(v *Value) ([]byte, error) {
	return yaml.Marshal(toYAMLNode(v))
}

func toYAMLNode(v *Value) *yaml.Node {
	if v.IsNull() {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}

	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: litBool(v.boolVal)}
	case KindInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: litInt(v.intVal)}
	case KindFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: litFloat(v.floatVal)}
	case KindStr:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.strVal}
	case KindArr:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v.arrVal {
			node.Content = append(node.Content, toYAMLNode(elem))
		}
		return node
	case KindObj:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.objVal {
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
				toYAMLNode(f.Value))
		}
		return node
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
