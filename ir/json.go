package ir

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the node as the plain JSON value it represents,
// with object fields in insertion order and the int/float distinction
// preserved.
func (y *Node) MarshalJSON() ([]byte, error) {
	return y.appendJSON(nil)
}

func (y *Node) appendJSON(dst []byte) ([]byte, error) {
	var err error
	switch y.Type {
	case NullType:
		return append(dst, "null"...), nil
	case BoolType:
		if y.Bool {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case NumberType:
		return append(dst, y.NumberLiteral()...), nil
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return nil, err
		}
		return append(dst, d...), nil
	case ArrayType:
		dst = append(dst, '[')
		for i, elt := range y.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst, err = elt.appendJSON(dst)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case ObjectType:
		dst = append(dst, '{')
		for i, field := range y.Fields {
			if i > 0 {
				dst = append(dst, ',')
			}
			d, err := json.Marshal(field)
			if err != nil {
				return nil, err
			}
			dst = append(dst, d...)
			dst = append(dst, ':')
			dst, err = y.Values[i].appendJSON(dst)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	default:
		return nil, fmt.Errorf("cannot marshal node type %s", y.Type)
	}
}

// ToAny converts the node to plain Go values: map[string]any for
// objects, []any for arrays, and int64/float64/string/bool/nil for
// scalars. Object field order is lost.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[field] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
