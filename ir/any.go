package ir

import (
	"fmt"
	"maps"
	"slices"
)

// ToAny converts a node to its Go-native form: nil, bool, float64, string,
// []any, or map[string]any. Useful for handing parsed documents to
// libraries that speak plain Go values.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
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
		return node.Float64
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a Go-native value back to a node. Integer and float
// types collapse to NumberType; map keys must be strings.
func FromAny(v any) (*Node, error) {
	switch vv := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return vv.Clone(), nil
	case bool:
		return FromBool(vv), nil
	case string:
		return FromString(vv), nil
	case float64:
		return FromFloat(vv), nil
	case float32:
		return FromFloat(float64(vv)), nil
	case int:
		return FromFloat(float64(vv)), nil
	case int8:
		return FromFloat(float64(vv)), nil
	case int16:
		return FromFloat(float64(vv)), nil
	case int32:
		return FromFloat(float64(vv)), nil
	case int64:
		return FromFloat(float64(vv)), nil
	case uint:
		return FromFloat(float64(vv)), nil
	case uint8:
		return FromFloat(float64(vv)), nil
	case uint16:
		return FromFloat(float64(vv)), nil
	case uint32:
		return FromFloat(float64(vv)), nil
	case uint64:
		return FromFloat(float64(vv)), nil
	case []*Node:
		return FromSlice(vv), nil
	case []any:
		vals := make([]*Node, len(vv))
		for i, elt := range vv {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]*Node:
		return FromMap(vv), nil
	case map[string]any:
		m := make(map[string]*Node, len(vv))
		for _, key := range slices.Sorted(maps.Keys(vv)) {
			y, err := FromAny(vv[key])
			if err != nil {
				return nil, err
			}
			m[key] = y
		}
		return FromMap(m), nil
	case map[any]any:
		m := make(map[string]any, len(vv))
		for key, val := range vv {
			ks, ok := key.(string)
			if !ok {
				return nil, fmt.Errorf("cannot represent %T as an object key", key)
			}
			m[ks] = val
		}
		return FromAny(m)
	default:
		return nil, fmt.Errorf("cannot represent %T as a value", v)
	}
}
