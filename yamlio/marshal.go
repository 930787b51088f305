package yamlio

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/doctree/convert"
	"github.com/signadot/doctree/ir"
)

// Native lowers a node to plain Go values for emission, retyping scalar
// text through the conversion grammar: boolean literals, integer
// radices, and float forms become typed values, anything else stays a
// string. Maps become yaml.MapSlice so stored order survives.
func Native(node *ir.Node) any {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.ScalarType:
		return nativeScalar(node)
	case ir.SequenceType:
		res := make([]any, node.Len())
		for i := range res {
			res[i] = Native(node.At(i))
		}
		return res
	case ir.MapType:
		res := make(yaml.MapSlice, node.Len())
		for i := range res {
			k, v := node.Pair(i)
			res[i] = yaml.MapItem{Key: Native(k), Value: Native(v)}
		}
		return res
	default:
		panic("type")
	}
}

func nativeScalar(node *ir.Node) any {
	var b bool
	if convert.Decode(node, &b) {
		return b
	}
	var i int64
	if convert.Decode(node, &i) {
		return i
	}
	var u uint64
	if convert.Decode(node, &u) {
		return u
	}
	var f float64
	if convert.Decode(node, &f) {
		return f
	}
	return node.String
}

// Plain is Native with string-keyed Go maps instead of MapSlices, for
// consumers that index by key (expression environments). Later
// duplicate keys win, as in decoding.
func Plain(node *ir.Node) any {
	switch node.Type {
	case ir.MapType:
		res := make(map[string]any, node.Len())
		for i := 0; i < node.Len(); i++ {
			k, v := node.Pair(i)
			res[plainKey(k)] = Plain(v)
		}
		return res
	case ir.SequenceType:
		res := make([]any, node.Len())
		for i := range res {
			res[i] = Plain(node.At(i))
		}
		return res
	default:
		return Native(node)
	}
}

func plainKey(k *ir.Node) string {
	if k.IsScalar() {
		return k.String
	}
	d, err := Marshal(k)
	if err != nil {
		return k.Type.String()
	}
	return string(d)
}

// Marshal emits a node as YAML.
func Marshal(node *ir.Node) ([]byte, error) {
	return yaml.Marshal(Native(node))
}

// MarshalJSON emits a node as JSON, keeping map order.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	return yaml.MarshalWithOptions(Native(node), yaml.JSON())
}
