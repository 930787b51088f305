package convert

import (
	"encoding/base64"
	"reflect"

	"github.com/signadot/doctree/ir"
)

func encodeBinary(v reflect.Value) *ir.Node {
	return ir.FromString(base64.StdEncoding.EncodeToString(v.Bytes()))
}

// decodeBinary base64-decodes scalar text. Non-empty text that decodes
// to zero bytes is treated as corrupt; this is a secondary guard on top
// of the codec's own error, not the whole correctness check. Empty text
// is an empty buffer.
func decodeBinary(node *ir.Node, dst reflect.Value) bool {
	if !node.IsScalar() {
		return false
	}
	data, err := base64.StdEncoding.DecodeString(node.String)
	if err != nil {
		return false
	}
	if len(data) == 0 && node.String != "" {
		return false
	}
	dst.SetBytes(data)
	return true
}
