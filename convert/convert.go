// Package convert maps document nodes to and from typed Go values.
//
// Every supported type belongs to exactly one category (see Category);
// the registry picks the conversion strategy from the type alone.
// Encode is total. Decode reports failure as a boolean and never
// mutates the node it reads; the failure may be a type-tag mismatch,
// unrecognized scalar text, a numeric range overflow, or a container
// arity mismatch, all folded into the single result. Container decodes
// may leave the destination partially written on failure.
package convert

import (
	"fmt"
	"reflect"

	"github.com/signadot/doctree/debug"
	"github.com/signadot/doctree/ir"
)

// Encode converts v into a node. It never fails for a classified type;
// an unclassified type panics. An untyped nil encodes as null.
func Encode(v any) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	return encodeValue(reflect.ValueOf(v))
}

func encodeValue(v reflect.Value) *ir.Node {
	return mustClassify(v.Type()).encode(v)
}

// Decode converts node into *dst, which must be a non-nil pointer.
// It returns false on failure; for containers the destination may hold
// a decoded prefix when that happens.
func Decode(node *ir.Node, dst any) bool {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		panic("convert: Decode destination must be a non-nil pointer")
	}
	return decodeValue(node, v.Elem())
}

func decodeValue(node *ir.Node, dst reflect.Value) bool {
	r := mustClassify(dst.Type())
	if r.decode == nil {
		panic(fmt.Sprintf("convert: type %s is encode-only", dst.Type()))
	}
	return r.decode(node, dst)
}

// As is the error-flavored convenience over Decode.
func As[T any](node *ir.Node) (T, error) {
	var v T
	if !Decode(node, &v) {
		if debug.Convert() {
			debug.Logf("convert: As[%s] failed on %v\n", fmt.Sprintf("%T", v), node)
		}
		return v, fmt.Errorf("%w: %s node into %T", ErrDecode, node.Type, v)
	}
	return v, nil
}

// MustAs panics where As errors.
func MustAs[T any](node *ir.Node) T {
	v, err := As[T](node)
	if err != nil {
		panic(err)
	}
	return v
}
